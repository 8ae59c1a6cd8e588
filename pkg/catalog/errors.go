package catalog

import "fmt"

// Entity kinds used in error messages.
const (
	KindPlant        = "plant"
	KindMedicinalUse = "medicinal use"
)

// ValidationError reports malformed input. It is returned before any
// store operation starts.
type ValidationError struct {
	Field string
	Value string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Msg)
	}
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Value, e.Msg)
}

// ConflictError reports that a record with the same name already exists.
// It identifies the existing record so a caller can reuse it.
type ConflictError struct {
	Kind string
	ID   int
	Name string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s '%s' already exists (id %d)", e.Kind, e.Name, e.ID)
}

// NotFoundError reports a missing record targeted by an update.
type NotFoundError struct {
	Kind string
	ID   int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %d not found", e.Kind, e.ID)
}

// PlantConflict creates ConflictError from an existing plant.
func PlantConflict(p *Plant) *ConflictError {
	name := p.CommonName
	if name == "" {
		name = p.ScientificName
	}
	return &ConflictError{Kind: KindPlant, ID: p.ID, Name: name}
}

// MedicinalUseConflict creates ConflictError from an existing use.
func MedicinalUseConflict(mu *MedicinalUse) *ConflictError {
	return &ConflictError{Kind: KindMedicinalUse, ID: mu.ID, Name: mu.UseName}
}
