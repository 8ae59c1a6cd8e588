package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// StockStatus tells if a plant is available.
type StockStatus string

const (
	InStock    StockStatus = "in_stock"
	OutOfStock StockStatus = "out_of_stock"
)

// QuantityLevel is a rough amount of a plant in stock. The empty value
// means the level is absent (NULL in the store).
type QuantityLevel string

const (
	QuantityAbsent QuantityLevel = ""
	QuantityLow    QuantityLevel = "low"
	QuantityMedium QuantityLevel = "medium"
	QuantityHigh   QuantityLevel = "high"
)

// OrderStatus tells if a plant has to be ordered. The empty value means
// there is no order status (NULL in the store).
type OrderStatus string

const (
	OrderAbsent   OrderStatus = ""
	NeedsOrdering OrderStatus = "needs_ordering"
	OnOrder       OrderStatus = "on_order"
)

// StockStatuses lists valid stock statuses.
var StockStatuses = []StockStatus{InStock, OutOfStock}

// QuantityLevels lists concrete quantity levels.
var QuantityLevels = []QuantityLevel{QuantityHigh, QuantityMedium, QuantityLow}

// OrderStatuses lists concrete order statuses.
var OrderStatuses = []OrderStatus{NeedsOrdering, OnOrder}

// Valid checks that the status is one of the known values.
func (s StockStatus) Valid() bool {
	return s == InStock || s == OutOfStock
}

// Valid checks the level. Absent level is valid.
func (q QuantityLevel) Valid() bool {
	switch q {
	case QuantityAbsent, QuantityLow, QuantityMedium, QuantityHigh:
		return true
	}
	return false
}

// Valid checks the status. Absent status is valid.
func (o OrderStatus) Valid() bool {
	switch o {
	case OrderAbsent, NeedsOrdering, OnOrder:
		return true
	}
	return false
}

// Label converts "out_of_stock" to "Out Of Stock".
func (s StockStatus) Label() string {
	return labelFromSnake(string(s))
}

// Label converts "medium" to "Medium".
func (q QuantityLevel) Label() string {
	return labelFromSnake(string(q))
}

// Label converts "needs_ordering" to "Needs Ordering".
func (o OrderStatus) Label() string {
	return labelFromSnake(string(o))
}

// Rank makes quantity levels sortable, absent level ranks lowest.
func (q QuantityLevel) Rank() int {
	switch q {
	case QuantityHigh:
		return 3
	case QuantityMedium:
		return 2
	case QuantityLow:
		return 1
	default:
		return 0
	}
}

func labelFromSnake(s string) string {
	if s == "" {
		return "N/A"
	}
	words := strings.Split(s, "_")
	for i := range words {
		if words[i] == "" {
			continue
		}
		words[i] = strings.ToUpper(words[i][:1]) + words[i][1:]
	}
	return strings.Join(words, " ")
}

// Plant is a catalog record of a medicinal plant.
type Plant struct {
	// ID is the identifier generated by the store.
	ID int `json:"id"`

	// ScientificName is the botanical name, unique case-insensitively.
	ScientificName string `json:"scientificName"`

	// CommonName is the vernacular name, unique case-insensitively.
	CommonName string `json:"commonName"`

	// CanonicalName is the simple canonical form of ScientificName.
	// It is empty if the name could not be parsed.
	CanonicalName string `json:"canonicalName,omitempty"`

	// CanonicalID is UUID v5 generated from CanonicalName.
	CanonicalID uuid.NullUUID `json:"canonicalId"`

	StockStatus   StockStatus   `json:"stockStatus"`
	QuantityLevel QuantityLevel `json:"quantityLevel,omitempty"`
	OrderStatus   OrderStatus   `json:"orderStatus,omitempty"`

	// ImageURL is a link to a picture of the plant.
	ImageURL string `json:"imageUrl,omitempty"`

	// ExternalImageRef is the identifier of the image record in the
	// lookup service.
	ExternalImageRef string `json:"externalImageRef,omitempty"`

	// ImageCheckedAt is the time of the last image lookup. Nil means
	// a lookup never happened.
	ImageCheckedAt *time.Time `json:"imageCheckedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// MedicinalUses are filled in by detail reads only.
	MedicinalUses []MedicinalUse `json:"medicinalUses,omitempty"`
}

// NeedsImage is true when no image is known and no lookup was done yet.
func (p *Plant) NeedsImage() bool {
	return p.ImageURL == "" && p.ImageCheckedAt == nil
}

// MedicinalUse is a tag describing what a plant is used for.
type MedicinalUse struct {
	ID          int    `json:"id"`
	UseName     string `json:"useName"`
	Description string `json:"description,omitempty"`

	// PlantCount is filled in by list reads.
	PlantCount int `json:"plantCount"`

	// Plants are filled in by detail reads.
	Plants []Plant `json:"plants,omitempty"`
}

// SearchResult keeps results of independent searches over plants and
// medicinal uses.
type SearchResult struct {
	Term          string         `json:"term"`
	Plants        []Plant        `json:"plants"`
	MedicinalUses []MedicinalUse `json:"medicinalUses"`
}
