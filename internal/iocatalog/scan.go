package iocatalog

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/gnames/herbdb/pkg/catalog"
	"github.com/gnames/herbdb/pkg/query"
	"github.com/gnames/herbdb/pkg/schema"
	"github.com/google/uuid"
)

var plantCols = query.PlantColumns("")

type scanner interface {
	Scan(dest ...any) error
}

// nullTime scans timestamps of both stores. SQLite returns text when
// the declared column type is not available (RETURNING, expressions).
type nullTime struct {
	Time  time.Time
	Valid bool
}

var timeLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999 -0700 MST",
}

// Scan implements sql.Scanner.
func (nt *nullTime) Scan(value any) error {
	nt.Time, nt.Valid = time.Time{}, false
	var s string
	switch v := value.(type) {
	case nil:
		return nil
	case time.Time:
		nt.Time, nt.Valid = v, true
		return nil
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into time", value)
	}
	for _, l := range timeLayouts {
		if t, err := time.Parse(l, s); err == nil {
			nt.Time, nt.Valid = t, true
			return nil
		}
	}
	return fmt.Errorf("cannot parse time %q", s)
}

// Value implements driver.Valuer.
func (nt nullTime) Value() (driver.Value, error) {
	if !nt.Valid {
		return nil, nil
	}
	return nt.Time, nil
}

func scanPlant(row scanner) (catalog.Plant, error) {
	var r schema.Plant
	var checked, created, updated nullTime
	err := row.Scan(
		&r.ID, &r.ScientificName, &r.CommonName,
		&r.CanonicalName, &r.CanonicalID,
		&r.StockStatus, &r.QuantityLevel, &r.OrderStatus,
		&r.ImageURL, &r.ExternalImageRef, &checked,
		&created, &updated,
	)
	if err != nil {
		return catalog.Plant{}, err
	}
	r.ImageCheckedAt = sql.NullTime{Time: checked.Time, Valid: checked.Valid}
	r.CreatedAt, r.UpdatedAt = created.Time, updated.Time
	return toPlant(r), nil
}

func scanPlants(rows *sql.Rows) ([]catalog.Plant, error) {
	defer rows.Close()

	res := make([]catalog.Plant, 0)
	for rows.Next() {
		p, err := scanPlant(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func toPlant(r schema.Plant) catalog.Plant {
	res := catalog.Plant{
		ID:               r.ID,
		ScientificName:   r.ScientificName,
		CommonName:       r.CommonName,
		CanonicalName:    r.CanonicalName.String,
		StockStatus:      catalog.StockStatus(r.StockStatus),
		QuantityLevel:    catalog.QuantityLevel(r.QuantityLevel.String),
		OrderStatus:      catalog.OrderStatus(r.OrderStatus.String),
		ImageURL:         r.ImageURL.String,
		ExternalImageRef: r.ExternalImageRef.String,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
	if r.CanonicalID.Valid {
		if id, err := uuid.Parse(r.CanonicalID.String); err == nil {
			res.CanonicalID = uuid.NullUUID{UUID: id, Valid: true}
		}
	}
	if r.ImageCheckedAt.Valid {
		t := r.ImageCheckedAt.Time
		res.ImageCheckedAt = &t
	}
	return res
}

var useCols = []string{"id", "use_name", "description"}

func scanUse(row scanner, extra ...any) (catalog.MedicinalUse, error) {
	var r schema.MedicinalUse
	dest := append([]any{&r.ID, &r.UseName, &r.Description}, extra...)
	if err := row.Scan(dest...); err != nil {
		return catalog.MedicinalUse{}, err
	}
	return catalog.MedicinalUse{
		ID:          r.ID,
		UseName:     r.UseName,
		Description: r.Description.String,
	}, nil
}

func scanUses(rows *sql.Rows) ([]catalog.MedicinalUse, error) {
	defer rows.Close()

	res := make([]catalog.MedicinalUse, 0)
	for rows.Next() {
		mu, err := scanUse(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, mu)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
