package iocatalog

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"strings"

	"github.com/gnames/herbdb/pkg/catalog"
	"github.com/gnames/herbdb/pkg/query"
)

// ListPlants returns distinct plants that satisfy the filter ordered by
// common name.
func (s *store) ListPlants(
	ctx context.Context,
	f catalog.PlantFilter,
) ([]catalog.Plant, error) {
	stmt, args := s.render(query.PlantFilter(f))
	slog.Debug("List plants", "sql", stmt, "args", args)

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, QueryError("list plants", err)
	}
	res, err := scanPlants(rows)
	if err != nil {
		return nil, QueryError("list plants", err)
	}
	return res, nil
}

// GetPlant returns a plant with its medicinal uses.
func (s *store) GetPlant(ctx context.Context, id int) (*catalog.Plant, error) {
	return s.plantWithUses(ctx, s.db, id)
}

func (s *store) plantWithUses(
	ctx context.Context,
	qr querier,
	id int,
) (*catalog.Plant, error) {
	p, err := s.plantByID(ctx, qr, id)
	if err != nil || p == nil {
		return nil, err
	}

	stmt := s.q(`SELECT mu.id, mu.use_name, mu.description
		FROM medicinal_uses mu
		JOIN plant_medicinal_uses pmu ON pmu.medicinal_use_id = mu.id
		WHERE pmu.plant_id = ?
		ORDER BY mu.use_name, mu.id`)
	rows, err := qr.QueryContext(ctx, stmt, id)
	if err != nil {
		return nil, QueryError("get plant uses", err)
	}
	if p.MedicinalUses, err = scanUses(rows); err != nil {
		return nil, QueryError("get plant uses", err)
	}
	return p, nil
}

// PlantsWithoutImage returns plants that have no image and were never
// looked up.
func (s *store) PlantsWithoutImage(
	ctx context.Context,
) ([]catalog.Plant, error) {
	stmt, args := s.render(query.Select{
		Columns: plantCols,
		From:    "plants",
		Where: []query.Pred{
			query.IsNull("image_url"),
			query.IsNull("image_checked_at"),
		},
		OrderBy: []string{"common_name ASC", "id ASC"},
	})
	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, QueryError("plants without image", err)
	}
	res, err := scanPlants(rows)
	if err != nil {
		return nil, QueryError("plants without image", err)
	}
	return res, nil
}

// CreatePlant inserts a plant and its medicinal use links in one
// transaction.
func (s *store) CreatePlant(
	ctx context.Context,
	in catalog.PlantInput,
) (*catalog.Plant, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var res *catalog.Plant
	err := s.withTx(ctx, "create_plant", func(tx *sql.Tx) error {
		id, err := s.insertPlant(ctx, tx, in)
		if err != nil {
			return err
		}
		if err = s.syncUses(ctx, tx, id, in, false); err != nil {
			return err
		}
		res, err = s.writtenPlant(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Plant created",
		"id", res.ID,
		"common_name", in.CommonName,
		"scientific_name", in.ScientificName,
	)
	return res, nil
}

// UpdatePlant rewrites a plant and replaces all its medicinal use links.
func (s *store) UpdatePlant(
	ctx context.Context,
	id int,
	in catalog.PlantInput,
) (*catalog.Plant, error) {
	in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var res *catalog.Plant
	err := s.withTx(ctx, "update_plant", func(tx *sql.Tx) error {
		p, err := s.plantByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if p == nil {
			return &catalog.NotFoundError{Kind: catalog.KindPlant, ID: id}
		}
		if err = s.updatePlant(ctx, tx, id, in); err != nil {
			return err
		}
		if err = s.syncUses(ctx, tx, id, in, true); err != nil {
			return err
		}
		res, err = s.writtenPlant(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Plant updated", "id", id, "common_name", in.CommonName)
	return res, nil
}

// writtenPlant reads a plant back inside the transaction that wrote it,
// so a concurrent delete cannot turn a successful write into a nil
// result.
func (s *store) writtenPlant(
	ctx context.Context,
	tx *sql.Tx,
	id int,
) (*catalog.Plant, error) {
	p, err := s.plantWithUses(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, &catalog.NotFoundError{Kind: catalog.KindPlant, ID: id}
	}
	return p, nil
}

// DeletePlant removes a plant. Links to medicinal uses are removed by
// the cascade rule of the schema.
func (s *store) DeletePlant(
	ctx context.Context,
	id int,
) (*catalog.Plant, error) {
	var res *catalog.Plant
	err := s.withTx(ctx, "delete_plant", func(tx *sql.Tx) error {
		stmt := s.q(`DELETE FROM plants WHERE id = ? RETURNING ` +
			strings.Join(plantCols, ", "))
		p, err := scanPlant(tx.QueryRowContext(ctx, stmt, id))
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return QueryError("delete plant", err)
		}
		res = &p
		return nil
	})
	if err != nil {
		return nil, err
	}
	if res != nil {
		slog.Info("Plant deleted", "id", id, "common_name", res.CommonName)
	}
	return res, nil
}

// SetPlantImage stores the result of an image lookup and marks the plant
// as checked.
func (s *store) SetPlantImage(
	ctx context.Context,
	id int,
	url, ref string,
) error {
	return s.withTx(ctx, "set_plant_image", func(tx *sql.Tx) error {
		now := s.now()
		stmt := s.q(`UPDATE plants
			SET image_url = ?, external_image_ref = ?,
				image_checked_at = ?, updated_at = ?
			WHERE id = ?`)
		res, err := tx.ExecContext(ctx, stmt,
			nullString(url), nullString(ref), now, now, id,
		)
		if err != nil {
			return QueryError("set plant image", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return &catalog.NotFoundError{Kind: catalog.KindPlant, ID: id}
		}
		return nil
	})
}

func (s *store) plantByID(
	ctx context.Context,
	qr querier,
	id int,
) (*catalog.Plant, error) {
	stmt, args := s.render(query.Select{
		Columns: plantCols,
		From:    "plants",
		Where:   []query.Pred{query.Eq("id", id)},
	})
	p, err := scanPlant(qr.QueryRowContext(ctx, stmt, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, QueryError("get plant", err)
	}
	return &p, nil
}

func (s *store) insertPlant(
	ctx context.Context,
	tx *sql.Tx,
	in catalog.PlantInput,
) (int, error) {
	dup, err := s.findPlantDuplicate(ctx, tx,
		in.ScientificName, in.CommonName, 0)
	if err != nil {
		return 0, err
	}
	if dup != nil {
		return 0, catalog.PlantConflict(dup)
	}

	canName, canID := s.canonical(in.ScientificName)
	now := s.now()
	stmt := s.q(`INSERT INTO plants (
			scientific_name, common_name, scientific_key, common_key,
			canonical_name, canonical_id,
			stock_status, quantity_level, order_status,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`)

	var id int
	err = savepoint(ctx, tx, "plant_write", func() error {
		return tx.QueryRowContext(ctx, stmt,
			in.ScientificName, in.CommonName,
			catalog.NameKey(in.ScientificName), catalog.NameKey(in.CommonName),
			canName, canID,
			string(in.StockStatus),
			nullString(string(in.QuantityLevel)),
			nullString(string(in.OrderStatus)),
			now, now,
		).Scan(&id)
	})
	if err != nil {
		return 0, s.plantWriteError(ctx, tx, in, 0, err)
	}
	return id, nil
}

func (s *store) updatePlant(
	ctx context.Context,
	tx *sql.Tx,
	id int,
	in catalog.PlantInput,
) error {
	dup, err := s.findPlantDuplicate(ctx, tx,
		in.ScientificName, in.CommonName, id)
	if err != nil {
		return err
	}
	if dup != nil {
		return catalog.PlantConflict(dup)
	}

	canName, canID := s.canonical(in.ScientificName)
	stmt := s.q(`UPDATE plants SET
			scientific_name = ?, common_name = ?,
			scientific_key = ?, common_key = ?,
			canonical_name = ?, canonical_id = ?,
			stock_status = ?, quantity_level = ?, order_status = ?,
			updated_at = ?
		WHERE id = ?`)

	err = savepoint(ctx, tx, "plant_write", func() error {
		_, err := tx.ExecContext(ctx, stmt,
			in.ScientificName, in.CommonName,
			catalog.NameKey(in.ScientificName), catalog.NameKey(in.CommonName),
			canName, canID,
			string(in.StockStatus),
			nullString(string(in.QuantityLevel)),
			nullString(string(in.OrderStatus)),
			s.now(), id,
		)
		return err
	})
	if err != nil {
		return s.plantWriteError(ctx, tx, in, id, err)
	}
	return nil
}

// plantWriteError converts a unique violation into a conflict with the
// plant that owns the name. A concurrent writer may have committed it
// after the duplicate check.
func (s *store) plantWriteError(
	ctx context.Context,
	tx *sql.Tx,
	in catalog.PlantInput,
	self int,
	err error,
) error {
	if s.dialect.IsUniqueViolation(err) {
		dup, dErr := s.findPlantDuplicate(ctx, tx,
			in.ScientificName, in.CommonName, self)
		if dErr == nil && dup != nil {
			return catalog.PlantConflict(dup)
		}
	}
	return QueryError("write plant", err)
}
