package iocatalog

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/gnames/herbdb/pkg/catalog"
	"github.com/gnames/herbdb/pkg/query"
)

func (s *store) ListMedicinalUses(
	ctx context.Context,
) ([]catalog.MedicinalUse, error) {
	stmt := `SELECT mu.id, mu.use_name, mu.description, COUNT(pmu.plant_id)
		FROM medicinal_uses mu
		LEFT JOIN plant_medicinal_uses pmu ON pmu.medicinal_use_id = mu.id
		GROUP BY mu.id, mu.use_name, mu.description
		ORDER BY mu.use_name, mu.id`
	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, QueryError("list medicinal uses", err)
	}
	defer rows.Close()

	res := make([]catalog.MedicinalUse, 0)
	for rows.Next() {
		var count int
		mu, err := scanUse(rows, &count)
		if err != nil {
			return nil, QueryError("list medicinal uses", err)
		}
		mu.PlantCount = count
		res = append(res, mu)
	}
	if err = rows.Err(); err != nil {
		return nil, QueryError("list medicinal uses", err)
	}
	return res, nil
}

func (s *store) GetMedicinalUse(
	ctx context.Context,
	id int,
) (*catalog.MedicinalUse, error) {
	return s.useWithPlants(ctx, s.db, id)
}

func (s *store) useWithPlants(
	ctx context.Context,
	qr querier,
	id int,
) (*catalog.MedicinalUse, error) {
	mu, err := s.useByID(ctx, qr, id)
	if err != nil || mu == nil {
		return nil, err
	}

	stmt, args := s.render(query.Select{
		Columns: query.PlantColumns("p"),
		From:    "plants p",
		Joins: []query.Join{
			{Table: "plant_medicinal_uses pmu", On: "pmu.plant_id = p.id"},
		},
		Where:   []query.Pred{query.Eq("pmu.medicinal_use_id", id)},
		OrderBy: []string{"p.common_name ASC", "p.id ASC"},
	})
	rows, err := qr.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, QueryError("get medicinal use plants", err)
	}
	if mu.Plants, err = scanPlants(rows); err != nil {
		return nil, QueryError("get medicinal use plants", err)
	}
	mu.PlantCount = len(mu.Plants)
	return mu, nil
}

// CreateMedicinalUse is get-or-create: a name that already exists in any
// letter case returns the existing use unchanged.
func (s *store) CreateMedicinalUse(
	ctx context.Context,
	name, description string,
) (*catalog.MedicinalUse, error) {
	name = catalog.NormalizeUseName(name)
	if err := catalog.ValidateUseName(name); err != nil {
		return nil, err
	}

	var res *catalog.MedicinalUse
	err := s.withTx(ctx, "create_medicinal_use", func(tx *sql.Tx) error {
		var id int
		existing, err := s.findMedicinalUseDuplicate(ctx, tx, name, 0)
		if err != nil {
			return err
		}
		if existing != nil {
			id = existing.ID
		} else {
			ins := s.insertUseName(ctx, tx, name, description)
			if ins.kind == failed {
				return ins.err
			}
			id = ins.id
		}
		res, err = s.writtenUse(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Medicinal use ready", "id", res.ID, "use_name", res.UseName)
	return res, nil
}

func (s *store) UpdateMedicinalUse(
	ctx context.Context,
	id int,
	name, description string,
) (*catalog.MedicinalUse, error) {
	name = catalog.NormalizeUseName(name)
	if err := catalog.ValidateUseName(name); err != nil {
		return nil, err
	}

	var res *catalog.MedicinalUse
	err := s.withTx(ctx, "update_medicinal_use", func(tx *sql.Tx) error {
		mu, err := s.useByID(ctx, tx, id)
		if err != nil {
			return err
		}
		if mu == nil {
			return &catalog.NotFoundError{Kind: catalog.KindMedicinalUse, ID: id}
		}

		dup, err := s.findMedicinalUseDuplicate(ctx, tx, name, id)
		if err != nil {
			return err
		}
		if dup != nil {
			return catalog.MedicinalUseConflict(dup)
		}

		stmt := s.q(`UPDATE medicinal_uses
			SET use_name = ?, use_key = ?, description = ? WHERE id = ?`)
		err = savepoint(ctx, tx, "use_name_update", func() error {
			_, err := tx.ExecContext(ctx, stmt,
				name, catalog.NameKey(name), nullString(description), id)
			return err
		})
		if err == nil {
			res, err = s.writtenUse(ctx, tx, id)
			return err
		}
		if s.dialect.IsUniqueViolation(err) {
			dup, dErr := s.findMedicinalUseDuplicate(ctx, tx, name, id)
			if dErr == nil && dup != nil {
				return catalog.MedicinalUseConflict(dup)
			}
		}
		return UseNameError(name, err)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Medicinal use updated", "id", id, "use_name", name)
	return res, nil
}

// writtenUse reads a medicinal use back inside the transaction that
// wrote it.
func (s *store) writtenUse(
	ctx context.Context,
	tx *sql.Tx,
	id int,
) (*catalog.MedicinalUse, error) {
	mu, err := s.useWithPlants(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if mu == nil {
		return nil, &catalog.NotFoundError{Kind: catalog.KindMedicinalUse, ID: id}
	}
	return mu, nil
}

// DeleteMedicinalUse removes a use. The cascade rule of the schema removes
// its links to plants.
func (s *store) DeleteMedicinalUse(
	ctx context.Context,
	id int,
) (*catalog.MedicinalUse, error) {
	var res *catalog.MedicinalUse
	err := s.withTx(ctx, "delete_medicinal_use", func(tx *sql.Tx) error {
		stmt := s.q(`DELETE FROM medicinal_uses WHERE id = ?
			RETURNING id, use_name, description`)
		mu, err := scanUse(tx.QueryRowContext(ctx, stmt, id))
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		if err != nil {
			return QueryError("delete medicinal use", err)
		}
		res = &mu
		return nil
	})
	if err != nil {
		return nil, err
	}
	if res != nil {
		slog.Info("Medicinal use deleted", "id", id, "use_name", res.UseName)
	}
	return res, nil
}

func (s *store) useByID(
	ctx context.Context,
	qr querier,
	id int,
) (*catalog.MedicinalUse, error) {
	stmt, args := s.render(query.Select{
		Columns: useCols,
		From:    "medicinal_uses",
		Where:   []query.Pred{query.Eq("id", id)},
	})
	mu, err := scanUse(qr.QueryRowContext(ctx, stmt, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, QueryError("get medicinal use", err)
	}
	return &mu, nil
}
