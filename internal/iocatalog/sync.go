package iocatalog

import (
	"context"
	"database/sql"
	"log/slog"
	"slices"

	"github.com/gnames/herbdb/pkg/catalog"
)

// syncUses makes medicinal uses of a plant equal to the uses of the
// input. With replace all existing links are removed first, so links
// are always recomputed as a whole set.
func (s *store) syncUses(
	ctx context.Context,
	tx *sql.Tx,
	plantID int,
	in catalog.PlantInput,
	replace bool,
) error {
	if replace {
		res, err := tx.ExecContext(ctx,
			s.q(`DELETE FROM plant_medicinal_uses WHERE plant_id = ?`),
			plantID,
		)
		if err != nil {
			return QueryError("remove plant links", err)
		}
		n, _ := res.RowsAffected()
		slog.Debug("Removed plant links", "plant_id", plantID, "count", n)
	}

	ids := slices.Clone(in.MedicinalUseIDs)
	for _, name := range in.NewMedicinalUseNames {
		res := s.resolveUseName(ctx, tx, name)
		switch res.kind {
		case failed:
			return res.err
		case conflictDetected:
			slog.Debug("Medicinal use name resolved after conflict",
				"use_name", name, "id", res.id)
		}
		if !slices.Contains(ids, res.id) {
			ids = append(ids, res.id)
		}
	}

	// duplicates in the input are ignored by the unique pair index
	stmt := s.q(`INSERT INTO plant_medicinal_uses (plant_id, medicinal_use_id)
		VALUES (?, ?) ON CONFLICT DO NOTHING`)
	for _, useID := range ids {
		if _, err := tx.ExecContext(ctx, stmt, plantID, useID); err != nil {
			return LinkError(plantID, useID, err)
		}
	}

	slog.Debug("Linked plant to medicinal uses",
		"plant_id", plantID,
		"use_ids", ids,
	)
	return nil
}
