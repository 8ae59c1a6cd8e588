package iocatalog

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/gnames/herbdb/pkg/catalog"
	"github.com/gnames/herbdb/pkg/query"
)

// FindPlantDuplicate returns the first plant (by id) whose scientific or
// common name matches case-insensitively. Names are compared by their
// case-folded keys.
func (s *store) FindPlantDuplicate(
	ctx context.Context,
	scientificName, commonName string,
) (*catalog.Plant, error) {
	return s.findPlantDuplicate(ctx, s.db, scientificName, commonName, 0)
}

// FindMedicinalUseDuplicate returns a medicinal use with the same name
// ignoring case.
func (s *store) FindMedicinalUseDuplicate(
	ctx context.Context,
	name string,
) (*catalog.MedicinalUse, error) {
	return s.findMedicinalUseDuplicate(ctx, s.db, name, 0)
}

// findPlantDuplicate skips the plant with id exclude, if it is positive.
func (s *store) findPlantDuplicate(
	ctx context.Context,
	qr querier,
	scientificName, commonName string,
	exclude int,
) (*catalog.Plant, error) {
	sciKey := catalog.NameKey(scientificName)
	commonKey := catalog.NameKey(commonName)

	var names []query.Pred
	if sciKey != "" {
		names = append(names, query.Eq("scientific_key", sciKey))
	}
	if commonKey != "" {
		names = append(names, query.Eq("common_key", commonKey))
	}
	if len(names) == 0 {
		return nil, nil
	}

	sel := query.Select{
		Columns: plantCols,
		From:    "plants",
		Where:   []query.Pred{query.Or(names...)},
		OrderBy: []string{"id"},
		Limit:   1,
	}
	if exclude > 0 {
		sel.Where = append(sel.Where, query.Ne("id", exclude))
	}

	stmt, args := s.render(sel)
	p, err := scanPlant(qr.QueryRowContext(ctx, stmt, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, QueryError("find plant duplicate", err)
	}
	return &p, nil
}

func (s *store) findMedicinalUseDuplicate(
	ctx context.Context,
	qr querier,
	name string,
	exclude int,
) (*catalog.MedicinalUse, error) {
	key := catalog.NameKey(name)
	if key == "" {
		return nil, nil
	}

	sel := query.Select{
		Columns: useCols,
		From:    "medicinal_uses",
		Where:   []query.Pred{query.Eq("use_key", key)},
		OrderBy: []string{"id"},
		Limit:   1,
	}
	if exclude > 0 {
		sel.Where = append(sel.Where, query.Ne("id", exclude))
	}

	stmt, args := s.render(sel)
	mu, err := scanUse(qr.QueryRowContext(ctx, stmt, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, QueryError("find medicinal use duplicate", err)
	}
	return &mu, nil
}

type resolution int

const (
	resolved resolution = iota
	conflictDetected
	failed
)

// useNameResult is one of Resolved(id), ConflictDetected(existing) or
// Failed(err).
type useNameResult struct {
	kind     resolution
	id       int
	existing *catalog.MedicinalUse
	err      error
}

func resolvedUse(id int) useNameResult {
	return useNameResult{kind: resolved, id: id}
}

func conflictUse(existing *catalog.MedicinalUse) useNameResult {
	return useNameResult{kind: conflictDetected, id: existing.ID, existing: existing}
}

func failedUse(err error) useNameResult {
	return useNameResult{kind: failed, err: err}
}

// resolveUseName finds a medicinal use by name ignoring case, or creates
// it.
func (s *store) resolveUseName(
	ctx context.Context,
	tx *sql.Tx,
	name string,
) useNameResult {
	existing, err := s.findMedicinalUseDuplicate(ctx, tx, name, 0)
	if err != nil {
		return failedUse(err)
	}
	if existing != nil {
		return resolvedUse(existing.ID)
	}
	return s.insertUseName(ctx, tx, name, "")
}

// insertUseName inserts a new medicinal use. If a concurrent transaction
// committed the same name first, the insert hits the unique index and
// the row of the winner is adopted. Only a unique violation is
// recovered, and only once.
func (s *store) insertUseName(
	ctx context.Context,
	tx *sql.Tx,
	name, description string,
) useNameResult {
	if s.beforeUseInsert != nil {
		if err := s.beforeUseInsert(ctx, tx, name); err != nil {
			return failedUse(UseNameError(name, err))
		}
	}

	stmt := s.q(`INSERT INTO medicinal_uses (use_name, use_key, description)
		VALUES (?, ?, ?) RETURNING id`)

	var id int
	err := savepoint(ctx, tx, "use_name_insert", func() error {
		return tx.QueryRowContext(ctx, stmt,
			name, catalog.NameKey(name), nullString(description),
		).Scan(&id)
	})
	if err == nil {
		slog.Debug("Medicinal use created", "id", id, "use_name", name)
		return resolvedUse(id)
	}

	if !s.dialect.IsUniqueViolation(err) {
		return failedUse(UseNameError(name, err))
	}

	winner, qErr := s.findMedicinalUseDuplicate(ctx, tx, name, 0)
	if qErr != nil || winner == nil {
		return failedUse(UseNameError(name, err))
	}

	s.metrics.RaceRecovered()
	slog.Info("Adopted concurrently created medicinal use",
		"use_name", name,
		"id", winner.ID,
	)
	return conflictUse(winner)
}
