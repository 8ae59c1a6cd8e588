package iocatalog

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gnames/herbdb/pkg/catalog"
	"github.com/gnames/herbdb/pkg/query"
)

// Search looks for the term inside plant names and medicinal use names.
// The two searches are independent: a plant is not found through the
// name of its medicinal use.
func (s *store) Search(
	ctx context.Context,
	term string,
) (*catalog.SearchResult, error) {
	term = strings.TrimSpace(term)
	res := &catalog.SearchResult{
		Term:          term,
		Plants:        make([]catalog.Plant, 0),
		MedicinalUses: make([]catalog.MedicinalUse, 0),
	}
	if term == "" {
		return res, nil
	}

	key := catalog.NameKey(term)
	stmt, args := s.render(query.Select{
		Columns: plantCols,
		From:    "plants",
		Where: []query.Pred{query.Or(
			query.Contains("common_key", key),
			query.Contains("scientific_key", key),
		)},
		OrderBy: []string{"common_name ASC", "id ASC"},
	})
	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, QueryError("search plants", err)
	}
	if res.Plants, err = scanPlants(rows); err != nil {
		return nil, QueryError("search plants", err)
	}

	stmt, args = s.render(query.Select{
		Columns: useCols,
		From:    "medicinal_uses",
		Where:   []query.Pred{query.Contains("use_key", key)},
		OrderBy: []string{"use_name ASC", "id ASC"},
	})
	rows, err = s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, QueryError("search medicinal uses", err)
	}
	if res.MedicinalUses, err = scanUses(rows); err != nil {
		return nil, QueryError("search medicinal uses", err)
	}

	slog.Debug("Search finished",
		"term", term,
		"plants", len(res.Plants),
		"medicinal_uses", len(res.MedicinalUses),
	)
	return res, nil
}
