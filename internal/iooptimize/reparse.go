package iooptimize

import (
	"context"
	"database/sql"
	"log/slog"
	"sync"

	"github.com/gnames/herbdb/pkg/query"
	"golang.org/x/sync/errgroup"
)

// reparsed holds canonical data of a plant before and after parsing.
type reparsed struct {
	plantID       int
	name          string
	canonical     sql.NullString
	canonicalID   sql.NullString
	newCanonical  string
	newCanonicalID string
}

// changed tells if parsing produced a different canonical form.
func (r reparsed) changed() bool {
	return r.canonical.String != r.newCanonical ||
		r.canonicalID.String != r.newCanonicalID
}

// reparsePlants runs a pipeline of three stages:
//  1. loadPlants sends every plant to workers
//  2. workers parse scientific names and pass on changed ones only
//  3. the collector keeps changed records
//
// Changed records are saved in one transaction after the pipeline ends.
// It returns numbers of checked and updated plants.
func reparsePlants(ctx context.Context, o *optimizer, jobs int) (int, int, error) {
	chIn := make(chan reparsed)
	chOut := make(chan reparsed)

	g, gCtx := errgroup.WithContext(ctx)

	var total int
	g.Go(func() error {
		defer close(chIn)
		var err error
		total, err = loadPlants(gCtx, o, chIn)
		return err
	})

	if jobs <= 0 {
		jobs = 1
	}
	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return workerReparse(gCtx, o, chIn, chOut)
		})
	}

	var changed []reparsed
	g.Go(func() error {
		for r := range chOut {
			changed = append(changed, r)
		}
		return nil
	})

	go func() {
		wg.Wait()
		close(chOut)
	}()

	if err := g.Wait(); err != nil {
		return 0, 0, err
	}

	if err := saveReparsed(ctx, o, changed); err != nil {
		return 0, 0, err
	}
	return total, len(changed), nil
}

func loadPlants(ctx context.Context, o *optimizer, chIn chan<- reparsed) (int, error) {
	q := `SELECT id, scientific_name, canonical_name, canonical_id
	FROM plants ORDER BY id`
	rows, err := o.operator.DB().QueryContext(ctx, q)
	if err != nil {
		return 0, ReparseError("load plants", err)
	}
	defer rows.Close()

	var count int
	for rows.Next() {
		var r reparsed
		err = rows.Scan(&r.plantID, &r.name, &r.canonical, &r.canonicalID)
		if err != nil {
			return count, ReparseError("scan plant", err)
		}

		select {
		case <-ctx.Done():
			return count, ctx.Err()
		case chIn <- r:
		}
		count++
	}

	if err = rows.Err(); err != nil {
		return count, ReparseError("iterate plants", err)
	}
	return count, nil
}

// workerReparse parses names from chIn and sends only changed records to
// chOut.
func workerReparse(
	ctx context.Context,
	o *optimizer,
	chIn <-chan reparsed,
	chOut chan<- reparsed,
) error {
	for r := range chIn {
		can, id := o.parser.Canonical(r.name)
		r.newCanonical = can
		if id.Valid {
			r.newCanonicalID = id.UUID.String()
		}
		if !r.changed() {
			continue
		}

		select {
		case <-ctx.Done():
			// drain the channel so the loader can finish
			for range chIn {
			}
			return ctx.Err()
		case chOut <- r:
		}
	}
	return nil
}

func saveReparsed(ctx context.Context, o *optimizer, changed []reparsed) error {
	if len(changed) == 0 {
		return nil
	}

	tx, err := o.operator.DB().BeginTx(ctx, nil)
	if err != nil {
		return ReparseError("begin transaction", err)
	}
	defer tx.Rollback()

	stmt := query.Rebind(
		`UPDATE plants SET canonical_name = ?, canonical_id = ? WHERE id = ?`,
		o.operator.Dialect().Placeholder,
	)
	for _, r := range changed {
		_, err = tx.ExecContext(ctx, stmt,
			nullString(r.newCanonical), nullString(r.newCanonicalID), r.plantID,
		)
		if err != nil {
			return ReparseError("update plant", err)
		}
		slog.Debug("Canonical form updated",
			"plant_id", r.plantID,
			"canonical", r.newCanonical,
		)
	}

	if err = tx.Commit(); err != nil {
		return ReparseError("commit", err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
