package iooptimize

import (
	"context"
	"log/slog"
)

// removeOrphanUses deletes medicinal uses that are not linked to any
// plant. Uses the LEFT OUTER JOIN pattern, which both stores plan well.
func removeOrphanUses(ctx context.Context, o *optimizer) (int, error) {
	q := `
DELETE FROM medicinal_uses
WHERE id IN (
	SELECT mu.id
	FROM medicinal_uses mu
	LEFT OUTER JOIN plant_medicinal_uses pmu
		ON mu.id = pmu.medicinal_use_id
	WHERE pmu.medicinal_use_id IS NULL
)`

	res, err := o.operator.DB().ExecContext(ctx, q)
	if err != nil {
		return 0, OrphanRemovalError(err)
	}

	count, err := res.RowsAffected()
	if err != nil {
		return 0, OrphanRemovalError(err)
	}

	slog.Info("Removed medicinal uses without plants", "count", count)
	return int(count), nil
}
