package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/AgustinTorres17/i-datos-55-cents/internal/metrics"
	"github.com/AgustinTorres17/i-datos-55-cents/internal/models"
	"github.com/AgustinTorres17/i-datos-55-cents/internal/reconcile"
)

// TeamRepository handles team database operations
type TeamRepository struct {
	db *Database
}

// ListCanonical returns every team as a canonical (id, name) pair, ordered by id
func (r *TeamRepository) ListCanonical(ctx context.Context) ([]reconcile.Canonical, error) {
	start := time.Now()
	rows, err := r.db.Pool.Query(ctx, `SELECT id, name FROM teams ORDER BY id`)
	if err != nil {
		metrics.RecordDBQuery("select", models.TeamsTable.Name, "error", time.Since(start).Seconds())
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	var teams []reconcile.Canonical
	for rows.Next() {
		var c reconcile.Canonical
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating teams: %w", err)
	}

	metrics.RecordDBQuery("select", models.TeamsTable.Name, "success", time.Since(start).Seconds())
	return teams, nil
}
