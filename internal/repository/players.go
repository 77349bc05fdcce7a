package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/AgustinTorres17/i-datos-55-cents/internal/metrics"
	"github.com/AgustinTorres17/i-datos-55-cents/internal/models"
	"github.com/AgustinTorres17/i-datos-55-cents/internal/reconcile"
)

// PlayerRepository handles player database operations
type PlayerRepository struct {
	db *Database
}

// ListCanonical returns every player as a canonical (id, name) pair, ordered by id.
// Ordering by id makes the lowest id win when two players share a normalized name.
func (r *PlayerRepository) ListCanonical(ctx context.Context) ([]reconcile.Canonical, error) {
	start := time.Now()
	rows, err := r.db.Pool.Query(ctx, `SELECT id, name FROM players ORDER BY id`)
	if err != nil {
		metrics.RecordDBQuery("select", models.PlayersTable.Name, "error", time.Since(start).Seconds())
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	defer rows.Close()

	var players []reconcile.Canonical
	for rows.Next() {
		var c reconcile.Canonical
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan player: %w", err)
		}
		players = append(players, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating players: %w", err)
	}

	metrics.RecordDBQuery("select", models.PlayersTable.Name, "success", time.Since(start).Seconds())
	return players, nil
}
