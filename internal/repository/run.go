package repository

import (
	"context"
	"errors"
	"fmt"

	"stratledger/types"

	"github.com/jackc/pgx/v5"
)

// GetRunByID retrieves a stored backtest run by its id.
func (db *Database) GetRunByID(id string, ctx context.Context) (*types.BacktestRun, error) {
	run, err := db.runs.GetRun(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("run %s %w", id, ErrRunNotFound)
		}
		return nil, err
	}
	return &run, nil
}
