package repository

import (
	"context"

	"stratledger/types"
)

// GetTrades retrieves the executed trades of a run in execution order.
// A run with zero trades is valid (the strategy never fired), so an
// empty result is returned as-is rather than as an error.
func (db *Database) GetTrades(runID string, ctx context.Context) ([]types.Trade, error) {
	return db.trades.GetTrades(ctx, runID)
}
