package repository

import (
	"context"
	"errors"

	"stratledger/types"

	"github.com/jackc/pgx/v5"
)

// GetPriceBars retrieves the stored price series of a run, ordered by
// bar time.
func (db *Database) GetPriceBars(runID string, ctx context.Context) ([]types.PriceBar, error) {
	bars, err := db.bars.GetPriceBars(ctx, runID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoPriceBars
		}
		return nil, err
	}
	if len(bars) == 0 {
		return nil, ErrNoPriceBars
	}
	return bars, nil
}
