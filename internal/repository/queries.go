package repository

import (
	"context"

	"stratledger/types"

	"github.com/jackc/pgx/v5/pgxpool"
)

// queries issues the raw SQL against the pool. The Database wrappers
// translate its errors into the package sentinels.
type queries struct {
	pool *pgxpool.Pool
}

const getRunSQL = `
SELECT id, symbol, initial_capital, start_date, end_date, created_at
FROM backtest_runs
WHERE id = $1`

const getTradesSQL = `
SELECT executed_at, action, price, quantity, amount
FROM run_trades
WHERE run_id = $1
ORDER BY executed_at, seq`

const getPriceBarsSQL = `
SELECT bar_time, open, close
FROM run_price_bars
WHERE run_id = $1
ORDER BY bar_time`

func (q *queries) GetRun(ctx context.Context, id string) (types.BacktestRun, error) {
	var run types.BacktestRun
	err := q.pool.QueryRow(ctx, getRunSQL, id).Scan(
		&run.ID,
		&run.Symbol,
		&run.InitialCapital,
		&run.StartDate,
		&run.EndDate,
		&run.CreatedAt,
	)
	if err != nil {
		return types.BacktestRun{}, err
	}
	return run, nil
}

func (q *queries) GetTrades(ctx context.Context, runID string) ([]types.Trade, error) {
	rows, err := q.pool.Query(ctx, getTradesSQL, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trades []types.Trade
	for rows.Next() {
		var t types.Trade
		var action string
		if err := rows.Scan(&t.Timestamp, &action, &t.Price, &t.Quantity, &t.Amount); err != nil {
			return nil, err
		}
		t.Action = types.Action(action)
		trades = append(trades, t)
	}
	return trades, rows.Err()
}

func (q *queries) GetPriceBars(ctx context.Context, runID string) ([]types.PriceBar, error) {
	rows, err := q.pool.Query(ctx, getPriceBarsSQL, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bars []types.PriceBar
	for rows.Next() {
		var b types.PriceBar
		if err := rows.Scan(&b.Timestamp, &b.Open, &b.Close); err != nil {
			return nil, err
		}
		bars = append(bars, b)
	}
	return bars, rows.Err()
}
