package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// BacktestRun is the stored metadata of one completed backtest run.
type BacktestRun struct {
	ID             string          `json:"id"`
	Symbol         string          `json:"symbol"`
	InitialCapital decimal.Decimal `json:"initialCapital"`
	StartDate      string          `json:"startDate"`
	EndDate        string          `json:"endDate"`
	CreatedAt      time.Time       `json:"createdAt"`
}
