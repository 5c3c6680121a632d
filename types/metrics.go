package types

import (
	"github.com/shopspring/decimal"
)

// DisplayMetrics is the summary shown after a run. TotalReturn and
// MaxDrawdown come from the daily asset series, the trade counts and
// WinRate from the trade ledger; it is always rebuilt whole, never
// mutated in place.
type DisplayMetrics struct {
	TotalReturn   decimal.Decimal `json:"totalReturn"`
	MaxDrawdown   decimal.Decimal `json:"maxDrawdown"`
	WinRate       decimal.Decimal `json:"winRate"`
	TotalTrades   int             `json:"totalTrades"`
	WinningTrades int             `json:"winningTrades"`
	LosingTrades  int             `json:"losingTrades"`
}
