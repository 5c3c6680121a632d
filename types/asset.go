package types

import (
	"github.com/shopspring/decimal"
)

// DailyAsset is the mark-to-market state for one calendar day.
// SecurityValue is always Position*Price and TotalAssets is always
// Cash+SecurityValue.
type DailyAsset struct {
	Date          string          `json:"date"`
	Cash          decimal.Decimal `json:"cash"`
	Position      int64           `json:"position"`
	Price         decimal.Decimal `json:"price"`
	SecurityValue decimal.Decimal `json:"securityValue"`
	TotalAssets   decimal.Decimal `json:"totalAssets"`
}
