package types

import (
	"github.com/shopspring/decimal"
)

type EquityPoint struct {
	Date  string          `json:"date"`
	Value decimal.Decimal `json:"value"`
}

type DailyReturnPoint struct {
	Date    string          `json:"date"`
	Returns decimal.Decimal `json:"returns"`
}
