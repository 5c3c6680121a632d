package engine

import (
	"stratledger/types"
	"time"

	"github.com/shopspring/decimal"
)

// assetCursor walks the annotated trade ledger and the daily closes
// while the reconciler iterates calendar days. Both indexes only move
// forward, so step must be called with ascending days.
type assetCursor struct {
	trades   []types.AnnotatedTrade
	prices   []types.DailyPrice
	tradeIdx int
	priceIdx int

	cash      decimal.Decimal
	position  int64
	lastClose decimal.Decimal
}

func newAssetCursor(trades []types.AnnotatedTrade, prices []types.DailyPrice, initialCapital decimal.Decimal) *assetCursor {
	return &assetCursor{
		trades: trades,
		prices: prices,
		cash:   initialCapital,
	}
}

// step emits the mark-to-market point for one day: cash/position from
// the last trade on or before the day, price from the day's close or the
// last close seen before it (zero until the first close is observed).
func (c *assetCursor) step(day string) types.DailyAsset {
	for c.tradeIdx < len(c.trades) {
		t := c.trades[c.tradeIdx]
		if t.Timestamp.Format(dayLayout) > day {
			break
		}
		c.cash = t.CashAfter
		c.position = t.PositionAfter
		c.tradeIdx++
	}

	for c.priceIdx < len(c.prices) {
		p := c.prices[c.priceIdx]
		if p.Date > day {
			break
		}
		c.lastClose = p.Close
		c.priceIdx++
	}

	securityValue := decimal.NewFromInt(c.position).Mul(c.lastClose)
	return types.DailyAsset{
		Date:          day,
		Cash:          c.cash,
		Position:      c.position,
		Price:         c.lastClose,
		SecurityValue: securityValue,
		TotalAssets:   c.cash.Add(securityValue),
	}
}

// BuildDailyAssets produces exactly one DailyAsset per calendar day from
// startDate to endDate inclusive. An inverted or unparseable range
// yields an empty series.
func BuildDailyAssets(trades []types.AnnotatedTrade, prices []types.DailyPrice, startDate, endDate string, initialCapital decimal.Decimal) []types.DailyAsset {
	days := calendarDays(startDate, endDate)
	cursor := newAssetCursor(trades, prices, initialCapital)

	assets := make([]types.DailyAsset, 0, len(days))
	for _, day := range days {
		assets = append(assets, cursor.step(day))
	}
	return assets
}

func calendarDays(startDate, endDate string) []string {
	start, err := time.Parse(dayLayout, startDate)
	if err != nil {
		return nil
	}
	end, err := time.Parse(dayLayout, endDate)
	if err != nil {
		return nil
	}

	var days []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(dayLayout))
	}
	return days
}
