package engine

import (
	"sort"
	"stratledger/types"

	"github.com/shopspring/decimal"
)

const dayLayout = "2006-01-02"

// AggregateDailyPrices collapses an intraday price series into one close
// per calendar day. When several bars fall on the same day the last bar
// in input order wins; input order is assumed chronological within a day.
// Bars without a usable timestamp are skipped. Gaps between days are left
// for the daily asset reconciler to carry forward.
func AggregateDailyPrices(bars []types.PriceBar) []types.DailyPrice {
	closes := make(map[string]decimal.Decimal, len(bars))
	for _, bar := range bars {
		if bar.Timestamp.IsZero() {
			continue
		}
		closes[bar.Timestamp.Format(dayLayout)] = bar.Close
	}

	days := make([]string, 0, len(closes))
	for day := range closes {
		days = append(days, day)
	}
	sort.Strings(days)

	prices := make([]types.DailyPrice, 0, len(days))
	for _, day := range days {
		prices = append(prices, types.DailyPrice{Date: day, Close: closes[day]})
	}
	return prices
}
