package engine

import (
	"sort"
	"stratledger/types"

	"github.com/shopspring/decimal"
)

// ledgerState is the accumulator of the trade replay fold. Values are
// passed and returned by value so no step mutates a previous one.
type ledgerState struct {
	position int64
	avgCost  decimal.Decimal
	cash     decimal.Decimal
}

func newLedgerState(initialCapital decimal.Decimal) ledgerState {
	return ledgerState{cash: initialCapital}
}

// apply advances the ledger by one trade and emits its annotated row.
func (s ledgerState) apply(t types.Trade) (ledgerState, types.AnnotatedTrade) {
	var realized *decimal.Decimal

	switch t.Action {
	case types.ActionBuy:
		if t.Quantity > 0 {
			held := decimal.NewFromInt(s.position)
			bought := decimal.NewFromInt(t.Quantity)
			if s.position == 0 {
				s.avgCost = t.Price
			} else {
				s.avgCost = s.avgCost.Mul(held).
					Add(t.Price.Mul(bought)).
					Div(held.Add(bought))
			}
			s.position += t.Quantity
		}
		s.cash = s.cash.Sub(t.Amount)

	case types.ActionSell:
		// Selling more than held is clamped to the open position so the
		// position never goes negative; the reported amount is still
		// credited in full. The execution service emits such trades and
		// expects the clamp, see DESIGN.md.
		sold := t.Quantity
		if sold > s.position {
			sold = s.position
		}
		pnl := t.Price.Sub(s.avgCost).Mul(decimal.NewFromInt(sold))
		realized = &pnl
		s.position -= sold
		s.cash = s.cash.Add(t.Amount)

	case types.ActionHold:
		// state carries forward unchanged
	}

	securityValue := decimal.NewFromInt(s.position).Mul(t.Price)
	row := types.AnnotatedTrade{
		Trade:              t,
		PositionAfter:      s.position,
		AvgCostAfter:       s.avgCost,
		CashAfter:          s.cash,
		RealizedPnl:        realized,
		SecurityValueAfter: securityValue,
		TotalAssetsAfter:   s.cash.Add(securityValue),
	}
	return s, row
}

// ReplayTrades walks the trades chronologically and annotates each one
// with the ledger state after applying it. Ties on timestamp keep input
// order. Trades with no parseable timestamp, a negative price, or a
// negative quantity are skipped; the remaining ledger stays well formed.
func ReplayTrades(trades []types.Trade, initialCapital decimal.Decimal) []types.AnnotatedTrade {
	ordered := make([]types.Trade, 0, len(trades))
	for _, t := range trades {
		if t.Timestamp.IsZero() || t.Price.IsNegative() || t.Quantity < 0 {
			continue
		}
		ordered = append(ordered, t)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	state := newLedgerState(initialCapital)
	annotated := make([]types.AnnotatedTrade, 0, len(ordered))
	for _, t := range ordered {
		var row types.AnnotatedTrade
		state, row = state.apply(t)
		annotated = append(annotated, row)
	}
	return annotated
}
