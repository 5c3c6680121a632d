package engine

import (
	"stratledger/types"

	"github.com/shopspring/decimal"
)

// assetMetrics are the figures only the daily asset series can provide.
type assetMetrics struct {
	totalReturn decimal.Decimal
	maxDrawdown decimal.Decimal
}

// tradeMetrics are the figures only the discrete trade ledger can provide.
type tradeMetrics struct {
	totalTrades   int
	winningTrades int
	losingTrades  int
	winRate       decimal.Decimal
}

// Fallback supplies substitutes for the return figure when a run
// produced no trades at all. FinalEquity wins over Default.
type Fallback struct {
	FinalEquity *decimal.Decimal
	Default     *types.DisplayMetrics
}

func assetBasisMetrics(assets []types.DailyAsset, initialCapital decimal.Decimal) assetMetrics {
	var m assetMetrics

	if len(assets) > 0 && initialCapital.GreaterThan(decimal.Zero) {
		last := assets[len(assets)-1]
		m.totalReturn = last.TotalAssets.Sub(initialCapital).Div(initialCapital)
	}

	// Drawdown needs at least one point after the peak seed.
	if len(assets) >= 2 {
		peak := assets[0].TotalAssets
		for _, point := range assets[1:] {
			if point.TotalAssets.GreaterThan(peak) {
				peak = point.TotalAssets
			}
			if peak.GreaterThan(decimal.Zero) {
				dd := peak.Sub(point.TotalAssets).Div(peak)
				if dd.GreaterThan(m.maxDrawdown) {
					m.maxDrawdown = dd
				}
			}
		}
	}
	return m
}

func tradeBasisMetrics(trades []types.AnnotatedTrade) tradeMetrics {
	m := tradeMetrics{totalTrades: len(trades)}

	settled := 0
	for _, t := range trades {
		if t.Action != types.ActionSell || t.RealizedPnl == nil {
			continue
		}
		settled++
		switch {
		case t.RealizedPnl.GreaterThan(decimal.Zero):
			m.winningTrades++
		case t.RealizedPnl.LessThan(decimal.Zero):
			m.losingTrades++
		}
	}
	if settled > 0 {
		m.winRate = decimal.NewFromInt(int64(m.winningTrades)).
			Div(decimal.NewFromInt(int64(settled)))
	}
	return m
}

// mergeDisplayMetrics is the fixed precedence rule for combining the two
// observational bases: magnitude figures (return, drawdown) from the
// equity series, count figures from the trade ledger. Not configurable.
func mergeDisplayMetrics(am assetMetrics, tm tradeMetrics) types.DisplayMetrics {
	return types.DisplayMetrics{
		TotalReturn:   am.totalReturn,
		MaxDrawdown:   am.maxDrawdown,
		WinRate:       tm.winRate,
		TotalTrades:   tm.totalTrades,
		WinningTrades: tm.winningTrades,
		LosingTrades:  tm.losingTrades,
	}
}

func deriveDisplayMetrics(trades []types.AnnotatedTrade, assets []types.DailyAsset, initialCapital decimal.Decimal, fb Fallback) types.DisplayMetrics {
	merged := mergeDisplayMetrics(
		assetBasisMetrics(assets, initialCapital),
		tradeBasisMetrics(trades),
	)
	if len(trades) > 0 {
		return merged
	}

	switch {
	case fb.FinalEquity != nil:
		merged.TotalReturn = decimal.Zero
		if initialCapital.GreaterThan(decimal.Zero) {
			merged.TotalReturn = fb.FinalEquity.Sub(initialCapital).Div(initialCapital)
		}
	case fb.Default != nil:
		return *fb.Default
	default:
		merged.TotalReturn = decimal.Zero
	}
	return merged
}
