package engine

import (
	"fmt"
	"sync"

	"stratledger/types"

	"github.com/shopspring/decimal"
)

// Report extends DisplayMetrics with the distribution figures the
// summary cards don't show.
type Report struct {
	StartDate string
	EndDate   string
	TotalDays int

	InitialCapital   decimal.Decimal
	FinalEquity      decimal.Decimal
	FinalMarketPrice decimal.Decimal

	Metrics types.DisplayMetrics

	AvgWin               decimal.Decimal
	AvgLoss              decimal.Decimal
	ProfitLossRatio      decimal.Decimal
	MaxConsecutiveLosses int
}

// GenerateReport derives the extended report from an evaluated result.
func (r *Result) GenerateReport() *Report {
	report := &Report{
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		TotalDays:      len(r.DailyAssets),
		InitialCapital: r.InitialCapital,
		FinalEquity:    r.InitialCapital,
		Metrics:        r.Metrics,
	}
	if len(r.DailyAssets) > 0 {
		last := r.DailyAssets[len(r.DailyAssets)-1]
		report.FinalEquity = last.TotalAssets
		report.FinalMarketPrice = last.Price
	}

	// Done must fire after the result is stored, not inside the calc
	// helpers, or Wait can release before the assignment lands.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		report.AvgWin, report.AvgLoss = calcAvgWinLoss(r.AnnotatedTrades)
	}()
	go func() {
		defer wg.Done()
		report.MaxConsecutiveLosses = calcMaxConsecutiveLosses(r.AnnotatedTrades)
	}()
	wg.Wait()

	// |avg win / avg loss|, zero when either side is empty.
	if report.AvgLoss.GreaterThan(decimal.Zero) {
		report.ProfitLossRatio = report.AvgWin.Div(report.AvgLoss)
	}
	return report
}

// calcAvgWinLoss averages the realized P&L of winning and losing sells.
// The loss average is returned as an absolute amount.
func calcAvgWinLoss(trades []types.AnnotatedTrade) (decimal.Decimal, decimal.Decimal) {
	sumWins := decimal.Zero
	sumLosses := decimal.Zero
	winCount := 0
	lossCount := 0

	for _, t := range trades {
		if t.Action != types.ActionSell || t.RealizedPnl == nil {
			continue
		}
		switch {
		case t.RealizedPnl.GreaterThan(decimal.Zero):
			sumWins = sumWins.Add(*t.RealizedPnl)
			winCount++
		case t.RealizedPnl.LessThan(decimal.Zero):
			sumLosses = sumLosses.Add(t.RealizedPnl.Abs())
			lossCount++
		}
	}

	avgWin := decimal.Zero
	avgLoss := decimal.Zero
	if winCount > 0 {
		avgWin = sumWins.Div(decimal.NewFromInt(int64(winCount)))
	}
	if lossCount > 0 {
		avgLoss = sumLosses.Div(decimal.NewFromInt(int64(lossCount)))
	}
	return avgWin, avgLoss
}

func calcMaxConsecutiveLosses(trades []types.AnnotatedTrade) int {
	maxStreak := 0
	streak := 0

	// The ledger is already chronological.
	for _, t := range trades {
		if t.Action != types.ActionSell || t.RealizedPnl == nil {
			continue
		}
		if t.RealizedPnl.LessThan(decimal.Zero) {
			streak++
			if streak > maxStreak {
				maxStreak = streak
			}
		} else {
			streak = 0
		}
	}
	return maxStreak
}

func (r *Report) Print() {
	fmt.Println("===== Strategy Evaluation =====")
	fmt.Printf("Period:                %s .. %s (%d days)\n", r.StartDate, r.EndDate, r.TotalDays)
	fmt.Printf("Initial Capital:       %s\n", r.InitialCapital)
	fmt.Printf("Final Equity:          %s\n", r.FinalEquity)
	fmt.Printf("Final Market Price:    %s\n", r.FinalMarketPrice)

	fmt.Println("\n-- Performance --")
	fmt.Printf("Total Return:          %s\n", r.Metrics.TotalReturn)
	fmt.Printf("Max Drawdown:          %s\n", r.Metrics.MaxDrawdown)

	fmt.Println("\n-- Trade-Level Metrics --")
	fmt.Printf("Total Trades:          %d\n", r.Metrics.TotalTrades)
	fmt.Printf("Win Rate:              %s\n", r.Metrics.WinRate)
	fmt.Printf("Winning/Losing:        %d/%d\n", r.Metrics.WinningTrades, r.Metrics.LosingTrades)
	fmt.Printf("Avg Win:               %s\n", r.AvgWin)
	fmt.Printf("Avg Loss:              %s\n", r.AvgLoss)
	fmt.Printf("Profit/Loss Ratio:     %s\n", r.ProfitLossRatio)
	fmt.Printf("Max Consecutive Losses:%d\n", r.MaxConsecutiveLosses)

	fmt.Println("===============================")
}
