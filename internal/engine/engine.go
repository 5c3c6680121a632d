package engine

import (
	"context"
	"fmt"

	"stratledger/types"

	"github.com/schollz/progressbar/v3"
	"github.com/shopspring/decimal"
)

type dataStore interface {
	GetTrades(runID string, ctx context.Context) ([]types.Trade, error)
	GetPriceBars(runID string, ctx context.Context) ([]types.PriceBar, error)
}

// Input is one complete backtest result as delivered by the execution
// service. Evaluating it replaces any previous result; nothing is
// updated incrementally.
type Input struct {
	Trades         []types.Trade
	PriceBars      []types.PriceBar
	InitialCapital decimal.Decimal
	StartDate      string
	EndDate        string
	Fallback       Fallback
}

// Result carries the three series the presentation layer consumes.
type Result struct {
	AnnotatedTrades []types.AnnotatedTrade
	DailyPrices     []types.DailyPrice
	DailyAssets     []types.DailyAsset
	Metrics         types.DisplayMetrics

	InitialCapital decimal.Decimal
	StartDate      string
	EndDate        string
}

// Evaluate runs the whole reconciliation pipeline: replay the trades,
// collapse the price series to daily closes, reconcile both into the
// day-by-day asset series, then derive the display metrics.
func Evaluate(input Input) *Result {
	annotated := ReplayTrades(input.Trades, input.InitialCapital)
	prices := AggregateDailyPrices(input.PriceBars)
	assets := BuildDailyAssets(annotated, prices, input.StartDate, input.EndDate, input.InitialCapital)

	return &Result{
		AnnotatedTrades: annotated,
		DailyPrices:     prices,
		DailyAssets:     assets,
		Metrics:         deriveDisplayMetrics(annotated, assets, input.InitialCapital, input.Fallback),
		InitialCapital:  input.InitialCapital,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
	}
}

// EquityCurve is the daily asset series shaped for the equity chart.
func (r *Result) EquityCurve() []types.EquityPoint {
	points := make([]types.EquityPoint, 0, len(r.DailyAssets))
	for _, a := range r.DailyAssets {
		points = append(points, types.EquityPoint{Date: a.Date, Value: a.TotalAssets})
	}
	return points
}

// DailyReturns is the day-over-day percentage change of total assets.
// The first day and any day following a non-positive total report zero.
func (r *Result) DailyReturns() []types.DailyReturnPoint {
	points := make([]types.DailyReturnPoint, 0, len(r.DailyAssets))
	prev := decimal.Zero
	for i, a := range r.DailyAssets {
		ret := decimal.Zero
		if i > 0 && prev.GreaterThan(decimal.Zero) {
			ret = a.TotalAssets.Sub(prev).Div(prev)
		}
		points = append(points, types.DailyReturnPoint{Date: a.Date, Returns: ret})
		prev = a.TotalAssets
	}
	return points
}

type ReportingConfig struct {
	showProgress   bool
	tradesFilePath string
	assetsFilePath string
}

func NewReportingConfig(showProgress bool, tradesFilePath, assetsFilePath string) *ReportingConfig {
	return &ReportingConfig{
		showProgress:   showProgress,
		tradesFilePath: tradesFilePath,
		assetsFilePath: assetsFilePath,
	}
}

type RunConfig struct {
	RunID          string
	InitialCapital decimal.Decimal
	StartDate      string
	EndDate        string
}

// Engine evaluates stored backtest runs loaded through a dataStore.
type Engine struct {
	db        dataStore
	reporting *ReportingConfig
}

func NewEngine(db dataStore, reporting *ReportingConfig) *Engine {
	if reporting == nil {
		reporting = &ReportingConfig{}
	}
	return &Engine{db: db, reporting: reporting}
}

func (e *Engine) Run(cfg RunConfig) (*Result, error) {
	ctx := context.Background()

	trades, err := e.db.GetTrades(cfg.RunID, ctx)
	if err != nil {
		return nil, fmt.Errorf("load trades: %w", err)
	}
	bars, err := e.db.GetPriceBars(cfg.RunID, ctx)
	if err != nil {
		return nil, fmt.Errorf("load price bars: %w", err)
	}

	annotated := ReplayTrades(trades, cfg.InitialCapital)
	prices := AggregateDailyPrices(bars)

	days := calendarDays(cfg.StartDate, cfg.EndDate)
	cursor := newAssetCursor(annotated, prices, cfg.InitialCapital)
	var bar *progressbar.ProgressBar
	if e.reporting.showProgress {
		bar = initProgressBar(len(days))
	}
	assets := make([]types.DailyAsset, 0, len(days))
	for _, day := range days {
		assets = append(assets, cursor.step(day))
		if bar != nil {
			bar.Add(1)
		}
	}

	result := &Result{
		AnnotatedTrades: annotated,
		DailyPrices:     prices,
		DailyAssets:     assets,
		Metrics:         deriveDisplayMetrics(annotated, assets, cfg.InitialCapital, Fallback{}),
		InitialCapital:  cfg.InitialCapital,
		StartDate:       cfg.StartDate,
		EndDate:         cfg.EndDate,
	}

	if e.reporting.tradesFilePath != "" {
		if err := writeAnnotatedTradesCSVFile(e.reporting.tradesFilePath, result.AnnotatedTrades); err != nil {
			return nil, err
		}
	}
	if e.reporting.assetsFilePath != "" {
		if err := writeDailyAssetsCSVFile(e.reporting.assetsFilePath, result.DailyAssets); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func initProgressBar(maxTicks int) *progressbar.ProgressBar {
	return progressbar.NewOptions(maxTicks,
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetDescription("Reconciling daily assets..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
}
