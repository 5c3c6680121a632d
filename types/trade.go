package types

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type Action string

const (
	ActionBuy  Action = "buy"
	ActionSell Action = "sell"
	ActionHold Action = "hold"
)

// Trade is one executed trade as reported by the backtest-execution
// service. Amount is the actual cash moved and is trusted as given, it
// is not recomputed from Price*Quantity.
type Trade struct {
	Timestamp time.Time       `json:"timestamp"`
	Action    Action          `json:"action"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int64           `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
}

// AnnotatedTrade is a Trade plus the ledger state after applying it.
// RealizedPnl is non-nil only for sells.
//
// It has its own decoder: the embedded Trade's would otherwise be
// promoted and drop every annotation field.
type AnnotatedTrade struct {
	Trade
	PositionAfter      int64            `json:"positionAfter"`
	AvgCostAfter       decimal.Decimal  `json:"avgCostAfter"`
	CashAfter          decimal.Decimal  `json:"cashAfter"`
	RealizedPnl        *decimal.Decimal `json:"realizedPnl"`
	SecurityValueAfter decimal.Decimal  `json:"securityValueAfter"`
	TotalAssetsAfter   decimal.Decimal  `json:"totalAssetsAfter"`
}

// The execution service is inconsistent about timestamps: some payloads
// carry "timestamp", some "date", in any of the layouts below. A record
// whose timestamp cannot be parsed decodes with a zero Timestamp and is
// dropped by the consuming component instead of failing the decode.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC3339,
}

func parseTimestamp(s string) time.Time {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts
		}
	}
	return time.Time{}
}

func (t *Trade) UnmarshalJSON(data []byte) error {
	var raw struct {
		Timestamp string          `json:"timestamp"`
		Date      string          `json:"date"`
		Action    Action          `json:"action"`
		Price     decimal.Decimal `json:"price"`
		Quantity  int64           `json:"quantity"`
		Amount    decimal.Decimal `json:"amount"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	ts := raw.Timestamp
	if ts == "" {
		ts = raw.Date
	}
	t.Timestamp = parseTimestamp(ts)
	t.Action = raw.Action
	t.Price = raw.Price
	t.Quantity = raw.Quantity
	t.Amount = raw.Amount
	return nil
}

func (a *AnnotatedTrade) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &a.Trade); err != nil {
		return err
	}
	var raw struct {
		PositionAfter      int64            `json:"positionAfter"`
		AvgCostAfter       decimal.Decimal  `json:"avgCostAfter"`
		CashAfter          decimal.Decimal  `json:"cashAfter"`
		RealizedPnl        *decimal.Decimal `json:"realizedPnl"`
		SecurityValueAfter decimal.Decimal  `json:"securityValueAfter"`
		TotalAssetsAfter   decimal.Decimal  `json:"totalAssetsAfter"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	a.PositionAfter = raw.PositionAfter
	a.AvgCostAfter = raw.AvgCostAfter
	a.CashAfter = raw.CashAfter
	a.RealizedPnl = raw.RealizedPnl
	a.SecurityValueAfter = raw.SecurityValueAfter
	a.TotalAssetsAfter = raw.TotalAssetsAfter
	return nil
}
