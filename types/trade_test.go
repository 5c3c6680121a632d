package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestTradeUnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		wantTime time.Time
		wantZero bool
	}{
		{
			name:     "datetime timestamp",
			payload:  `{"timestamp":"2024-01-02 10:30:00","action":"buy","price":10.5,"quantity":100,"amount":1050}`,
			wantTime: time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "date-only timestamp",
			payload:  `{"timestamp":"2024-01-02","action":"sell","price":12,"quantity":50,"amount":600}`,
			wantTime: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "date key instead of timestamp",
			payload:  `{"date":"2024-01-02","action":"hold","price":11,"quantity":0,"amount":0}`,
			wantTime: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "rfc3339 timestamp",
			payload:  `{"timestamp":"2024-01-02T10:30:00Z","action":"buy","price":10,"quantity":1,"amount":10}`,
			wantTime: time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "unparseable timestamp decodes to zero time",
			payload:  `{"timestamp":"02/01/2024","action":"buy","price":10,"quantity":1,"amount":10}`,
			wantZero: true,
		},
		{
			name:     "missing timestamp decodes to zero time",
			payload:  `{"action":"buy","price":10,"quantity":1,"amount":10}`,
			wantZero: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var trade Trade
			if err := json.Unmarshal([]byte(tt.payload), &trade); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if tt.wantZero {
				if !trade.Timestamp.IsZero() {
					t.Errorf("Timestamp = %v, want zero", trade.Timestamp)
				}
				return
			}
			if !trade.Timestamp.Equal(tt.wantTime) {
				t.Errorf("Timestamp = %v, want %v", trade.Timestamp, tt.wantTime)
			}
		})
	}
}

// Decoding an AnnotatedTrade must fill the annotation fields, not just
// the embedded Trade.
func TestAnnotatedTradeUnmarshalJSON(t *testing.T) {
	pnl := decimal.RequireFromString("80")
	row := AnnotatedTrade{
		Trade: Trade{
			Timestamp: time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC),
			Action:    ActionSell,
			Price:     decimal.RequireFromString("12"),
			Quantity:  40,
			Amount:    decimal.RequireFromString("480"),
		},
		PositionAfter:      60,
		AvgCostAfter:       decimal.RequireFromString("10"),
		CashAfter:          decimal.RequireFromString("9480"),
		RealizedPnl:        &pnl,
		SecurityValueAfter: decimal.RequireFromString("720"),
		TotalAssetsAfter:   decimal.RequireFromString("10200"),
	}
	payload, err := json.Marshal(row)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got AnnotatedTrade
	if err := json.Unmarshal(payload, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.PositionAfter != 60 {
		t.Errorf("PositionAfter = %d, want 60", got.PositionAfter)
	}
	if !got.AvgCostAfter.Equal(row.AvgCostAfter) {
		t.Errorf("AvgCostAfter = %s, want %s", got.AvgCostAfter, row.AvgCostAfter)
	}
	if !got.CashAfter.Equal(row.CashAfter) {
		t.Errorf("CashAfter = %s, want %s", got.CashAfter, row.CashAfter)
	}
	if got.RealizedPnl == nil || !got.RealizedPnl.Equal(pnl) {
		t.Errorf("RealizedPnl = %v, want 80", got.RealizedPnl)
	}
	if !got.TotalAssetsAfter.Equal(row.TotalAssetsAfter) {
		t.Errorf("TotalAssetsAfter = %s, want %s", got.TotalAssetsAfter, row.TotalAssetsAfter)
	}
	if got.Action != ActionSell || got.Quantity != 40 {
		t.Errorf("embedded trade = %s/%d, want sell/40", got.Action, got.Quantity)
	}
}

func TestPriceBarUnmarshalJSON(t *testing.T) {
	payload := `{"date":"2024-01-02","open":9.8,"close":10.2}`
	var bar PriceBar
	if err := json.Unmarshal([]byte(payload), &bar); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !bar.Timestamp.Equal(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Timestamp = %v, want 2024-01-02", bar.Timestamp)
	}
	if !bar.Close.Equal(decimal.RequireFromString("10.2")) {
		t.Errorf("Close = %s, want 10.2", bar.Close)
	}
	if !bar.Open.Equal(decimal.RequireFromString("9.8")) {
		t.Errorf("Open = %s, want 9.8", bar.Open)
	}
}
