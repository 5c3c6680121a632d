package types

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PriceBar is one raw bar of the source price series, at whatever
// granularity the execution service produced it.
type PriceBar struct {
	Timestamp time.Time       `json:"timestamp"`
	Open      decimal.Decimal `json:"open"`
	Close     decimal.Decimal `json:"close"`
}

// DailyPrice is one closing price per distinct trading day.
type DailyPrice struct {
	Date  string          `json:"date"`
	Close decimal.Decimal `json:"close"`
}

func (b *PriceBar) UnmarshalJSON(data []byte) error {
	var raw struct {
		Timestamp string          `json:"timestamp"`
		Date      string          `json:"date"`
		Open      decimal.Decimal `json:"open"`
		Close     decimal.Decimal `json:"close"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	ts := raw.Timestamp
	if ts == "" {
		ts = raw.Date
	}
	b.Timestamp = parseTimestamp(ts)
	b.Open = raw.Open
	b.Close = raw.Close
	return nil
}
