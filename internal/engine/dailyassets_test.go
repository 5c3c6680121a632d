package engine

import (
	"testing"
	"time"

	"stratledger/types"
)

func TestBuildDailyAssets(t *testing.T) {
	type wantAsset struct {
		date     string
		cash     string
		position int64
		price    string
		total    string
	}
	tests := []struct {
		name           string
		trades         []types.Trade
		prices         []types.DailyPrice
		startDate      string
		endDate        string
		initialCapital string
		want           []wantAsset
	}{
		{
			name:           "inverted range is empty",
			startDate:      "2024-01-05",
			endDate:        "2024-01-01",
			initialCapital: "10000",
			want:           nil,
		},
		{
			name:           "unparseable range is empty",
			startDate:      "not-a-date",
			endDate:        "2024-01-03",
			initialCapital: "10000",
			want:           nil,
		},
		{
			name:           "no trades flat line at initial capital",
			startDate:      "2024-01-01",
			endDate:        "2024-01-03",
			initialCapital: "10000",
			prices: []types.DailyPrice{
				{Date: "2024-01-01", Close: dec("10")},
				{Date: "2024-01-02", Close: dec("11")},
				{Date: "2024-01-03", Close: dec("12")},
			},
			want: []wantAsset{
				{"2024-01-01", "10000", 0, "10", "10000"},
				{"2024-01-02", "10000", 0, "11", "10000"},
				{"2024-01-03", "10000", 0, "12", "10000"},
			},
		},
		{
			name:           "missing price days carry the last close forward",
			startDate:      "2024-01-01",
			endDate:        "2024-01-03",
			initialCapital: "10000",
			trades: []types.Trade{
				newTrade(day1, types.ActionBuy, "10", 100, "1000"),
			},
			prices: []types.DailyPrice{
				{Date: "2024-01-01", Close: dec("10")},
			},
			want: []wantAsset{
				{"2024-01-01", "9000", 100, "10", "10000"},
				{"2024-01-02", "9000", 100, "10", "10000"},
				{"2024-01-03", "9000", 100, "10", "10000"},
			},
		},
		{
			name:           "price is zero until the first close is observed",
			startDate:      "2024-01-01",
			endDate:        "2024-01-02",
			initialCapital: "10000",
			prices: []types.DailyPrice{
				{Date: "2024-01-02", Close: dec("11")},
			},
			want: []wantAsset{
				{"2024-01-01", "10000", 0, "0", "10000"},
				{"2024-01-02", "10000", 0, "11", "10000"},
			},
		},
		{
			name:           "trades before the range are folded into the first day",
			startDate:      "2024-01-02",
			endDate:        "2024-01-03",
			initialCapital: "10000",
			trades: []types.Trade{
				newTrade(day1, types.ActionBuy, "10", 100, "1000"),
			},
			prices: []types.DailyPrice{
				{Date: "2024-01-01", Close: dec("10")},
				{Date: "2024-01-02", Close: dec("11")},
				{Date: "2024-01-03", Close: dec("12")},
			},
			want: []wantAsset{
				{"2024-01-02", "9000", 100, "11", "10100"},
				{"2024-01-03", "9000", 100, "12", "10200"},
			},
		},
		{
			name:           "multiple trades on one day use the last state",
			startDate:      "2024-01-01",
			endDate:        "2024-01-01",
			initialCapital: "10000",
			trades: []types.Trade{
				newTrade(day1, types.ActionBuy, "10", 100, "1000"),
				newTrade(day1.Add(time.Hour), types.ActionSell, "11", 100, "1100"),
			},
			prices: []types.DailyPrice{
				{Date: "2024-01-01", Close: dec("11")},
			},
			want: []wantAsset{
				{"2024-01-01", "10100", 0, "11", "10100"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			annotated := ReplayTrades(tt.trades, dec(tt.initialCapital))
			got := BuildDailyAssets(annotated, tt.prices, tt.startDate, tt.endDate, dec(tt.initialCapital))
			if len(got) != len(tt.want) {
				t.Fatalf("BuildDailyAssets() returned %d days, want %d", len(got), len(tt.want))
			}
			for i, want := range tt.want {
				a := got[i]
				if a.Date != want.date {
					t.Errorf("day %d date = %s, want %s", i, a.Date, want.date)
				}
				if !a.Cash.Equal(dec(want.cash)) {
					t.Errorf("day %d cash = %s, want %s", i, a.Cash, want.cash)
				}
				if a.Position != want.position {
					t.Errorf("day %d position = %d, want %d", i, a.Position, want.position)
				}
				if !a.Price.Equal(dec(want.price)) {
					t.Errorf("day %d price = %s, want %s", i, a.Price, want.price)
				}
				if !a.TotalAssets.Equal(dec(want.total)) {
					t.Errorf("day %d totalAssets = %s, want %s", i, a.TotalAssets, want.total)
				}
				if !a.SecurityValue.Equal(a.TotalAssets.Sub(a.Cash)) {
					t.Errorf("day %d securityValue = %s, want totalAssets-cash", i, a.SecurityValue)
				}
			}
		})
	}
}

// The series must contain exactly one point per calendar day of the
// requested range, month boundaries included.
func TestBuildDailyAssetsCoverage(t *testing.T) {
	got := BuildDailyAssets(nil, nil, "2024-02-27", "2024-03-02", dec("1000"))
	wantDates := []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02"}
	if len(got) != len(wantDates) {
		t.Fatalf("BuildDailyAssets() returned %d days, want %d", len(got), len(wantDates))
	}
	for i, want := range wantDates {
		if got[i].Date != want {
			t.Errorf("day %d date = %s, want %s", i, got[i].Date, want)
		}
	}
}
