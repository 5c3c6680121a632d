package engine

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"stratledger/types"
)

// writeAnnotatedTradesCSVFile writes the annotated ledger to a CSV file
// at the given path.
func writeAnnotatedTradesCSVFile(path string, trades []types.AnnotatedTrade) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create trades file: %w", err)
	}
	defer f.Close()

	return writeAnnotatedTradesCSV(f, trades)
}

// writeAnnotatedTradesCSV writes the ledger to any io.Writer as CSV.
// You can pass os.Stdout for debugging, or a file.
func writeAnnotatedTradesCSV(w io.Writer, trades []types.AnnotatedTrade) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"timestamp", // RFC3339
		"action",
		"price",
		"quantity",
		"amount",
		"realized_pnl",
		"position_after",
		"avg_cost_after",
		"cash_after",
		"security_value_after",
		"total_assets_after",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, t := range trades {
		pnl := ""
		if t.RealizedPnl != nil {
			pnl = t.RealizedPnl.String()
		}
		record := []string{
			t.Timestamp.Format(time.RFC3339),
			string(t.Action),
			t.Price.String(),
			fmt.Sprintf("%d", t.Quantity),
			t.Amount.String(),
			pnl,
			fmt.Sprintf("%d", t.PositionAfter),
			t.AvgCostAfter.String(),
			t.CashAfter.String(),
			t.SecurityValueAfter.String(),
			t.TotalAssetsAfter.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func writeDailyAssetsCSVFile(path string, assets []types.DailyAsset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create assets file: %w", err)
	}
	defer f.Close()

	return writeDailyAssetsCSV(f, assets)
}

func writeDailyAssetsCSV(w io.Writer, assets []types.DailyAsset) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{
		"date",
		"cash",
		"position",
		"price",
		"security_value",
		"total_assets",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, a := range assets {
		record := []string{
			a.Date,
			a.Cash.String(),
			fmt.Sprintf("%d", a.Position),
			a.Price.String(),
			a.SecurityValue.String(),
			a.TotalAssets.String(),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write record: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
