// rowcolbench times the four-part sales analysis on the row engine and the
// columnar engine over an identical synthetic dataset, then prints the
// results side by side with a speedup ratio.
package main

import (
	"flag"
	"os"

	"github.com/tillberg/alog"

	"github.com/dataexercises/salesbench/internal/arrowengine"
	"github.com/dataexercises/salesbench/internal/dataset"
	"github.com/dataexercises/salesbench/internal/metrics"
	"github.com/dataexercises/salesbench/internal/report"
	"github.com/dataexercises/salesbench/internal/rowengine"
	"github.com/dataexercises/salesbench/internal/timing"
)

var (
	rows = flag.Int("rows", 1_000_000, "number of synthetic transactions")
	seed = flag.Int64("seed", 42, "random seed for the dataset")
	topN = flag.Int("top", 10, "customers to keep in the top-N query")
)

func main() {
	flag.Parse()

	alog.Log("Creating dataset with %d rows...", *rows)
	timer := alog.NewTimer()
	txs := dataset.GenerateTransactions(*seed, *rows)
	alog.Log("Dataset ready in %s", timer.Elapsed())

	alog.Log("Running row engine...")
	rowSample, err := timing.Timed(func() (*metrics.Summary, error) {
		return rowengine.Analyze(txs, *topN), nil
	})
	alog.BailIf(err)

	alog.Log("Running columnar engine...")
	frame := arrowengine.NewFrame(dataset.NewArrowRecord(txs))
	defer frame.Release()
	colSample, err := timing.Timed(func() (*metrics.Summary, error) {
		return arrowengine.Analyze(frame, *topN)
	})
	alog.BailIf(err)

	alog.Log("Top 5 Stores by Revenue (rows):")
	report.StoreMetricsTable(os.Stdout, rowSample.Result.StoreMetrics, 5)
	alog.Log("Top 5 Stores by Revenue (columnar):")
	report.StoreMetricsTable(os.Stdout, colSample.Result.StoreMetrics, 5)

	alog.Log("Top %d Customers (rows):", *topN)
	report.CustomerSpendTable(os.Stdout, rowSample.Result.TopCustomers)
	alog.Log("Promotion Impact (rows):")
	report.PromoImpactTable(os.Stdout, rowSample.Result.PromoImpact)

	report.TimingSummary(os.Stdout, "Rows", rowSample.Elapsed, "Columnar", colSample.Elapsed)
}
