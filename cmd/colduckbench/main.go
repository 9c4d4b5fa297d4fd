// colduckbench times the four-part sales analysis on the columnar engine
// and on DuckDB. A synthetic dataset is written once to a Parquet file so
// both engines read identical bytes; the file is removed when the run ends.
package main

import (
	"flag"
	"os"

	"github.com/tillberg/alog"

	"github.com/dataexercises/salesbench/internal/arrowengine"
	"github.com/dataexercises/salesbench/internal/dataset"
	"github.com/dataexercises/salesbench/internal/duckengine"
	"github.com/dataexercises/salesbench/internal/metrics"
	"github.com/dataexercises/salesbench/internal/report"
	"github.com/dataexercises/salesbench/internal/timing"
)

var (
	rows = flag.Int("rows", 1_000_000, "number of synthetic transactions")
	seed = flag.Int64("seed", 42, "random seed for the dataset")
	topN = flag.Int("top", 10, "customers to keep in the top-N query")
	file = flag.String("file", "sales_data.parquet", "intermediate parquet file")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		alog.Log("Error: %v", err)
		os.Exit(1)
	}
}

func run() error {
	alog.Log("Creating dataset with %d rows...", *rows)
	timer := alog.NewTimer()
	txs := dataset.GenerateTransactions(*seed, *rows)
	rec := dataset.NewArrowRecord(txs)
	defer rec.Release()
	if err := dataset.WriteParquet(rec, *file); err != nil {
		return err
	}
	defer os.Remove(*file)
	alog.Log("Wrote %s in %s", *file, timer.Elapsed())

	alog.Log("Running columnar engine...")
	colSample, err := timing.Timed(func() (*metrics.Summary, error) {
		frame, err := arrowengine.FromParquet(*file)
		if err != nil {
			return nil, err
		}
		defer frame.Release()
		return arrowengine.Analyze(frame, *topN)
	})
	if err != nil {
		return err
	}

	alog.Log("Running DuckDB...")
	duckSample, err := timing.Timed(func() (*metrics.Summary, error) {
		db, err := duckengine.Open()
		if err != nil {
			return nil, err
		}
		defer db.Close()
		if err := db.ViewOverParquet(*file); err != nil {
			return nil, err
		}
		return db.Analyze(*topN)
	})
	if err != nil {
		return err
	}

	alog.Log("Top 5 Stores by Revenue (columnar):")
	report.StoreMetricsTable(os.Stdout, colSample.Result.StoreMetrics, 5)
	alog.Log("Top 5 Stores by Revenue (DuckDB):")
	report.StoreMetricsTable(os.Stdout, duckSample.Result.StoreMetrics, 5)

	report.TimingSummary(os.Stdout, "Columnar", colSample.Elapsed, "DuckDB", duckSample.Elapsed)
	return nil
}
