// salesintro runs the intro exercise twice, once with the row engine and
// once with the columnar engine: total revenue by product, then the best
// sales day. It seeds data/sales_data.csv with a deterministic sample when
// the file is missing.
package main

import (
	"errors"
	"flag"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tillberg/alog"

	"github.com/dataexercises/salesbench/internal/arrowengine"
	"github.com/dataexercises/salesbench/internal/dataset"
	"github.com/dataexercises/salesbench/internal/report"
	"github.com/dataexercises/salesbench/internal/rowengine"
)

var (
	dataDir = flag.String("data", "data", "directory holding sales_data.csv")
	seed    = flag.Int64("seed", 42, "random seed for the sample dataset")
	rows    = flag.Int("rows", 200, "sample rows to generate when the CSV is missing")
)

func main() {
	flag.Parse()

	err := os.MkdirAll(*dataDir, 0o755)
	alog.BailIf(err)

	path := filepath.Join(*dataDir, "sales_data.csv")
	sales, err := dataset.ReadSalesCSV(path)
	if errors.Is(err, fs.ErrNotExist) {
		alog.Log("No sales data at %s, generating %d sample rows", path, *rows)
		sales = dataset.GenerateSales(*seed, *rows)
		err = dataset.WriteSalesCSV(path, sales)
	}
	alog.BailIf(err)

	alog.Log("Row Engine Analysis:")
	report.ProductRevenueTable(os.Stdout, rowengine.RevenueByProduct(sales))
	alog.Log("Best Sales Day:")
	report.DailyRevenueTable(os.Stdout, rowengine.BestSalesDays(sales))

	alog.Log("Columnar Engine Analysis:")
	frame := arrowengine.NewFrame(dataset.NewSalesRecord(sales))
	defer frame.Release()

	byProduct, err := arrowengine.RevenueByProduct(frame)
	alog.BailIf(err)
	report.ProductRevenueTable(os.Stdout, byProduct)

	bestDays, err := arrowengine.BestSalesDays(frame)
	alog.BailIf(err)
	alog.Log("Best Sales Day:")
	report.DailyRevenueTable(os.Stdout, bestDays)
}
