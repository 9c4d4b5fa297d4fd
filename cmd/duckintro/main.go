// duckintro runs the intro exercise with DuckDB over the sales CSV: a
// five-row preview, total revenue by product, the best sales day, and the
// average weekly revenue. A missing input file is reported with a usable
// message instead of a stack trace.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dataexercises/salesbench/internal/duckengine"
	"github.com/dataexercises/salesbench/internal/report"
)

var dataDir = flag.String("data", "data", "directory holding sales_data.csv")

func main() {
	flag.Parse()

	if err := run(filepath.Join(*dataDir, "sales_data.csv")); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Please ensure the sales data file exists in the data directory.")
		} else {
			fmt.Fprintf(os.Stderr, "An error occurred: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("data file not found at %s: %w", path, err)
	}

	db, err := duckengine.Open()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.ViewOverCSV(path); err != nil {
		return err
	}

	fmt.Println("First 5 rows of data:")
	header, preview, err := db.Preview(5)
	if err != nil {
		return err
	}
	report.RawTable(os.Stdout, header, preview)

	fmt.Println("\nRunning analysis...")

	fmt.Println("\nTotal Revenue by Product:")
	byProduct, err := db.RevenueByProduct()
	if err != nil {
		return err
	}
	report.ProductRevenueTable(os.Stdout, byProduct)

	fmt.Println("\nBest Sales Day:")
	bestDays, err := db.BestSalesDays()
	if err != nil {
		return err
	}
	report.DailyRevenueTable(os.Stdout, bestDays)

	weeklyAvg, err := db.WeeklyAvgRevenue()
	if err != nil {
		return err
	}
	fmt.Printf("\nAverage Weekly Revenue: %.2f\n", weeklyAvg)

	return nil
}
