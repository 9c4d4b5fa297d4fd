// Package report renders query results and timing comparisons for the
// console.
package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/dataexercises/salesbench/internal/metrics"
)

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ProductRevenueTable prints total revenue per product.
func ProductRevenueTable(w io.Writer, rows []metrics.ProductRevenue) {
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"Product", "Total Revenue"})
	for _, r := range rows {
		t.Append([]string{r.Product, money(r.Revenue)})
	}
	t.Render()
}

// DailyRevenueTable prints revenue per day.
func DailyRevenueTable(w io.Writer, rows []metrics.DailyRevenue) {
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"Date", "Daily Revenue"})
	for _, r := range rows {
		t.Append([]string{r.Date, money(r.Revenue)})
	}
	t.Render()
}

// StoreMetricsTable prints up to limit stores (0 means all).
func StoreMetricsTable(w io.Writer, rows []metrics.StoreMetrics, limit int) {
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"Store", "Total Revenue", "Avg Revenue", "Quantity", "Customers"})
	for _, r := range rows {
		t.Append([]string{
			strconv.FormatInt(r.StoreID, 10),
			money(r.TotalRevenue),
			money(r.AvgRevenue),
			strconv.FormatInt(r.TotalQuantity, 10),
			strconv.FormatInt(r.UniqueCustomers, 10),
		})
	}
	t.Render()
}

// CustomerSpendTable prints customers ordered by total spend.
func CustomerSpendTable(w io.Writer, rows []metrics.CustomerSpend) {
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"Customer", "Total Spend", "Items", "Visits"})
	for _, r := range rows {
		t.Append([]string{
			strconv.FormatInt(r.CustomerID, 10),
			money(r.TotalSpend),
			strconv.FormatInt(r.TotalItems, 10),
			strconv.FormatInt(r.VisitCount, 10),
		})
	}
	t.Render()
}

// PromoImpactTable prints revenue per promotion label.
func PromoImpactTable(w io.Writer, rows []metrics.PromoImpact) {
	t := tablewriter.NewWriter(w)
	t.SetHeader([]string{"Promotion", "Total Revenue", "Avg Revenue", "Count"})
	for _, r := range rows {
		t.Append([]string{r.Promotion, money(r.TotalRevenue), money(r.AvgRevenue), strconv.FormatInt(r.Count, 10)})
	}
	t.Render()
}

// RawTable prints arbitrary pre-formatted rows, for data previews.
func RawTable(w io.Writer, header []string, rows [][]string) {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	for _, r := range rows {
		t.Append(r)
	}
	t.Render()
}

// TimingSummary prints the fixed-width two-column timing table with the
// speedup of b over a.
func TimingSummary(w io.Writer, nameA string, a time.Duration, nameB string, b time.Duration) {
	fmt.Fprintf(w, "\nPerformance Results:\n")
	fmt.Fprintf(w, "%-20s %15s\n", "Operation", "Time (seconds)")
	fmt.Fprintln(w, "-----------------------------------")
	fmt.Fprintf(w, "%-20s %15.3f\n", nameA, a.Seconds())
	fmt.Fprintf(w, "%-20s %15.3f\n", nameB, b.Seconds())
	if b > 0 {
		fmt.Fprintf(w, "%-20s %14.1fx\n", "Speedup", a.Seconds()/b.Seconds())
	}
}
