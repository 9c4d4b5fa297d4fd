package rowengine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataexercises/salesbench/internal/dataset"
	"github.com/dataexercises/salesbench/internal/metrics"
)

var introSales = []dataset.Sale{
	{Date: "2023-01-01", Product: "A", Quantity: 2, Price: 10.00},
	{Date: "2023-01-01", Product: "B", Quantity: 1, Price: 5.00},
	{Date: "2023-01-02", Product: "A", Quantity: 3, Price: 10.00},
}

func TestRevenueByProduct(t *testing.T) {
	got := RevenueByProduct(introSales)
	assert.Equal(t, []metrics.ProductRevenue{
		{Product: "A", Revenue: 50.00},
		{Product: "B", Revenue: 5.00},
	}, got)
}

func TestBestSalesDays(t *testing.T) {
	got := BestSalesDays(introSales)
	assert.Equal(t, []metrics.DailyRevenue{
		{Date: "2023-01-02", Revenue: 30.00},
	}, got)
}

func TestBestSalesDaysTies(t *testing.T) {
	sales := []dataset.Sale{
		{Date: "2023-01-01", Product: "A", Quantity: 2, Price: 10.00},
		{Date: "2023-01-02", Product: "B", Quantity: 4, Price: 5.00},
		{Date: "2023-01-03", Product: "A", Quantity: 1, Price: 10.00},
	}
	got := BestSalesDays(sales)
	assert.Equal(t, []metrics.DailyRevenue{
		{Date: "2023-01-01", Revenue: 20.00},
		{Date: "2023-01-02", Revenue: 20.00},
	}, got, "every day tied at the maximum must qualify")
}

func TestBestSalesDaysEmpty(t *testing.T) {
	assert.Empty(t, BestSalesDays(nil))
}

func TestAnalyzeConservesRevenue(t *testing.T) {
	txs := dataset.GenerateTransactions(42, 20_000)
	summary := Analyze(txs, 10)

	var total float64
	for _, tx := range txs {
		total += tx.Revenue()
	}

	var byStore, byHour, byPromo float64
	for _, sm := range summary.StoreMetrics {
		byStore += sm.TotalRevenue
	}
	for _, hb := range summary.HourlyRevenue {
		byHour += hb.Revenue
	}
	for _, pi := range summary.PromoImpact {
		byPromo += pi.TotalRevenue
	}

	assert.InDelta(t, total, byStore, 0.01)
	assert.InDelta(t, total, byHour, 0.01)
	assert.InDelta(t, total, byPromo, 0.01)
}

func TestAnalyzeOrderingAndTopN(t *testing.T) {
	txs := dataset.GenerateTransactions(7, 20_000)
	summary := Analyze(txs, 10)

	require.Len(t, summary.TopCustomers, 10)
	for i := 1; i < len(summary.TopCustomers); i++ {
		assert.GreaterOrEqual(t, summary.TopCustomers[i-1].TotalSpend, summary.TopCustomers[i].TotalSpend)
	}
	for i := 1; i < len(summary.StoreMetrics); i++ {
		assert.GreaterOrEqual(t, summary.StoreMetrics[i-1].TotalRevenue, summary.StoreMetrics[i].TotalRevenue)
	}
	for i := 1; i < len(summary.HourlyRevenue); i++ {
		assert.True(t, summary.HourlyRevenue[i-1].Bucket.Before(summary.HourlyRevenue[i].Bucket))
	}

	// 20k one-second transactions span six clock hours.
	assert.Len(t, summary.HourlyRevenue, 6)
	for _, hb := range summary.HourlyRevenue {
		assert.Equal(t, hb.Bucket, hb.Bucket.Truncate(time.Hour))
	}
}

func BenchmarkAnalyze(b *testing.B) {
	txs := dataset.GenerateTransactions(42, 100_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		summary := Analyze(txs, 10)
		if len(summary.StoreMetrics) == 0 {
			b.Fatal("empty summary")
		}
	}
}
