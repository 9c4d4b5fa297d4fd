package arrowengine

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataexercises/salesbench/internal/dataset"
	"github.com/dataexercises/salesbench/internal/metrics"
	"github.com/dataexercises/salesbench/internal/rowengine"
)

var introSales = []dataset.Sale{
	{Date: "2023-01-01", Product: "A", Quantity: 2, Price: 10.00},
	{Date: "2023-01-01", Product: "B", Quantity: 1, Price: 5.00},
	{Date: "2023-01-02", Product: "A", Quantity: 3, Price: 10.00},
}

func TestRevenueByProduct(t *testing.T) {
	frame := NewFrame(dataset.NewSalesRecord(introSales))
	defer frame.Release()

	got, err := RevenueByProduct(frame)
	require.NoError(t, err)
	assert.Equal(t, []metrics.ProductRevenue{
		{Product: "A", Revenue: 50.00},
		{Product: "B", Revenue: 5.00},
	}, got)
}

func TestBestSalesDays(t *testing.T) {
	frame := NewFrame(dataset.NewSalesRecord(introSales))
	defer frame.Release()

	got, err := BestSalesDays(frame)
	require.NoError(t, err)
	assert.Equal(t, []metrics.DailyRevenue{
		{Date: "2023-01-02", Revenue: 30.00},
	}, got)
}

func TestAnalyzeMatchesRowEngine(t *testing.T) {
	txs := dataset.GenerateTransactions(42, 20_000)
	want := rowengine.Analyze(txs, 10)

	frame := NewFrame(dataset.NewArrowRecord(txs))
	defer frame.Release()
	got, err := Analyze(frame, 10)
	require.NoError(t, err)

	assertSummariesMatch(t, want, got)
}

func TestAnalyzeFromParquet(t *testing.T) {
	txs := dataset.GenerateTransactions(7, 10_000)
	want := rowengine.Analyze(txs, 10)

	path := filepath.Join(t.TempDir(), "sales_data.parquet")
	rec := dataset.NewArrowRecord(txs)
	require.NoError(t, dataset.WriteParquet(rec, path))
	rec.Release()

	frame, err := FromParquet(path)
	require.NoError(t, err)
	defer frame.Release()

	assert.EqualValues(t, len(txs), frame.NumRows())

	got, err := Analyze(frame, 10)
	require.NoError(t, err)
	assertSummariesMatch(t, want, got)
}

func assertSummariesMatch(t *testing.T, want, got *metrics.Summary) {
	t.Helper()

	require.Len(t, got.StoreMetrics, len(want.StoreMetrics))
	for i, w := range want.StoreMetrics {
		g := got.StoreMetrics[i]
		assert.Equal(t, w.StoreID, g.StoreID)
		assert.InDelta(t, w.TotalRevenue, g.TotalRevenue, 0.01)
		assert.InDelta(t, w.AvgRevenue, g.AvgRevenue, 0.01)
		assert.Equal(t, w.TotalQuantity, g.TotalQuantity)
		assert.Equal(t, w.UniqueCustomers, g.UniqueCustomers)
	}

	require.Len(t, got.HourlyRevenue, len(want.HourlyRevenue))
	for i, w := range want.HourlyRevenue {
		g := got.HourlyRevenue[i]
		assert.True(t, w.Bucket.Equal(g.Bucket), "bucket %d: want %s, got %s", i, w.Bucket, g.Bucket)
		assert.InDelta(t, w.Revenue, g.Revenue, 0.01)
		assert.Equal(t, w.Quantity, g.Quantity)
	}

	require.Len(t, got.TopCustomers, len(want.TopCustomers))
	for i, w := range want.TopCustomers {
		g := got.TopCustomers[i]
		assert.Equal(t, w.CustomerID, g.CustomerID)
		assert.InDelta(t, w.TotalSpend, g.TotalSpend, 0.01)
		assert.Equal(t, w.TotalItems, g.TotalItems)
		assert.Equal(t, w.VisitCount, g.VisitCount)
	}

	require.Len(t, got.PromoImpact, len(want.PromoImpact))
	for i, w := range want.PromoImpact {
		g := got.PromoImpact[i]
		assert.Equal(t, w.Promotion, g.Promotion)
		assert.InDelta(t, w.TotalRevenue, g.TotalRevenue, 0.01)
		assert.InDelta(t, w.AvgRevenue, g.AvgRevenue, 0.01)
		assert.Equal(t, w.Count, g.Count)
	}
}

func BenchmarkAnalyze(b *testing.B) {
	txs := dataset.GenerateTransactions(42, 100_000)
	frame := NewFrame(dataset.NewArrowRecord(txs))
	defer frame.Release()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		summary, err := Analyze(frame, 10)
		if err != nil {
			b.Fatal(err)
		}
		if len(summary.StoreMetrics) == 0 {
			b.Fatal("empty summary")
		}
	}
}
