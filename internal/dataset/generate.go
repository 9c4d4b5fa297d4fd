package dataset

import (
	"math/rand"
	"time"

	"github.com/dataexercises/salesbench/internal/metrics"
)

var saleProducts = []string{"Widget", "Gadget", "Gizmo", "Doohickey"}

// GenerateTransactions synthesizes rows transactions, one per second
// starting at 2023-01-01T00:00:00Z. The seed fully determines the output:
// two calls with the same seed and row count produce identical slices.
func GenerateTransactions(seed int64, rows int) []Transaction {
	rng := rand.New(rand.NewSource(seed))
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	txs := make([]Transaction, 0, rows)
	for i := 0; i < rows; i++ {
		txs = append(txs, Transaction{
			Timestamp:  start.Add(time.Duration(i) * time.Second),
			StoreID:    1 + rng.Int63n(99),
			ProductID:  1 + rng.Int63n(999),
			Quantity:   1 + rng.Int63n(49),
			Price:      metrics.Round2(10 + rng.Float64()*990),
			CustomerID: 1 + rng.Int63n(9999),
			Promotion:  Promotions[rng.Intn(len(Promotions))],
		})
	}
	return txs
}

// GenerateSales synthesizes rows sales spread over January 2023, for
// seeding the intro exercise's CSV. Deterministic for a given seed.
func GenerateSales(seed int64, rows int) []Sale {
	rng := rand.New(rand.NewSource(seed))
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	sales := make([]Sale, 0, rows)
	for i := 0; i < rows; i++ {
		day := start.AddDate(0, 0, rng.Intn(31))
		sales = append(sales, Sale{
			Date:     day.Format("2006-01-02"),
			Product:  saleProducts[rng.Intn(len(saleProducts))],
			Quantity: 1 + rng.Int63n(20),
			Price:    metrics.Round2(1 + rng.Float64()*99),
		})
	}
	return sales
}
