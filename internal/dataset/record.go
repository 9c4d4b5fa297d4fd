// Package dataset defines the sales schemas and moves them between memory,
// CSV, and Parquet.
package dataset

import "time"

// Sale is one row of the simple CSV schema used by the intro exercises.
type Sale struct {
	Date     string // YYYY-MM-DD
	Product  string
	Quantity int64
	Price    float64
}

// Revenue is quantity * price, the quantity every analysis aggregates.
func (s Sale) Revenue() float64 {
	return float64(s.Quantity) * s.Price
}

// Transaction is one row of the extended schema used by the performance
// comparisons.
type Transaction struct {
	Timestamp  time.Time
	StoreID    int64
	ProductID  int64
	Quantity   int64
	Price      float64
	CustomerID int64
	Promotion  string
}

func (t Transaction) Revenue() float64 {
	return float64(t.Quantity) * t.Price
}

// Promotions is the fixed set of promotion labels.
var Promotions = []string{"None", "discount_10", "discount_20", "buy_one_get_one"}
