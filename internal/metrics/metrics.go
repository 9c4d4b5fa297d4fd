// Package metrics defines the result shapes shared by every engine. All
// three engines emit these types so their outputs can be compared directly.
package metrics

import (
	"math"
	"time"
)

// ProductRevenue is total revenue for one product, rounded to cents.
type ProductRevenue struct {
	Product string
	Revenue float64
}

// DailyRevenue is total revenue for one calendar day (date as YYYY-MM-DD).
type DailyRevenue struct {
	Date    string
	Revenue float64
}

// StoreMetrics aggregates one store's transactions.
type StoreMetrics struct {
	StoreID         int64
	TotalRevenue    float64
	AvgRevenue      float64
	TotalQuantity   int64
	UniqueCustomers int64
}

// BucketRevenue is revenue and quantity rolled up into one time bucket.
type BucketRevenue struct {
	Bucket   time.Time
	Revenue  float64
	Quantity int64
}

// CustomerSpend aggregates one customer's transactions.
type CustomerSpend struct {
	CustomerID int64
	TotalSpend float64
	TotalItems int64
	VisitCount int64
}

// PromoImpact aggregates transactions under one promotion label.
type PromoImpact struct {
	Promotion    string
	TotalRevenue float64
	AvgRevenue   float64
	Count        int64
}

// Summary bundles the four analyses every performance driver runs, one
// bundle per engine.
type Summary struct {
	StoreMetrics  []StoreMetrics
	HourlyRevenue []BucketRevenue
	TopCustomers  []CustomerSpend
	PromoImpact   []PromoImpact
}

// Round2 rounds to two decimal places, the precision used for money.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
