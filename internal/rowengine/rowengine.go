// Package rowengine answers the exercise queries by walking rows one at a
// time and grouping them in maps. It is the row-oriented baseline the
// columnar and SQL engines are measured against.
package rowengine

import (
	"sort"
	"time"

	"github.com/dataexercises/salesbench/internal/dataset"
	"github.com/dataexercises/salesbench/internal/metrics"
)

// RevenueByProduct sums quantity*price per product, rounded to cents,
// ordered by revenue descending (ties by product name).
func RevenueByProduct(sales []dataset.Sale) []metrics.ProductRevenue {
	totals := make(map[string]float64)
	for _, s := range sales {
		totals[s.Product] += s.Revenue()
	}

	out := make([]metrics.ProductRevenue, 0, len(totals))
	for product, revenue := range totals {
		out = append(out, metrics.ProductRevenue{Product: product, Revenue: metrics.Round2(revenue)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Revenue != out[j].Revenue {
			return out[i].Revenue > out[j].Revenue
		}
		return out[i].Product < out[j].Product
	})
	return out
}

// BestSalesDays returns every day whose revenue equals the maximum daily
// revenue, ordered by date. Ties all qualify.
func BestSalesDays(sales []dataset.Sale) []metrics.DailyRevenue {
	daily := make(map[string]float64)
	for _, s := range sales {
		daily[s.Date] += s.Revenue()
	}
	if len(daily) == 0 {
		return nil
	}

	var max float64
	first := true
	for _, revenue := range daily {
		if first || revenue > max {
			max = revenue
			first = false
		}
	}

	var out []metrics.DailyRevenue
	for date, revenue := range daily {
		if revenue == max {
			out = append(out, metrics.DailyRevenue{Date: date, Revenue: metrics.Round2(revenue)})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

type storeAgg struct {
	revenue   float64
	quantity  int64
	count     int64
	customers map[int64]struct{}
}

type customerAgg struct {
	spend  float64
	items  int64
	visits int64
}

type promoAgg struct {
	revenue float64
	count   int64
}

// Analyze runs the four performance queries in one pass layout: store
// metrics, hourly revenue rollup, top-N customers by spend, and promotion
// impact.
func Analyze(txs []dataset.Transaction, topN int) *metrics.Summary {
	stores := make(map[int64]*storeAgg)
	hours := make(map[time.Time]*metrics.BucketRevenue)
	customers := make(map[int64]*customerAgg)
	promos := make(map[string]*promoAgg)

	for _, tx := range txs {
		revenue := tx.Revenue()

		st, ok := stores[tx.StoreID]
		if !ok {
			st = &storeAgg{customers: make(map[int64]struct{})}
			stores[tx.StoreID] = st
		}
		st.revenue += revenue
		st.quantity += tx.Quantity
		st.count++
		st.customers[tx.CustomerID] = struct{}{}

		hour := tx.Timestamp.Truncate(time.Hour)
		hb, ok := hours[hour]
		if !ok {
			hb = &metrics.BucketRevenue{Bucket: hour}
			hours[hour] = hb
		}
		hb.Revenue += revenue
		hb.Quantity += tx.Quantity

		cu, ok := customers[tx.CustomerID]
		if !ok {
			cu = &customerAgg{}
			customers[tx.CustomerID] = cu
		}
		cu.spend += revenue
		cu.items += tx.Quantity
		cu.visits++

		pr, ok := promos[tx.Promotion]
		if !ok {
			pr = &promoAgg{}
			promos[tx.Promotion] = pr
		}
		pr.revenue += revenue
		pr.count++
	}

	summary := &metrics.Summary{}

	for id, st := range stores {
		summary.StoreMetrics = append(summary.StoreMetrics, metrics.StoreMetrics{
			StoreID:         id,
			TotalRevenue:    st.revenue,
			AvgRevenue:      st.revenue / float64(st.count),
			TotalQuantity:   st.quantity,
			UniqueCustomers: int64(len(st.customers)),
		})
	}
	sort.Slice(summary.StoreMetrics, func(i, j int) bool {
		a, b := summary.StoreMetrics[i], summary.StoreMetrics[j]
		if a.TotalRevenue != b.TotalRevenue {
			return a.TotalRevenue > b.TotalRevenue
		}
		return a.StoreID < b.StoreID
	})

	for _, hb := range hours {
		summary.HourlyRevenue = append(summary.HourlyRevenue, *hb)
	}
	sort.Slice(summary.HourlyRevenue, func(i, j int) bool {
		return summary.HourlyRevenue[i].Bucket.Before(summary.HourlyRevenue[j].Bucket)
	})

	for id, cu := range customers {
		summary.TopCustomers = append(summary.TopCustomers, metrics.CustomerSpend{
			CustomerID: id,
			TotalSpend: cu.spend,
			TotalItems: cu.items,
			VisitCount: cu.visits,
		})
	}
	sort.Slice(summary.TopCustomers, func(i, j int) bool {
		a, b := summary.TopCustomers[i], summary.TopCustomers[j]
		if a.TotalSpend != b.TotalSpend {
			return a.TotalSpend > b.TotalSpend
		}
		return a.CustomerID < b.CustomerID
	})
	if len(summary.TopCustomers) > topN {
		summary.TopCustomers = summary.TopCustomers[:topN]
	}

	for label, pr := range promos {
		summary.PromoImpact = append(summary.PromoImpact, metrics.PromoImpact{
			Promotion:    label,
			TotalRevenue: pr.revenue,
			AvgRevenue:   pr.revenue / float64(pr.count),
			Count:        pr.count,
		})
	}
	sort.Slice(summary.PromoImpact, func(i, j int) bool {
		return summary.PromoImpact[i].Promotion < summary.PromoImpact[j].Promotion
	})

	return summary
}
