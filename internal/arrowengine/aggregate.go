package arrowengine

import (
	"sort"
	"time"

	"github.com/dataexercises/salesbench/internal/metrics"
)

// RevenueByProduct sums quantity*price per product over a frame with the
// simple sales schema, rounded to cents, ordered by revenue descending.
func RevenueByProduct(f *Frame) ([]metrics.ProductRevenue, error) {
	totals := make(map[string]float64)
	for _, rec := range f.recs {
		products, err := stringColumn(rec, "product")
		if err != nil {
			return nil, err
		}
		quantities, err := int64Column(rec, "quantity")
		if err != nil {
			return nil, err
		}
		prices, err := float64Column(rec, "price")
		if err != nil {
			return nil, err
		}
		for i := 0; i < int(rec.NumRows()); i++ {
			totals[products.Value(i)] += float64(quantities.Value(i)) * prices.Value(i)
		}
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
	return out, nil
}

// BestSalesDays returns every day tied at the maximum daily revenue over a
// frame with the simple sales schema, ordered by date.
func BestSalesDays(f *Frame) ([]metrics.DailyRevenue, error) {
	daily := make(map[string]float64)
	for _, rec := range f.recs {
		dates, err := stringColumn(rec, "date")
		if err != nil {
			return nil, err
		}
		quantities, err := int64Column(rec, "quantity")
		if err != nil {
			return nil, err
		}
		prices, err := float64Column(rec, "price")
		if err != nil {
			return nil, err
		}
		for i := 0; i < int(rec.NumRows()); i++ {
			daily[dates.Value(i)] += float64(quantities.Value(i)) * prices.Value(i)
		}
	}
	if len(daily) == 0 {
		return nil, nil
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
	return out, nil
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

// Analyze runs the four performance queries over a frame with the extended
// transaction schema.
func Analyze(f *Frame, topN int) (*metrics.Summary, error) {
	stores := make(map[int64]*storeAgg)
	hours := make(map[time.Time]*metrics.BucketRevenue)
	customers := make(map[int64]*customerAgg)
	promos := make(map[string]*promoAgg)

	for _, rec := range f.recs {
		timestamps, unit, err := timestampColumn(rec, "timestamp")
		if err != nil {
			return nil, err
		}
		storeIDs, err := int64Column(rec, "store_id")
		if err != nil {
			return nil, err
		}
		quantities, err := int64Column(rec, "quantity")
		if err != nil {
			return nil, err
		}
		prices, err := float64Column(rec, "price")
		if err != nil {
			return nil, err
		}
		customerIDs, err := int64Column(rec, "customer_id")
		if err != nil {
			return nil, err
		}
		promotions, err := stringColumn(rec, "promotion")
		if err != nil {
			return nil, err
		}

		for i := 0; i < int(rec.NumRows()); i++ {
			quantity := quantities.Value(i)
			revenue := float64(quantity) * prices.Value(i)

			storeID := storeIDs.Value(i)
			st, ok := stores[storeID]
			if !ok {
				st = &storeAgg{customers: make(map[int64]struct{})}
				stores[storeID] = st
			}
			st.revenue += revenue
			st.quantity += quantity
			st.count++
			st.customers[customerIDs.Value(i)] = struct{}{}

			hour := timestamps.Value(i).ToTime(unit).UTC().Truncate(time.Hour)
			hb, ok := hours[hour]
			if !ok {
				hb = &metrics.BucketRevenue{Bucket: hour}
				hours[hour] = hb
			}
			hb.Revenue += revenue
			hb.Quantity += quantity

			customerID := customerIDs.Value(i)
			cu, ok := customers[customerID]
			if !ok {
				cu = &customerAgg{}
				customers[customerID] = cu
			}
			cu.spend += revenue
			cu.items += quantity
			cu.visits++

			promo := promotions.Value(i)
			pr, ok := promos[promo]
			if !ok {
				pr = &promoAgg{}
				promos[promo] = pr
			}
			pr.revenue += revenue
			pr.count++
		}
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

	return summary, nil
}
