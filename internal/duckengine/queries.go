package duckengine

import (
	"fmt"

	"github.com/dataexercises/salesbench/internal/metrics"
)

// RevenueByProduct sums quantity*price per product over the sales view,
// rounded to cents, ordered by revenue descending.
func (d *DB) RevenueByProduct() ([]metrics.ProductRevenue, error) {
	rows, err := d.sql.Query(`
		SELECT
			product,
			ROUND(SUM(quantity * price), 2) AS total_revenue
		FROM sales
		GROUP BY product
		ORDER BY total_revenue DESC, product`)
	if err != nil {
		return nil, fmt.Errorf("revenue by product: %w", err)
	}
	defer rows.Close()

	var out []metrics.ProductRevenue
	for rows.Next() {
		var pr metrics.ProductRevenue
		if err := rows.Scan(&pr.Product, &pr.Revenue); err != nil {
			return nil, fmt.Errorf("revenue by product: %w", err)
		}
		out = append(out, pr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("revenue by product: %w", err)
	}
	return out, nil
}

// BestSalesDays returns every day whose revenue equals the maximum daily
// revenue. Ties all qualify.
func (d *DB) BestSalesDays() ([]metrics.DailyRevenue, error) {
	rows, err := d.sql.Query(`
		WITH daily_sales AS (
			SELECT
				CAST(date AS VARCHAR) AS date,
				ROUND(SUM(quantity * price), 2) AS daily_revenue
			FROM sales
			GROUP BY 1
		)
		SELECT date, daily_revenue
		FROM daily_sales
		WHERE daily_revenue = (SELECT MAX(daily_revenue) FROM daily_sales)
		ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("best sales days: %w", err)
	}
	defer rows.Close()

	var out []metrics.DailyRevenue
	for rows.Next() {
		var dr metrics.DailyRevenue
		if err := rows.Scan(&dr.Date, &dr.Revenue); err != nil {
			return nil, fmt.Errorf("best sales days: %w", err)
		}
		out = append(out, dr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("best sales days: %w", err)
	}
	return out, nil
}

// WeeklyAvgRevenue buckets revenue by calendar week and averages the
// weekly totals.
func (d *DB) WeeklyAvgRevenue() (float64, error) {
	var avg float64
	err := d.sql.QueryRow(`
		WITH weekly_sales AS (
			SELECT
				date_trunc('week', CAST(date AS DATE)) AS week,
				SUM(quantity * price) AS weekly_revenue
			FROM sales
			GROUP BY 1
		)
		SELECT ROUND(AVG(weekly_revenue), 2) FROM weekly_sales`).Scan(&avg)
	if err != nil {
		return 0, fmt.Errorf("weekly average revenue: %w", err)
	}
	return avg, nil
}

// Analyze runs the four performance queries over the sales view with the
// extended transaction schema.
func (d *DB) Analyze(topN int) (*metrics.Summary, error) {
	summary := &metrics.Summary{}

	rows, err := d.sql.Query(`
		WITH sales_revenue AS (
			SELECT *, quantity * price AS revenue
			FROM sales
		)
		SELECT
			store_id,
			SUM(revenue) AS total_revenue,
			AVG(revenue) AS avg_revenue,
			CAST(SUM(quantity) AS BIGINT) AS total_quantity,
			COUNT(DISTINCT customer_id) AS unique_customers
		FROM sales_revenue
		GROUP BY store_id
		ORDER BY total_revenue DESC, store_id`)
	if err != nil {
		return nil, fmt.Errorf("store metrics: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var sm metrics.StoreMetrics
		if err := rows.Scan(&sm.StoreID, &sm.TotalRevenue, &sm.AvgRevenue, &sm.TotalQuantity, &sm.UniqueCustomers); err != nil {
			return nil, fmt.Errorf("store metrics: %w", err)
		}
		summary.StoreMetrics = append(summary.StoreMetrics, sm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store metrics: %w", err)
	}

	rows, err = d.sql.Query(`
		WITH sales_revenue AS (
			SELECT *, quantity * price AS revenue
			FROM sales
		)
		SELECT
			date_trunc('hour', timestamp) AS hour,
			SUM(revenue) AS hourly_revenue,
			CAST(SUM(quantity) AS BIGINT) AS hourly_quantity
		FROM sales_revenue
		GROUP BY 1
		ORDER BY hour`)
	if err != nil {
		return nil, fmt.Errorf("hourly revenue: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var br metrics.BucketRevenue
		if err := rows.Scan(&br.Bucket, &br.Revenue, &br.Quantity); err != nil {
			return nil, fmt.Errorf("hourly revenue: %w", err)
		}
		br.Bucket = br.Bucket.UTC()
		summary.HourlyRevenue = append(summary.HourlyRevenue, br)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("hourly revenue: %w", err)
	}

	rows, err = d.sql.Query(fmt.Sprintf(`
		WITH sales_revenue AS (
			SELECT *, quantity * price AS revenue
			FROM sales
		)
		SELECT
			customer_id,
			SUM(revenue) AS total_spend,
			CAST(SUM(quantity) AS BIGINT) AS total_items,
			COUNT(*) AS visit_count
		FROM sales_revenue
		GROUP BY customer_id
		ORDER BY total_spend DESC, customer_id
		LIMIT %d`, topN))
	if err != nil {
		return nil, fmt.Errorf("top customers: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var cs metrics.CustomerSpend
		if err := rows.Scan(&cs.CustomerID, &cs.TotalSpend, &cs.TotalItems, &cs.VisitCount); err != nil {
			return nil, fmt.Errorf("top customers: %w", err)
		}
		summary.TopCustomers = append(summary.TopCustomers, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("top customers: %w", err)
	}

	rows, err = d.sql.Query(`
		WITH sales_revenue AS (
			SELECT *, quantity * price AS revenue
			FROM sales
		)
		SELECT
			promotion,
			SUM(revenue) AS total_revenue,
			AVG(revenue) AS avg_revenue,
			COUNT(*) AS transaction_count
		FROM sales_revenue
		GROUP BY promotion
		ORDER BY promotion`)
	if err != nil {
		return nil, fmt.Errorf("promotion impact: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var pi metrics.PromoImpact
		if err := rows.Scan(&pi.Promotion, &pi.TotalRevenue, &pi.AvgRevenue, &pi.Count); err != nil {
			return nil, fmt.Errorf("promotion impact: %w", err)
		}
		summary.PromoImpact = append(summary.PromoImpact, pi)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("promotion impact: %w", err)
	}

	return summary, nil
}
