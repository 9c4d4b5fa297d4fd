package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dataexercises/salesbench/internal/metrics"
)

func TestTimingSummary(t *testing.T) {
	var sb strings.Builder
	TimingSummary(&sb, "Rows", 300*time.Millisecond, "Columnar", 100*time.Millisecond)
	out := sb.String()

	assert.Contains(t, out, "Performance Results:")
	assert.Contains(t, out, "Operation")
	assert.Contains(t, out, "Time (seconds)")
	assert.Contains(t, out, "Rows")
	assert.Contains(t, out, "0.300")
	assert.Contains(t, out, "Columnar")
	assert.Contains(t, out, "0.100")
	assert.Contains(t, out, "Speedup")
	assert.Contains(t, out, "3.0x")
}

func TestTimingSummaryZeroDenominator(t *testing.T) {
	var sb strings.Builder
	TimingSummary(&sb, "A", time.Second, "B", 0)
	assert.NotContains(t, sb.String(), "Speedup")
}

func TestProductRevenueTable(t *testing.T) {
	var sb strings.Builder
	ProductRevenueTable(&sb, []metrics.ProductRevenue{
		{Product: "A", Revenue: 50},
		{Product: "B", Revenue: 5},
	})
	out := sb.String()

	assert.Contains(t, out, "PRODUCT")
	assert.Contains(t, out, "50.00")
	assert.Contains(t, out, "5.00")
}
