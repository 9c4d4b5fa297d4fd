package dataset

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSalesCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sales_data.csv")
	want := []Sale{
		{Date: "2023-01-01", Product: "A", Quantity: 2, Price: 10.00},
		{Date: "2023-01-01", Product: "B", Quantity: 1, Price: 5.00},
		{Date: "2023-01-02", Product: "A", Quantity: 3, Price: 10.00},
	}
	require.NoError(t, WriteSalesCSV(path, want))

	got, err := ReadSalesCSV(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadSalesCSVMissingFile(t *testing.T) {
	_, err := ReadSalesCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestReadSalesCSVMalformedRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.csv")
	require.NoError(t, os.WriteFile(path, []byte("date,product,quantity,price\n2023-01-01,A,two,10.00\n"), 0o644))

	_, err := ReadSalesCSV(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "quantity")
}

func TestReadSalesCSVEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := ReadSalesCSV(path)
	assert.Error(t, err)
}
