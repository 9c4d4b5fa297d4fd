package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

var csvHeader = []string{"date", "product", "quantity", "price"}

// ReadSalesCSV loads the simple schema from a delimited file with a header
// row. A missing file comes back wrapping fs.ErrNotExist so callers can
// report it distinctly from parse failures.
func ReadSalesCSV(path string) ([]Sale, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sales data: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("read %s: missing header row", path)
	}

	sales := make([]Sale, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != len(csvHeader) {
			return nil, fmt.Errorf("read %s: row %d has %d columns, want %d", path, i+2, len(row), len(csvHeader))
		}
		quantity, err := strconv.ParseInt(row[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("read %s: row %d quantity: %w", path, i+2, err)
		}
		price, err := strconv.ParseFloat(row[3], 64)
		if err != nil {
			return nil, fmt.Errorf("read %s: row %d price: %w", path, i+2, err)
		}
		sales = append(sales, Sale{
			Date:     row[0],
			Product:  row[1],
			Quantity: quantity,
			Price:    price,
		})
	}
	return sales, nil
}

// WriteSalesCSV writes the simple schema with its header row.
func WriteSalesCSV(path string, sales []Sale) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	for _, s := range sales {
		row := []string{
			s.Date,
			s.Product,
			strconv.FormatInt(s.Quantity, 10),
			strconv.FormatFloat(s.Price, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
