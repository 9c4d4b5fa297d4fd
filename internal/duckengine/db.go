// Package duckengine answers the exercise queries with DuckDB, an embedded
// analytical SQL engine, over views onto CSV or Parquet files.
package duckengine

import (
	"database/sql"
	"fmt"

	_ "github.com/marcboeker/go-duckdb/v2"
)

// DB is an in-memory DuckDB instance with a single `sales` view as its
// query surface. Close it on every exit path.
type DB struct {
	sql *sql.DB
}

func Open() (*DB, error) {
	db, err := sql.Open("duckdb", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	return &DB{sql: db}, nil
}

func (d *DB) Close() error {
	return d.sql.Close()
}

// ViewOverCSV points the sales view at a delimited text file, letting
// DuckDB infer column types from the header and data.
func (d *DB) ViewOverCSV(path string) error {
	query := fmt.Sprintf("CREATE OR REPLACE VIEW sales AS SELECT * FROM read_csv_auto('%s')", path)
	if _, err := d.sql.Exec(query); err != nil {
		return fmt.Errorf("create view over %s: %w", path, err)
	}
	return nil
}

// ViewOverParquet points the sales view at a Parquet file.
func (d *DB) ViewOverParquet(path string) error {
	query := fmt.Sprintf("CREATE OR REPLACE VIEW sales AS SELECT * FROM '%s'", path)
	if _, err := d.sql.Exec(query); err != nil {
		return fmt.Errorf("create view over %s: %w", path, err)
	}
	return nil
}

// LoadParquet materializes a Parquet file into a sales table, so queries no
// longer depend on the backing file.
func (d *DB) LoadParquet(path string) error {
	query := fmt.Sprintf("CREATE OR REPLACE TABLE sales AS SELECT * FROM '%s'", path)
	if _, err := d.sql.Exec(query); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Preview returns the first n rows of the sales view as display strings,
// plus the column names.
func (d *DB) Preview(n int) ([]string, [][]string, error) {
	rows, err := d.sql.Query(fmt.Sprintf("SELECT * FROM sales LIMIT %d", n))
	if err != nil {
		return nil, nil, fmt.Errorf("preview sales: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, nil, fmt.Errorf("preview sales: %w", err)
	}

	var out [][]string
	values := make([]any, len(columns))
	ptrs := make([]any, len(columns))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, nil, fmt.Errorf("preview sales: %w", err)
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = fmt.Sprint(v)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("preview sales: %w", err)
	}
	return columns, out, nil
}
