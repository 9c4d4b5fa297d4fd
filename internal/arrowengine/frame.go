// Package arrowengine answers the exercise queries over Apache Arrow record
// batches, reading whole columns instead of whole rows.
package arrowengine

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/dataexercises/salesbench/internal/dataset"
)

// Frame holds one or more record batches of the same schema. It owns the
// records; Release when done.
type Frame struct {
	recs []arrow.Record
}

// NewFrame takes ownership of recs.
func NewFrame(recs ...arrow.Record) *Frame {
	return &Frame{recs: recs}
}

// FromParquet loads a Parquet file into a frame.
func FromParquet(path string) (*Frame, error) {
	recs, err := dataset.ReadParquet(path)
	if err != nil {
		return nil, err
	}
	return NewFrame(recs...), nil
}

func (f *Frame) Release() {
	for _, rec := range f.recs {
		rec.Release()
	}
	f.recs = nil
}

func (f *Frame) NumRows() int64 {
	var n int64
	for _, rec := range f.recs {
		n += rec.NumRows()
	}
	return n
}

func column(rec arrow.Record, name string) (arrow.Array, error) {
	indices := rec.Schema().FieldIndices(name)
	if len(indices) != 1 {
		return nil, fmt.Errorf("column %q: found %d matches", name, len(indices))
	}
	return rec.Column(indices[0]), nil
}

func stringColumn(rec arrow.Record, name string) (*array.String, error) {
	col, err := column(rec, name)
	if err != nil {
		return nil, err
	}
	c, ok := col.(*array.String)
	if !ok {
		return nil, fmt.Errorf("column %q: want string, got %s", name, col.DataType())
	}
	return c, nil
}

func int64Column(rec arrow.Record, name string) (*array.Int64, error) {
	col, err := column(rec, name)
	if err != nil {
		return nil, err
	}
	c, ok := col.(*array.Int64)
	if !ok {
		return nil, fmt.Errorf("column %q: want int64, got %s", name, col.DataType())
	}
	return c, nil
}

func float64Column(rec arrow.Record, name string) (*array.Float64, error) {
	col, err := column(rec, name)
	if err != nil {
		return nil, err
	}
	c, ok := col.(*array.Float64)
	if !ok {
		return nil, fmt.Errorf("column %q: want float64, got %s", name, col.DataType())
	}
	return c, nil
}

func timestampColumn(rec arrow.Record, name string) (*array.Timestamp, arrow.TimeUnit, error) {
	col, err := column(rec, name)
	if err != nil {
		return nil, arrow.Second, err
	}
	c, ok := col.(*array.Timestamp)
	if !ok {
		return nil, arrow.Second, fmt.Errorf("column %q: want timestamp, got %s", name, col.DataType())
	}
	unit := c.DataType().(*arrow.TimestampType).Unit
	return c, unit, nil
}
