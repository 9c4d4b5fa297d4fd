package dataset

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// TransactionSchema is the Arrow schema for the extended sales table.
// Millisecond timestamps round-trip through Parquet without a unit change.
var TransactionSchema = arrow.NewSchema(
	[]arrow.Field{
		{Name: "timestamp", Type: arrow.FixedWidthTypes.Timestamp_ms},
		{Name: "store_id", Type: arrow.PrimitiveTypes.Int64},
		{Name: "product_id", Type: arrow.PrimitiveTypes.Int64},
		{Name: "quantity", Type: arrow.PrimitiveTypes.Int64},
		{Name: "price", Type: arrow.PrimitiveTypes.Float64},
		{Name: "customer_id", Type: arrow.PrimitiveTypes.Int64},
		{Name: "promotion", Type: arrow.BinaryTypes.String},
	},
	nil,
)

// SalesSchema is the Arrow schema for the simple CSV-backed table.
var SalesSchema = arrow.NewSchema(
	[]arrow.Field{
		{Name: "date", Type: arrow.BinaryTypes.String},
		{Name: "product", Type: arrow.BinaryTypes.String},
		{Name: "quantity", Type: arrow.PrimitiveTypes.Int64},
		{Name: "price", Type: arrow.PrimitiveTypes.Float64},
	},
	nil,
)

// NewSalesRecord builds one Arrow record batch from sales. The caller owns
// the record and must Release it.
func NewSalesRecord(sales []Sale) arrow.Record {
	rb := array.NewRecordBuilder(memory.DefaultAllocator, SalesSchema)
	defer rb.Release()

	dateBuilder := rb.Field(0).(*array.StringBuilder)
	productBuilder := rb.Field(1).(*array.StringBuilder)
	quantityBuilder := rb.Field(2).(*array.Int64Builder)
	priceBuilder := rb.Field(3).(*array.Float64Builder)

	for _, s := range sales {
		dateBuilder.Append(s.Date)
		productBuilder.Append(s.Product)
		quantityBuilder.Append(s.Quantity)
		priceBuilder.Append(s.Price)
	}

	return rb.NewRecord()
}

// NewArrowRecord builds one Arrow record batch from txs. The caller owns
// the record and must Release it.
func NewArrowRecord(txs []Transaction) arrow.Record {
	rb := array.NewRecordBuilder(memory.DefaultAllocator, TransactionSchema)
	defer rb.Release()

	tsBuilder := rb.Field(0).(*array.TimestampBuilder)
	storeBuilder := rb.Field(1).(*array.Int64Builder)
	productBuilder := rb.Field(2).(*array.Int64Builder)
	quantityBuilder := rb.Field(3).(*array.Int64Builder)
	priceBuilder := rb.Field(4).(*array.Float64Builder)
	customerBuilder := rb.Field(5).(*array.Int64Builder)
	promoBuilder := rb.Field(6).(*array.StringBuilder)

	for _, tx := range txs {
		tsBuilder.Append(arrow.Timestamp(tx.Timestamp.UnixMilli()))
		storeBuilder.Append(tx.StoreID)
		productBuilder.Append(tx.ProductID)
		quantityBuilder.Append(tx.Quantity)
		priceBuilder.Append(tx.Price)
		customerBuilder.Append(tx.CustomerID)
		promoBuilder.Append(tx.Promotion)
	}

	return rb.NewRecord()
}
