package stock

type Column string

const (
	ColumnDate               Column = "Date"
	ColumnSymbol             Column = "Symbol"
	ColumnSeries             Column = "Series"
	ColumnPrevClose          Column = "Prev Close"
	ColumnOpen               Column = "Open"
	ColumnHigh               Column = "High"
	ColumnLow                Column = "Low"
	ColumnLast               Column = "Last"
	ColumnClose              Column = "Close"
	ColumnVWAP               Column = "VWAP"
	ColumnVolume             Column = "Volume"
	ColumnTurnover           Column = "Turnover"
	ColumnTrades             Column = "Trades"
	ColumnDeliverable        Column = "Deliverable"
	ColumnPercentDeliverable Column = "%Deliverable"
)

// Columns lists the canonical csv header, in schema order.
var Columns = []Column{
	ColumnDate,
	ColumnSymbol,
	ColumnSeries,
	ColumnPrevClose,
	ColumnOpen,
	ColumnHigh,
	ColumnLow,
	ColumnLast,
	ColumnClose,
	ColumnVWAP,
	ColumnVolume,
	ColumnTurnover,
	ColumnTrades,
	ColumnDeliverable,
	ColumnPercentDeliverable,
}

// NumericColumns is the validation order of the number columns.
var NumericColumns = []Column{
	ColumnPrevClose,
	ColumnOpen,
	ColumnHigh,
	ColumnLow,
	ColumnLast,
	ColumnClose,
	ColumnVWAP,
	ColumnVolume,
	ColumnTurnover,
	ColumnTrades,
	ColumnDeliverable,
	ColumnPercentDeliverable,
}

func (c Column) String() string {
	return string(c)
}

// MissingColumns returns the canonical columns that are not keys of row.
func MissingColumns(row map[string]string) []Column {
	var missing []Column
	for _, col := range Columns {
		if _, ok := row[string(col)]; !ok {
			missing = append(missing, col)
		}
	}
	return missing
}
