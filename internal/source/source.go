package source

import "StockLab/internal/model"

// Source produces a price series for the pipeline. This is the seam where
// a real market-data provider would plug in; the implementations shipped
// here are the synthetic generator and the CSV file reader.
type Source interface {
	Fetch() (*model.Series, error)
	Name() string
}
