package source

import (
	"StockLab/internal/csvio"
	"StockLab/internal/model"
)

// FileSource reads a series from a CSV file in the interchange format.
type FileSource struct {
	Symbol string
	Path   string
}

func NewFile(symbol, path string) *FileSource {
	return &FileSource{Symbol: symbol, Path: path}
}

func (s *FileSource) Name() string { return "csv" }

func (s *FileSource) Fetch() (*model.Series, error) {
	return csvio.ReadSeries(s.Path, s.Symbol)
}
