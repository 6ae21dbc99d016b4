package source

import (
	"StockLab/internal/generator"
	"StockLab/internal/model"
)

// SyntheticSource generates a fresh series on every fetch. With a non-zero
// seed consecutive fetches return identical series.
type SyntheticSource struct {
	Params generator.Params
}

func NewSynthetic(p generator.Params) *SyntheticSource {
	return &SyntheticSource{Params: p}
}

func (s *SyntheticSource) Name() string { return "synthetic" }

func (s *SyntheticSource) Fetch() (*model.Series, error) {
	return generator.Generate(s.Params)
}
