package domain

import "github.com/shopspring/decimal"

// RatePerKg is the flat shipping rate in currency units per kilogram.
var RatePerKg = decimal.NewFromInt(5)

// ManifestLine groups shipped units that share a name and unit weight.
type ManifestLine struct {
	Name       string
	UnitWeight decimal.Decimal
	Count      int
}

func (l ManifestLine) Weight() decimal.Decimal {
	return l.UnitWeight.Mul(decimal.NewFromInt(int64(l.Count)))
}

type Manifest struct {
	Lines       []ManifestLine
	TotalWeight decimal.Decimal
}

func (m Manifest) Units() int {
	n := 0
	for _, l := range m.Lines {
		n += l.Count
	}
	return n
}
