package domain

import "time"

type RateSource string

const (
	RateSourceCDI   RateSource = "CDI"
	RateSourceSELIC RateSource = "SELIC"
)

type BenchmarkRate struct {
	Source      RateSource `json:"fonte"`
	AnnualRate  float64    `json:"taxa_anual"`
	MonthlyRate float64    `json:"taxa_mensal"`
	UpdatedOn   time.Time  `json:"atualizado_em"`
}
