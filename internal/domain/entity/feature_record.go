package entity

import "premium_api/internal/domain/value"

// Column names of the single-row table handed to the classifier.
const (
	ColumnBMI           = "bmi"
	ColumnAgeGroup      = "age_group"
	ColumnLifestyleRisk = "lifestyle_risk"
	ColumnCityTier      = "city_tier"
	ColumnIncomeLPA     = "income_lpa"
	ColumnOccupation    = "occupation"
)

// FeatureRecord is one applicant as the classifier sees it.
type FeatureRecord struct {
	BMI           float64
	AgeGroup      value.AgeGroup
	LifestyleRisk value.LifestyleRisk
	CityTier      value.CityTier
	IncomeLPA     float64
	Occupation    string
}

// Row is one row of a table keyed by column name.
type Row map[string]any

func (f FeatureRecord) Row() Row {
	return Row{
		ColumnBMI:           f.BMI,
		ColumnAgeGroup:      string(f.AgeGroup),
		ColumnLifestyleRisk: string(f.LifestyleRisk),
		ColumnCityTier:      int(f.CityTier),
		ColumnIncomeLPA:     f.IncomeLPA,
		ColumnOccupation:    f.Occupation,
	}
}
