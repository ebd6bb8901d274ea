// Package features turns a raw applicant profile into the FeatureRecord the
// premium API accepts.
package features

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"premium_api/internal/domain"
	"premium_api/internal/domain/entity"
	"premium_api/internal/domain/value"
	"premium_api/pkg/errcodes"
)

const (
	youngAgeLimit      = 25
	adultAgeLimit      = 45
	middleAgedAgeLimit = 60

	obeseBMI      = 30
	overweightBMI = 27
)

//nolint:gochecknoglobals
var (
	tier1Cities = []string{
		"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata", "Hyderabad", "Pune",
	}
	tier2Cities = []string{
		"Jaipur", "Chandigarh", "Indore", "Lucknow", "Patna", "Ranchi", "Visakhapatnam", "Coimbatore",
		"Bhopal", "Nagpur", "Vadodara", "Surat", "Rajkot", "Jodhpur", "Raipur", "Amritsar", "Varanasi",
		"Agra", "Dehradun", "Mysore", "Jabalpur", "Guwahati", "Thiruvananthapuram", "Ludhiana", "Nashik",
		"Allahabad", "Udaipur", "Aurangabad", "Hubli", "Belgaum", "Salem", "Vijayawada", "Tiruchirappalli",
		"Bhavnagar", "Gwalior", "Dhanbad", "Bareilly", "Aligarh", "Gaya", "Kozhikode", "Warangal",
		"Kolhapur", "Bilaspur", "Jalandhar", "Noida", "Guntur", "Asansol", "Siliguri",
	}
)

// Derive computes bmi, age group, lifestyle risk and city tier from profile.
// Income and occupation pass through.
func Derive(profile entity.ApplicantProfile) (entity.FeatureRecord, error) {
	if profile.HeightM <= 0 {
		return entity.FeatureRecord{}, domain.NewError(
			errcodes.InvalidProfile,
			fmt.Sprintf("height must be positive, got %v", profile.HeightM),
		)
	}

	bmi := BMI(profile.WeightKg, profile.HeightM)

	return entity.FeatureRecord{
		BMI:           bmi,
		AgeGroup:      AgeGroupOf(profile.Age),
		LifestyleRisk: LifestyleRiskOf(profile.Smoker, bmi),
		CityTier:      CityTierOf(profile.City),
		IncomeLPA:     profile.IncomeLPA,
		Occupation:    strings.ToLower(strings.TrimSpace(profile.Occupation)),
	}, nil
}

func BMI(weightKg, heightM float64) float64 {
	return weightKg / (heightM * heightM)
}

func AgeGroupOf(age int) value.AgeGroup {
	switch {
	case age < youngAgeLimit:
		return value.AgeGroupYoung
	case age < adultAgeLimit:
		return value.AgeGroupAdult
	case age < middleAgedAgeLimit:
		return value.AgeGroupMiddleAged
	default:
		return value.AgeGroupSenior
	}
}

func LifestyleRiskOf(smoker bool, bmi float64) value.LifestyleRisk {
	switch {
	case smoker && bmi > obeseBMI:
		return value.LifestyleRiskHigh
	case smoker || bmi > overweightBMI:
		return value.LifestyleRiskMedium
	default:
		return value.LifestyleRiskLow
	}
}

// CityTierOf matches city case-insensitively; unknown cities are tier 3.
func CityTierOf(city string) value.CityTier {
	city = strings.TrimSpace(city)

	sameCity := func(known string) bool { return strings.EqualFold(known, city) }

	switch {
	case lo.ContainsBy(tier1Cities, sameCity):
		return value.CityTier1
	case lo.ContainsBy(tier2Cities, sameCity):
		return value.CityTier2
	default:
		return value.CityTier3
	}
}
