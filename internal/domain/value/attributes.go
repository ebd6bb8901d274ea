package value

// Categories of the applicant attributes the classifier was trained on. The
// API passes any string through; these are the values the client derives.

type AgeGroup string

const (
	AgeGroupYoung      AgeGroup = "young"
	AgeGroupAdult      AgeGroup = "adult"
	AgeGroupMiddleAged AgeGroup = "middle_aged"
	AgeGroupSenior     AgeGroup = "senior"
)

type LifestyleRisk string

const (
	LifestyleRiskLow    LifestyleRisk = "low"
	LifestyleRiskMedium LifestyleRisk = "medium"
	LifestyleRiskHigh   LifestyleRisk = "high"
)

type CityTier int

const (
	CityTier1 CityTier = 1
	CityTier2 CityTier = 2
	CityTier3 CityTier = 3
)
