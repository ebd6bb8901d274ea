package server

import (
	"premium_api/internal/domain/entity"
	"premium_api/internal/domain/value"
	"premium_api/pkg/rest"
)

// newDomainFeatureRecord expects a request that passed validation: every
// field is set.
func newDomainFeatureRecord(request rest.PredictRequest) entity.FeatureRecord {
	return entity.FeatureRecord{
		BMI:           *request.BMI,
		AgeGroup:      value.AgeGroup(*request.AgeGroup),
		LifestyleRisk: value.LifestyleRisk(*request.LifestyleRisk),
		CityTier:      value.CityTier(*request.CityTier),
		IncomeLPA:     *request.IncomeLPA,
		Occupation:    *request.Occupation,
	}
}

func newRESTPrediction(prediction entity.Prediction) rest.PredictResponse {
	return rest.PredictResponse{
		Response: rest.Prediction{
			PredictedCategory:  prediction.Category,
			Confidence:         prediction.Confidence,
			ClassProbabilities: prediction.Probabilities,
		},
	}
}

func newRESTHealth(health entity.Health) rest.HealthResponse {
	return rest.HealthResponse{
		Status:      health.Status,
		Version:     health.Version,
		ModelLoaded: health.ModelLoaded,
	}
}
