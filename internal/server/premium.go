package server

import (
	"context"
	"fmt"
	"net/http"

	"premium_api/internal/domain/entity"
	"premium_api/pkg/httpx/reply"
	"premium_api/pkg/httpx/req"
	"premium_api/pkg/rest"
)

const homeMessage = "Insurance premium prediction API"

type premiumService interface {
	Predict(context.Context, entity.FeatureRecord) (entity.Prediction, error)
	Health() entity.Health
}

type PremiumServer struct {
	premiumService premiumService
}

func NewPremiumServer(premiumService premiumService) PremiumServer {
	return PremiumServer{
		premiumService: premiumService,
	}
}

func (s PremiumServer) getHome(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, rest.HomeResponse{Message: homeMessage})

	return nil
}

func (s PremiumServer) getHealth(w http.ResponseWriter, r *http.Request) error {
	reply.JSON(r.Context(), w, http.StatusOK, newRESTHealth(s.premiumService.Health()))

	return nil
}

func (s PremiumServer) postPredict(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.PredictRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	prediction, err := s.premiumService.Predict(ctx, newDomainFeatureRecord(request))
	if err != nil {
		return fmt.Errorf("premiumService.Predict: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTPrediction(prediction))

	return nil
}
