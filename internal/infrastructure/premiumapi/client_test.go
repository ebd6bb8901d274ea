package premiumapi_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"premium_api/internal/domain/entity"
	"premium_api/internal/infrastructure/premiumapi"
	"premium_api/pkg/contextx"
	"premium_api/pkg/httpx"
	"premium_api/pkg/logx"
)

var record = entity.FeatureRecord{ //nolint:gochecknoglobals
	BMI:           24.5,
	AgeGroup:      "adult",
	LifestyleRisk: "low",
	CityTier:      1,
	IncomeLPA:     12,
	Occupation:    "salaried",
}

func TestPredict(t *testing.T) {
	rq := require.New(t)

	bodies := make(chan string, 1)
	traceIDs := make(chan string, 1)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		bodies <- string(body)
		traceIDs <- r.Header.Get(httpx.HeaderNameTraceID)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"response":{"predicted_category":"Low","confidence":0.5982,` +
			`"class_probabilities":{"High":0.1035,"Low":0.5982,"Medium":0.2983}}}`))
	}))
	defer ts.Close()

	client := premiumapi.NewClient(ts.URL+"/", httpx.WithSensitiveDataMasker(logx.NewSensitiveDataMasker()))
	ctx := contextx.WithTraceID(context.Background(), "cs0s8b0p6k7ag0f0ut1g")

	prediction, err := client.Predict(ctx, record)
	rq.NoError(err)
	rq.Equal(entity.Prediction{
		Category:      "Low",
		Confidence:    0.5982,
		Probabilities: map[string]float64{"High": 0.1035, "Low": 0.5982, "Medium": 0.2983},
	}, prediction)

	rq.JSONEq(
		`{"bmi":24.5,"age_group":"adult","lifestyle_risk":"low","city_tier":1,"income_lpa":12,"occupation":"salaried"}`,
		<-bodies,
	)
	rq.Equal("cs0s8b0p6k7ag0f0ut1g", <-traceIDs)
}

func TestPredictErrorEnvelope(t *testing.T) {
	rq := require.New(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"code":"PredictionFailed","message":"prediction failed: boom","supportId":"abc"}`))
	}))
	defer ts.Close()

	_, err := premiumapi.NewClient(ts.URL).Predict(context.Background(), record)

	var apiErr *premiumapi.APIError

	rq.ErrorAs(err, &apiErr)
	rq.Equal(&premiumapi.APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       "PredictionFailed",
		Message:    "prediction failed: boom",
		SupportID:  "abc",
	}, apiErr)
	rq.EqualError(err, "premium api: 500 PredictionFailed: prediction failed: boom (support id abc)")
}

func TestPredictNonJSONError(t *testing.T) {
	rq := require.New(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer ts.Close()

	_, err := premiumapi.NewClient(ts.URL).Predict(context.Background(), record)

	var apiErr *premiumapi.APIError

	rq.ErrorAs(err, &apiErr)
	rq.Equal(http.StatusBadGateway, apiErr.StatusCode)
	rq.Equal("Bad Gateway", apiErr.Message)
}

func TestHealth(t *testing.T) {
	rq := require.New(t)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			http.NotFound(w, r)
			return
		}

		_, _ = w.Write([]byte(`{"status":"OK","version":"1.0.0","model_loaded":true}`))
	}))
	defer ts.Close()

	health, err := premiumapi.NewClient(ts.URL).Health(context.Background())
	rq.NoError(err)
	rq.Equal(entity.Health{Status: "OK", Version: "1.0.0", ModelLoaded: true}, health)
}
