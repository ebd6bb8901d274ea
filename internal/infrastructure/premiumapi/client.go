// Package premiumapi is the HTTP client of the premium prediction API.
package premiumapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"premium_api/internal/domain/entity"
	"premium_api/pkg/httpx"
	"premium_api/pkg/rest"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const requestTimeout = 10 * time.Second

// APIError is a non-200 answer of the API.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	SupportID  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("premium api: %d %s: %s (support id %s)", e.StatusCode, e.Code, e.Message, e.SupportID)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client that logs every exchange through
// httpx.LoggingRoundTripper configured with opts.
func NewClient(baseURL string, opts ...httpx.Option) Client {
	return Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport: httpx.NewLoggingRoundTripper(http.DefaultTransport, opts...),
			Timeout:   requestTimeout,
		},
	}
}

func (c Client) Predict(ctx context.Context, record entity.FeatureRecord) (entity.Prediction, error) {
	cityTier := int(record.CityTier)
	ageGroup := string(record.AgeGroup)
	lifestyleRisk := string(record.LifestyleRisk)

	request := rest.PredictRequest{
		BMI:           &record.BMI,
		AgeGroup:      &ageGroup,
		LifestyleRisk: &lifestyleRisk,
		CityTier:      &cityTier,
		IncomeLPA:     &record.IncomeLPA,
		Occupation:    &record.Occupation,
	}

	var response rest.PredictResponse

	if err := c.do(ctx, http.MethodPost, "/predict", request, &response); err != nil {
		return entity.Prediction{}, err
	}

	return entity.Prediction{
		Category:      response.Response.PredictedCategory,
		Confidence:    response.Response.Confidence,
		Probabilities: response.Response.ClassProbabilities,
	}, nil
}

func (c Client) Health(ctx context.Context) (entity.Health, error) {
	var response rest.HealthResponse

	if err := c.do(ctx, http.MethodGet, "/health", nil, &response); err != nil {
		return entity.Health{}, err
	}

	return entity.Health{
		Status:      response.Status,
		Version:     response.Version,
		ModelLoaded: response.ModelLoaded,
	}, nil
}

func (c Client) do(ctx context.Context, method, endpoint string, request, dest any) error {
	body := io.Reader(http.NoBody)

	if request != nil {
		payload, err := json.Marshal(request)
		if err != nil {
			return fmt.Errorf("json.Marshal: %w", err)
		}

		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	if request != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpClient.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var envelope rest.Error

		if err = json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
			envelope.Message = http.StatusText(resp.StatusCode)
		}

		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       string(envelope.Code),
			Message:    envelope.Message,
			SupportID:  envelope.SupportID,
		}
	}

	if err = json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("json.Decode: %w", err)
	}

	return nil
}
