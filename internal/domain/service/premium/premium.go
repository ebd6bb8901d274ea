// Package premium serves risk category predictions from a loaded classifier.
package premium

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/samber/lo"

	"premium_api/internal/domain"
	"premium_api/internal/domain/entity"
	"premium_api/pkg/errcodes"
	"premium_api/pkg/logx"
)

const (
	statusOK = "OK"

	// probabilities are reported with 4 decimals
	precision = 1e4

	// tolerance for floating point drift above 1
	probabilityEpsilon = 1e-9

	// probabilities must sum to 1 within this
	sumTolerance = 1e-6
)

type Classifier interface {
	Classes() []string
	Predict(row entity.Row) (string, error)
	PredictProba(row entity.Row) ([]float64, error)
}

type Recorder interface {
	ObservePrediction(category string, elapsed time.Duration)
	ObserveFailure(code string, elapsed time.Duration)
}

type Service struct {
	classifier Classifier
	classes    []string
	version    string
	recorder   Recorder
}

// NewService captures the classifier's label set once; probabilities are
// matched to labels by position for the lifetime of the service.
func NewService(classifier Classifier, version string) *Service {
	s := &Service{
		classifier: classifier,
		version:    version,
		recorder:   nopRecorder{},
	}

	if classifier != nil {
		s.classes = classifier.Classes()
	}

	return s
}

func (s *Service) WithRecorder(recorder Recorder) *Service {
	s.recorder = recorder
	return s
}

func (s *Service) Health() entity.Health {
	return entity.Health{
		Status:      statusOK,
		Version:     s.version,
		ModelLoaded: s.classifier != nil,
	}
}

func (s *Service) Predict(ctx context.Context, record entity.FeatureRecord) (entity.Prediction, error) {
	start := time.Now()

	prediction, err := s.predict(record)
	if err != nil {
		code, _ := domain.GetCode(err)
		s.recorder.ObserveFailure(code.String(), time.Since(start))

		return entity.Prediction{}, err
	}

	s.recorder.ObservePrediction(prediction.Category, time.Since(start))

	logger(ctx).Info("prediction served",
		slog.String(logx.FieldCategory, prediction.Category),
		slog.Float64(logx.FieldConfidence, prediction.Confidence),
	)

	return prediction, nil
}

func (s *Service) predict(record entity.FeatureRecord) (entity.Prediction, error) {
	if s.classifier == nil {
		return entity.Prediction{}, domain.NewError(errcodes.PredictionFailed, "model is not loaded")
	}

	row := record.Row()

	label, err := s.classifier.Predict(row)
	if err != nil {
		return entity.Prediction{}, domain.WrapError(
			fmt.Errorf("classifier.Predict: %w", err), errcodes.PredictionFailed, "prediction failed",
		)
	}

	probabilities, err := s.classifier.PredictProba(row)
	if err != nil {
		return entity.Prediction{}, domain.WrapError(
			fmt.Errorf("classifier.PredictProba: %w", err), errcodes.PredictionFailed, "prediction failed",
		)
	}

	if len(probabilities) != len(s.classes) {
		return entity.Prediction{}, domain.NewError(errcodes.PredictionFailed, fmt.Sprintf(
			"classifier returned %d probabilities for %d classes", len(probabilities), len(s.classes),
		))
	}

	best := 0

	for i, p := range probabilities {
		if math.IsNaN(p) || p < 0 || p > 1+probabilityEpsilon {
			return entity.Prediction{}, domain.NewError(errcodes.PredictionFailed, fmt.Sprintf(
				"probability %v of class %q is out of range", p, s.classes[i],
			))
		}

		if p > probabilities[best] {
			best = i
		}
	}

	if sum := lo.Sum(probabilities); math.Abs(sum-1) > sumTolerance {
		return entity.Prediction{}, domain.NewError(errcodes.PredictionFailed, fmt.Sprintf(
			"probabilities sum to %v", sum,
		))
	}

	if s.classes[best] != label {
		return entity.Prediction{}, domain.NewError(errcodes.PredictionMismatch, fmt.Sprintf(
			"classifier predicted %q but the most probable class is %q", label, s.classes[best],
		))
	}

	rounded := make(map[string]float64, len(s.classes))
	for i, class := range s.classes {
		rounded[class] = round(probabilities[i])
	}

	return entity.Prediction{
		Category:      label,
		Confidence:    rounded[label],
		Probabilities: rounded,
	}, nil
}

func round(v float64) float64 {
	return math.Round(v*precision) / precision
}

type nopRecorder struct{}

func (nopRecorder) ObservePrediction(string, time.Duration) {}
func (nopRecorder) ObserveFailure(string, time.Duration)    {}
