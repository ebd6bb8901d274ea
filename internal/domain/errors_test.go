package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"premium_api/internal/domain"
	"premium_api/pkg/errcodes"
)

func TestAppError(t *testing.T) {
	rq := require.New(t)

	cause := errors.New(`column "bmi" is missing`)
	err := fmt.Errorf("premiumService.Predict: %w",
		domain.WrapError(cause, errcodes.PredictionFailed, "prediction failed"))

	rq.ErrorIs(err, cause)

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.PredictionFailed, code)

	var appErr *domain.AppError
	rq.ErrorAs(err, &appErr)
	rq.Equal(`prediction failed: column "bmi" is missing`, appErr.Error())
	rq.Equal(errcodes.PredictionFailed, appErr.ErrorCode())

	plain := domain.NewError(errcodes.PredictionMismatch, "labels disagree")
	rq.Equal("labels disagree", plain.Error())
	rq.NoError(plain.Unwrap())

	_, ok = domain.GetCode(cause)
	rq.False(ok)
}
