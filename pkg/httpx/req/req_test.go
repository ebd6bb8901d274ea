package req_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"premium_api/pkg/httpx/req"
	"premium_api/pkg/rest"
)

func TestRead(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "Valid",
			body: `{"bmi":24.5,"age_group":"adult","lifestyle_risk":"low","city_tier":1,"income_lpa":12,"occupation":"x"}`,
		},
		{
			name: "Zero values",
			body: `{"bmi":0,"age_group":"","lifestyle_risk":"","city_tier":0,"income_lpa":0,"occupation":""}`,
		},
		{
			name:    "Missing field",
			body:    `{"bmi":24.5,"age_group":"adult","lifestyle_risk":"low","city_tier":1,"income_lpa":12}`,
			wantErr: true,
		},
		{
			name:    "Null field",
			body:    `{"bmi":null,"age_group":"adult","lifestyle_risk":"low","city_tier":1,"income_lpa":12,"occupation":"x"}`,
			wantErr: true,
		},
		{
			name:    "Malformed",
			body:    `{"bmi":`,
			wantErr: true,
		},
		{
			name:    "Trailing data",
			body:    `{"bmi":24.5,"age_group":"adult","lifestyle_risk":"low","city_tier":1,"income_lpa":12,"occupation":"x"}garbage`,
			wantErr: true,
		},
		{
			name:    "Two objects",
			body:    `{"bmi":24.5,"age_group":"adult","lifestyle_risk":"low","city_tier":1,"income_lpa":12,"occupation":"x"} {}`,
			wantErr: true,
		},
		{
			name: "Trailing whitespace",
			body: `{"bmi":24.5,"age_group":"adult","lifestyle_risk":"low","city_tier":1,"income_lpa":12,"occupation":"x"}` + "\n",
		},
		{
			name:    "Wrong type",
			body:    `{"bmi":24.5,"age_group":"adult","lifestyle_risk":"low","city_tier":"one","income_lpa":12,"occupation":"x"}`,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(tc.body))

			var request rest.PredictRequest

			err := req.Read(r, &request)
			if !tc.wantErr {
				rq.NoError(err)
				rq.NotNil(request.Occupation)

				return
			}

			rq.Error(err)
			rq.True(failure.IsInvalidArgumentError(err))
		})
	}
}
