// Wire types of the premium API. Kept in one place so the server and the
// client share a single contract.
package rest

// HomeResponse Приветствие корневого эндпоинта
type HomeResponse struct {
	Message string `json:"message"`
}

// HealthResponse Состояние сервиса и загруженной модели
type HealthResponse struct {
	Status      string `json:"status"`
	Version     string `json:"version"`
	ModelLoaded bool   `json:"model_loaded"`
}

// PredictRequest Признаки заявителя. Указатели отличают отсутствующее поле
// от нулевого значения.
type PredictRequest struct {
	BMI           *float64 `json:"bmi" validate:"required"`
	AgeGroup      *string  `json:"age_group" validate:"required"`
	LifestyleRisk *string  `json:"lifestyle_risk" validate:"required"`
	CityTier      *int     `json:"city_tier" validate:"required"`
	IncomeLPA     *float64 `json:"income_lpa" validate:"required"`
	Occupation    *string  `json:"occupation" validate:"required"`
}

type PredictResponse struct {
	Response Prediction `json:"response"`
}

type Prediction struct {
	PredictedCategory  string             `json:"predicted_category"`
	Confidence         float64            `json:"confidence"`
	ClassProbabilities map[string]float64 `json:"class_probabilities"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке
	Message string `json:"message"`

	// SupportID Идентификатор запроса для обращения в поддержку
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
