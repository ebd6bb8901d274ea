package errcodes

import "git.appkode.ru/pub/go/failure"

const (
	InternalServerError failure.ErrorCode = "InternalServerError"
	ValidationError     failure.ErrorCode = "ValidationError"
	NotFound            failure.ErrorCode = "NotFound"
	Forbidden           failure.ErrorCode = "Forbidden"

	// Inference.
	PredictionFailed   failure.ErrorCode = "PredictionFailed"
	PredictionMismatch failure.ErrorCode = "PredictionMismatch"
	InvalidProfile     failure.ErrorCode = "InvalidProfile"
)
