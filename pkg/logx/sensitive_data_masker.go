package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

type maskRule struct {
	pattern     *regexp.Regexp
	replacement []byte
}

// Applicant attributes are personal data and never reach the logs verbatim.
//
//nolint:gochecknoglobals
var sensitiveDataRules = []maskRule{
	{
		pattern:     regexp.MustCompile(`("(?:income_lpa|bmi|age|weight|height)":\s?)-?[0-9][0-9.eE+-]*`),
		replacement: []byte(`${1}"[MASKED]"`),
	},
	{
		pattern:     regexp.MustCompile(`(?s)("city":\s?").+?(")`),
		replacement: []byte("${1}[MASKED]${2}"),
	},
}

type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, rule := range sensitiveDataRules {
		input = rule.pattern.ReplaceAll(input, rule.replacement)
	}

	return input
}

type NopSensitiveDataMasker struct{}

func NewNopSensitiveDataMasker() NopSensitiveDataMasker {
	return NopSensitiveDataMasker{}
}

func (NopSensitiveDataMasker) Mask(input []byte) []byte {
	return input
}
