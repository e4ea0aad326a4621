package httpapi

import (
	"github.com/dmitrymomot/inputguard/pkg/config"
	"github.com/dmitrymomot/inputguard/pkg/validator"
)

// EvaluateRequest is the body of POST /v1/fields/{name}/evaluate.
type EvaluateRequest struct {
	Text *string `json:"text"`
}

// EvaluateResponse reports the outcome of one Process cycle.
type EvaluateResponse struct {
	Field       string `json:"field"`
	Valid       bool   `json:"valid"`
	Text        string `json:"text"`
	Reformatted bool   `json:"reformatted"`
}

// FieldList is returned by GET /v1/fields.
type FieldList struct {
	Fields []string `json:"fields"`
}

// FieldInfo describes the configuration of one field. Unset number
// bounds are omitted.
type FieldInfo struct {
	Name             string   `json:"name"`
	Classification   string   `json:"classification"`
	Separator        string   `json:"separator"`
	MinNumber        *float64 `json:"min_number,omitempty"`
	MaxNumber        *float64 `json:"max_number,omitempty"`
	MinLength        int      `json:"min_length"`
	MaxLength        int      `json:"max_length"`
	MaxDecimalDigits int      `json:"max_decimal_digits"`
	EmptyIsValid     bool     `json:"empty_is_valid"`
	CustomPattern    string   `json:"custom_pattern,omitempty"`
	Expression       string   `json:"expression,omitempty"`
	PhoneRegion      string   `json:"phone_region,omitempty"`
}

func newFieldInfo(name string, src config.Field, e *validator.Engine) FieldInfo {
	f := config.FieldFromEngine(e)
	return FieldInfo{
		Name:             name,
		Classification:   f.Classification,
		Separator:        f.Separator,
		MinNumber:        boundPtr(e.MinNumber()),
		MaxNumber:        boundPtr(e.MaxNumber()),
		MinLength:        f.MinLength,
		MaxLength:        f.MaxLength,
		MaxDecimalDigits: f.MaxDecimalDigits,
		EmptyIsValid:     f.EmptyIsValid,
		CustomPattern:    f.CustomPattern,
		Expression:       src.Expression,
		PhoneRegion:      src.PhoneRegion,
	}
}

func boundPtr(b validator.Bound) *float64 {
	v, ok := b.Value()
	if !ok {
		return nil
	}
	return &v
}
