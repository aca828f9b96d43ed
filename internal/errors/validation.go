package errors

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// MetaKeyValidation holds the map[string][]string of field messages on an
// error built by ValidationError.ToError
const MetaKeyValidation = "validation_errors"

// ValidationError collects messages per field. Field names are request
// field names or, for rejections, dotted build property paths.
type ValidationError struct {
	Fields map[string][]string `json:"fields"`
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string][]string{}}
}

// Error lists fields in name order so the text is stable
func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, field := range slices.Sorted(maps.Keys(v.Fields)) {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(field + ": " + strings.Join(v.Fields[field], ", "))
	}
	return b.String()
}

func (v *ValidationError) AddFieldError(field, message string) {
	v.Fields[field] = append(v.Fields[field], message)
}

func (v *ValidationError) AddFieldErrorf(field, format string, args ...any) {
	v.AddFieldError(field, fmt.Sprintf(format, args...))
}

func (v *ValidationError) HasErrors() bool {
	return len(v.Fields) > 0
}

// ToError returns an InvalidArgument error carrying the field messages, or
// nil when there are none
func (v *ValidationError) ToError() *Error {
	if !v.HasErrors() {
		return nil
	}
	return InvalidArgument(v.Error()).WithMeta(MetaKeyValidation, v.Fields)
}

// ValidationBuilder accumulates field errors for one request.
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRequired("characterID", input.CharacterID, vb)
//	if err := vb.Build(); err != nil {
//	    return nil, err
//	}
type ValidationBuilder struct {
	ve *ValidationError
}

func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{ve: NewValidationError()}
}

func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.ve.AddFieldError(field, message)
	return vb
}

func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	vb.ve.AddFieldErrorf(field, format, args...)
	return vb
}

func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Field(field, "is invalid: "+reason)
}

// Merge copies every message of ve; a nil ve is ignored
func (vb *ValidationBuilder) Merge(ve *ValidationError) *ValidationBuilder {
	if ve == nil {
		return vb
	}
	for field, messages := range ve.Fields {
		vb.ve.Fields[field] = append(vb.ve.Fields[field], messages...)
	}
	return vb
}

// Build returns nil when nothing was added
func (vb *ValidationBuilder) Build() error {
	if err := vb.ve.ToError(); err != nil {
		return err
	}
	return nil
}

// ValidateRequired flags a blank string
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateMaxLength flags a string longer than maxLen bytes
func ValidateMaxLength(field, value string, maxLen int, vb *ValidationBuilder) {
	if len(value) > maxLen {
		vb.Fieldf(field, "must be no more than %d characters", maxLen)
	}
}

// ValidateRange flags a value outside [lo, hi]
func ValidateRange(field string, value, lo, hi int, vb *ValidationBuilder) {
	if value < lo || value > hi {
		vb.Fieldf(field, "must be between %d and %d", lo, hi)
	}
}
