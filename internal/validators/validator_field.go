package validators

import (
	"context"
	"regexp"
	"unicode/utf8"

	"github.com/MKhiriev/idea-brand-coach/models"
)

// Field name constants used to scope field record validation.
const (
	FieldUserID          = "user_id"
	FieldFieldIdentifier = "field_identifier"
	FieldCategory        = "category"
	FieldContent         = "content"
)

const (
	// MaxFieldIdentifierLength bounds identifiers such as "avatar_demographics".
	MaxFieldIdentifierLength = 128

	// MaxFieldContentLength is measured in runes.
	MaxFieldContentLength = 20000
)

var fieldIdentifierPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.\-]*$`)

// FieldValidator checks field upserts and lookups.
type FieldValidator struct{}

func NewFieldValidator() Validator {
	return &FieldValidator{}
}

func (v *FieldValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FieldUpsert:
		return v.validateUpsert(value, fields...)
	case *models.FieldUpsert:
		return v.validateUpsert(*value, fields...)
	case models.FieldCategory:
		return validateCategory(value)
	default:
		return ErrUnsupportedType
	}
}

// IsValidFieldIdentifier reports whether id may be used as a field key.
func IsValidFieldIdentifier(id string) bool {
	return len(id) <= MaxFieldIdentifierLength && fieldIdentifierPattern.MatchString(id)
}

func (v *FieldValidator) validateUpsert(upsert models.FieldUpsert, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldFieldIdentifier, FieldCategory, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if upsert.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldFieldIdentifier:
			if !IsValidFieldIdentifier(upsert.FieldIdentifier) {
				return ErrInvalidFieldIdentifier
			}
		case FieldCategory:
			if err := validateCategory(upsert.Category); err != nil {
				return err
			}
		case FieldContent:
			if utf8.RuneCountInString(upsert.Content) > MaxFieldContentLength {
				return ErrContentTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateCategory(c models.FieldCategory) error {
	if !c.Valid() {
		return ErrInvalidCategory
	}
	return nil
}
