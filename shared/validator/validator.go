package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"comfort/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// emailPattern is the local@domain.tld shape: no whitespace, exactly the
// separators required, a dot somewhere in the domain part.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s]+$`)

const phoneMinLength = 10

func registerEmailValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	return emailPattern.MatchString(value)
}

// registerPhoneValidation accepts digits, whitespace and the characters
// - + ( ), with a minimum total length of 10. Empty values are handled by
// omitempty on the field tag.
func registerPhoneValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	if len(value) < phoneMinLength {
		return false
	}

	for _, r := range value {
		switch {
		case r >= '0' && r <= '9':
		case r == ' ' || r == '\t':
		case r == '-' || r == '+' || r == '(' || r == ')':
		default:
			return false
		}
	}

	return true
}

func registerNotBlankValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	return strings.TrimSpace(value) != ""
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("email_addr", registerEmailValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("phone", registerPhoneValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("notblank", registerNotBlankValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
