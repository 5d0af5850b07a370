// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/quickly-survey/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks a submission request. Checks run in a fixed order and the
// first failing one is reported: group, then answer counts, then answer range.
func Validate(req models.SubmitRequest) error {
	if strings.TrimSpace(req.Group) == "" {
		return &ValidationError{Field: "grupo", Message: MsgGroupRequired}
	}

	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return &ValidationError{Message: err.Error()}
	}

	// the validator reports every failing field; lengths take precedence over ranges
	var rangeErr *ValidationError
	for _, fe := range violations {
		switch fe.Tag() {
		case "required":
			return &ValidationError{Field: fe.Field(), Message: MsgGroupRequired}
		case "len":
			return &ValidationError{Field: fe.Field(), Message: MsgWrongAnswerCount}
		case "min", "max":
			if rangeErr == nil {
				rangeErr = &ValidationError{Field: fe.Field(), Message: MsgAnswerOutOfRange}
			}
		}
	}
	if rangeErr != nil {
		return rangeErr
	}

	return &ValidationError{Message: err.Error()}
}
