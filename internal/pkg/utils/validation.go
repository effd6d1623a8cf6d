package utils

import (
	"preop-service/internal/pkg/asa"
	"preop-service/internal/pkg/constvars"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(jsonFieldName)
	validate.RegisterValidation("activity_tag", validateActivityTag)
	validate.RegisterValidation("not_future", validateNotFutureDate)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return field.Name
	}
	return name
}

func validateActivityTag(fl validator.FieldLevel) bool {
	_, ok := asa.ParseActivityTag(fl.Field().String())
	return ok
}

// Unparseable dates pass here and are left to the datetime tag.
func validateNotFutureDate(fl validator.FieldLevel) bool {
	date, err := time.Parse(constvars.AppDateLayout, fl.Field().String())
	if err != nil {
		return true
	}
	return !date.After(time.Now())
}
