package validation

import (
	"encoding/json"
	"reflect"
	"strings"

	"github.com/fhuszti/studio-ms-go/internal/model"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Tell the validator to use the JSON tag as the “field name”
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		// Grab the value of `json:"foo,omitempty"`
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			// fallback to the Go field name or skip
			return fld.Name
		}
		return name
	})

	mustRegister("transition", func(fl validator.FieldLevel) bool {
		return model.Transition(fl.Field().String()).Valid()
	})
	mustRegister("resolution", func(fl validator.FieldLevel) bool {
		return model.Resolution(fl.Field().String()).Valid()
	})
	mustRegister("format", func(fl validator.FieldLevel) bool {
		return model.Format(fl.Field().String()).Valid()
	})
	mustRegister("fps", func(fl validator.FieldLevel) bool {
		return model.ValidFPS(int(fl.Field().Int()))
	})
}

func mustRegister(tag string, fn validator.Func) {
	if err := validate.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func ErrorsToJson(validationErrs error) (string, error) {
	errsMap := make(map[string]string)
	for _, fieldErr := range validationErrs.(validator.ValidationErrors) {
		errsMap[fieldErr.Field()] = fieldErr.Tag()
	}

	errsJson, err := json.Marshal(errsMap)
	if err != nil {
		return "", err
	}
	return string(errsJson), nil
}
