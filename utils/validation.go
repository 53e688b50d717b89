package utils

import (
	"CityGuide/models"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldError is one entry of the error list returned on a 400.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule,omitempty"`
	Param   string `json:"param,omitempty"`
	Message string `json:"message"`
}

var registerOnce sync.Once

// RegisterValidators installs the domain rules on gin's validator and makes
// error fields use their JSON names.
func RegisterValidators() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
			return models.IsCategory(fl.Field().String())
		})
		_ = v.RegisterValidation("pricelevel", func(fl validator.FieldLevel) bool {
			return models.IsPriceLevel(fl.Field().String())
		})
	})
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// FieldErrors turns a binding error into the structured error list.
func FieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Field: "body", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}
		out = append(out, FieldError{
			Field:   field,
			Rule:    fe.Tag(),
			Param:   fe.Param(),
			Message: describe(field, fe),
		})
	}
	return out
}

func describe(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "category":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(models.Categories, ", "))
	case "pricelevel":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(models.PriceLevels, ", "))
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	}
	return fmt.Sprintf("%s failed on the '%s' rule", field, fe.Tag())
}

func ValidationErrorResponse(c *gin.Context, message string, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"message": message,
		"errors":  FieldErrors(err),
	})
}
