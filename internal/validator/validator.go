package validator

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/csexamtest/examtest-backend/internal/model"
	"github.com/csexamtest/examtest-backend/internal/response"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	govalidator "github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// trans is the singleton English translator for validation errors.
var (
	trans ut.Translator
	once  sync.Once
)

// Setup registers the validator with English translations on Gin's binding engine.
// Safe to call more than once.
func Setup() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*govalidator.Validate)
		if !ok {
			return
		}

		// Use JSON tag name for field names in error messages.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("option", isOption)

		enLocale := en.New()
		uni := ut.New(enLocale, enLocale)
		trans, _ = uni.GetTranslator("en")
		_ = en_translations.RegisterDefaultTranslations(v, trans)
		_ = v.RegisterTranslation("option", trans,
			func(ut ut.Translator) error {
				return ut.Add("option", "{0} must be one of A, B, C or D", true)
			},
			func(ut ut.Translator, fe govalidator.FieldError) string {
				msg, _ := ut.T("option", fe.Field())
				return msg
			},
		)
	})
}

// isOption accepts the four answer letters.
func isOption(fl govalidator.FieldLevel) bool {
	switch fl.Field().String() {
	case model.OptionA, model.OptionB, model.OptionC, model.OptionD:
		return true
	}
	return false
}

// TranslateErrors maps a binding error onto an error code and per-field
// details. Validation failures become VALIDATION_ERROR; anything the JSON
// decoder rejected becomes INVALID_PAYLOAD.
func TranslateErrors(err error) (response.ErrCode, []response.FieldError) {
	var ve govalidator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make([]response.FieldError, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, response.FieldError{
				Field:   fe.Field(),
				Code:    fe.Tag(),
				Message: fe.Translate(trans),
			})
		}
		return response.ErrValidation, fields
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return response.ErrInvalidPayload, []response.FieldError{{
			Field:   typeErr.Field,
			Code:    "type",
			Message: typeErr.Field + " must be of type " + typeErr.Type.String(),
		}}
	}

	if errors.Is(err, io.EOF) {
		return response.ErrInvalidPayload, []response.FieldError{{
			Field:   "body",
			Code:    "required",
			Message: "request body is required",
		}}
	}

	return response.ErrInvalidPayload, nil
}

// Bind binds and validates the JSON body into dst. On failure it writes the
// 400 response and returns false.
func Bind(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		code, fields := TranslateErrors(err)
		response.FailWithFields(c, http.StatusBadRequest, code, fields)
		return false
	}
	return true
}
