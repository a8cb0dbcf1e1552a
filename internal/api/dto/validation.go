package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/spec-kit/edudigital/internal/domain"
	apperrors "github.com/spec-kit/edudigital/pkg/util"
)

var (
	validate   *validator.Validate
	translator ut.Translator

	notBlankTag = "notblank"
	roleTag     = "role"
	levelTag    = "course_level"
)

func init() {
	validate = validator.New()

	english := en.New()
	uni := ut.New(english, english)
	translator, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// errors carry JSON field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation(notBlankTag, notBlank)
	_ = validate.RegisterValidation(roleTag, validRole)
	_ = validate.RegisterValidation(levelTag, validLevel)

	noop := func(ut.Translator) error { return nil }
	for _, tag := range []string{notBlankTag, roleTag, levelTag} {
		_ = validate.RegisterTranslation(tag, translator, noop, translateCustom)
	}
}

// Validate checks v against its struct tags and returns a 400 domain error
// listing the offending JSON fields.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	details := make(map[string]any, len(fieldErrs))
	for _, fe := range fieldErrs {
		details[fe.Field()] = fe.Translate(translator)
	}
	return apperrors.NewValidationError("validation failed", details)
}

func translateCustom(_ ut.Translator, fe validator.FieldError) string {
	switch fe.Tag() {
	case notBlankTag:
		return fe.Field() + " cannot be blank"
	case roleTag:
		return fe.Field() + " must be one of student, teacher, admin"
	case levelTag:
		return fe.Field() + " must be one of beginner, intermediate, advanced"
	default:
		return fe.Error()
	}
}

func notBlank(fl validator.FieldLevel) bool {
	if str, ok := fl.Field().Interface().(string); ok {
		return strings.TrimSpace(str) != ""
	}
	return false
}

func validRole(fl validator.FieldLevel) bool {
	_, err := domain.ParseRole(fl.Field().String())
	return err == nil
}

func validLevel(fl validator.FieldLevel) bool {
	switch domain.CourseLevel(fl.Field().String()) {
	case domain.LevelBeginner, domain.LevelIntermediate, domain.LevelAdvanced:
		return true
	}
	return false
}
