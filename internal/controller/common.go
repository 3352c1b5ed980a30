package controller

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"protender-api/internal/entity"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo"
)

// deadlineLayouts are tried in order when reading a deadline.
var deadlineLayouts = []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}

// listInput keeps page and limit as text so that malformed values fall back
// to the defaults instead of failing the bind.
type listInput struct {
	Page   string `query:"page"`
	Limit  string `query:"limit"`
	Search string `query:"search"`
}

func (i listInput) pagination() *entity.PaginationInput {
	page, _ := strconv.Atoi(i.Page)
	limit, _ := strconv.Atoi(i.Limit)

	return entity.NewPaginationInput(page, limit)
}

type messageResponse struct {
	Message string `json:"message"`
}

// invalidParamError reports a path parameter that is not a uuid.
type invalidParamError struct {
	name string
}

func (e *invalidParamError) Error() string {
	return fmt.Sprintf("'%s': should be a valid uuid", e.name)
}

func parseIdParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, &invalidParamError{name}
	}

	return id, nil
}

func parseDeadline(value string) (time.Time, error) {
	var err error
	for _, layout := range deadlineLayouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, err
}

func newValidator(now func() time.Time) *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})
	_ = validate.RegisterValidation("future", func(fl validator.FieldLevel) bool {
		deadline, err := parseDeadline(fl.Field().String())
		if err != nil {
			return false
		}

		return deadline.After(now())
	})

	return validate
}

func getAllErrorMessages(err validator.ValidationErrors) []string {
	messages := make([]string, 0, len(err))
	for _, fe := range err {
		messages = append(messages, fmt.Sprintf("'%s': %s", fe.Field(), getMessage(fe)))
	}

	return messages
}

func getMessage(fe validator.FieldError) string {
	switch fe.Kind() {
	case reflect.String:
		return getMessageForString(fe)
	case reflect.Int, reflect.Int32, reflect.Int64, reflect.Float32, reflect.Float64:
		return getMessageForNumber(fe)
	}

	return "incorrect value passed"
}

func getMessageForNumber(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "lte", "max":
		return "should be less or equal than " + fe.Param()
	case "gte", "min":
		return "should be greater or equal than " + fe.Param()
	}

	return "incorrect value passed"
}

func getMessageForString(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "lte", "max":
		return "length should be less or equal than " + fe.Param()
	case "gte", "min":
		return "length should be greater or equal than " + fe.Param()
	case "oneof":
		return "should have value in: " + fe.Param()
	case "email":
		return "should be a valid email"
	case "uuid":
		return "should be a valid uuid"
	case "future":
		return "should be a date in the future"
	}

	return "incorrect value passed"
}

func bindAndValidate(c echo.Context, validate *validator.Validate, input interface{}) error {
	if err := c.Bind(input); err != nil {
		return err
	}

	return validate.Struct(input)
}
