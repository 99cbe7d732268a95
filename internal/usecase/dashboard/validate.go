package dashboard

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf16"

	pkgerrors "crud-dashboard/pkg/errors"

	"github.com/go-playground/validator/v10"
)

// ruleMessages maps "<Struct>.<Field>.<tag>" to the text shown to the operator.
var ruleMessages = map[string]string{
	"UserForm.Name.min":            "Name must be between 1 and 100 characters",
	"UserForm.Name.max":            "Name must be between 1 and 100 characters",
	"UserForm.Username.min":        "Username must be between 3 and 50 characters",
	"UserForm.Username.max":        "Username must be between 3 and 50 characters",
	"TaskForm.Title.required":      "Task title is required",
	"TaskForm.Status.oneof":        "Invalid task status",
	"MessageForm.Content.required": "Message content is required",
	"MessageForm.Content.utf16max": "Message cannot exceed 1000 characters",
	"MessageForm.UserID.gt":        "Please select a user",
}

// newValidator returns a validator with the dashboard's custom tags registered.
// utf16max bounds a string by UTF-16 code units, the unit the browser counter
// and the remote API use.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("utf16max", utf16Max)
	return v
}

func utf16Max(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(utf16.Encode([]rune(fl.Field().String()))) <= limit
}

// formatValidationError converts the first failed rule into a ValidationError.
func formatValidationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	e := validationErrors[0]
	msg, ok := ruleMessages[e.StructNamespace()+"."+e.Tag()]
	if !ok {
		msg = fmt.Sprintf("%s is invalid", e.Field())
	}
	return pkgerrors.NewValidationError(e.Field(), msg)
}
