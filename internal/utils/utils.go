package utils

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/cylin-dev/guestbook/internal/errors"
)

// EntryValidator checks visitor-supplied guestbook fields. Length limits
// mirror the column sizes in migrations/init.sql.
type EntryValidator struct {
	validate *validator.Validate
}

func NewEntryValidator() *EntryValidator {
	return &EntryValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

type entryFields struct {
	Name    string `validate:"required,max=30"`
	Email   string `validate:"required,max=50"`
	Message string `validate:"required"`
	Icon    string `validate:"required,max=10"`
}

func (v *EntryValidator) Entry(name, email, message, icon string) error {
	fields := entryFields{Name: name, Email: email, Message: message, Icon: icon}
	if err := v.validate.Struct(fields); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			if fe.Tag() == "required" {
				return &errors.ErrorWithStatusCode{Message: fe.Field() + " is required", StatusCode: http.StatusBadRequest}
			}
			return &errors.ErrorWithStatusCode{Message: fe.Field() + " is too long", StatusCode: http.StatusBadRequest}
		}
		return &errors.ErrorWithStatusCode{Message: "Invalid fields", StatusCode: http.StatusBadRequest}
	}
	return nil
}

func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	if e, ok := err.(*errors.ErrorWithStatusCode); ok {
		http.Error(w, err.Error(), e.StatusCode)
		return
	}
	// default error is 500
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
