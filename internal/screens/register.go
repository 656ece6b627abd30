package screens

import (
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/maxaizer/career-bot/internal/domain/models"
	"github.com/maxaizer/career-bot/internal/metrics"
	"sync"
)

var formFieldNames = map[string]string{
	"Name":           models.FieldName,
	"Email":          models.FieldEmail,
	"Password":       models.FieldPassword,
	"Skills":         models.FieldSkills,
	"JobPreferences": models.FieldJobPreferences,
}

// Register holds the sign-up form. Submitting only validates it; no account is created.
type Register struct {
	mu       sync.Mutex
	form     models.RegistrationForm
	validate *validator.Validate
}

func NewRegister() *Register {
	return &Register{validate: validator.New()}
}

func (r *Register) Route() Route {
	return RouteRegister
}

func (r *Register) Close() {}

func (r *Register) Form() models.RegistrationForm {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.form
}

func (r *Register) UpdateField(field, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	form, err := r.form.WithField(field, value)
	if err != nil {
		return err
	}
	r.form = form
	return nil
}

// Submit validates the form and returns a message per invalid field.
func (r *Register) Submit() (map[string]string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	metrics.ScreenOperationsCounter.WithLabelValues(string(RouteRegister), "submit").Inc()

	err := r.validate.Struct(r.form)
	if err == nil {
		return nil, true
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"form": err.Error()}, false
	}

	problems := make(map[string]string, len(validationErrors))
	for _, fieldErr := range validationErrors {
		field, known := formFieldNames[fieldErr.Field()]
		if !known {
			field = fieldErr.Field()
		}
		problems[field] = describe(fieldErr)
	}
	return problems, false
}

func describe(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fieldErr.Param())
	default:
		return fmt.Sprintf("failed %q check", fieldErr.Tag())
	}
}
