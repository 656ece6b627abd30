package models

const (
	FieldPassword       = "password"
	FieldSkills         = "skills"
	FieldJobPreferences = "jobPreferences"
)

var RegistrationFields = []string{FieldName, FieldEmail, FieldPassword, FieldSkills, FieldJobPreferences}

type RegistrationForm struct {
	Name           string `validate:"required"`
	Email          string `validate:"required,email"`
	Password       string `validate:"required,min=8"`
	Skills         string
	JobPreferences string
}

func (f RegistrationForm) WithField(field, value string) (RegistrationForm, error) {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldPassword:
		f.Password = value
	case FieldSkills:
		f.Skills = value
	case FieldJobPreferences:
		f.JobPreferences = value
	default:
		return f, unknownField("registration form", field)
	}
	return f, nil
}
