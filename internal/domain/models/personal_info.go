package models

const (
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldSummary = "summary"
)

var PersonalInfoFields = []string{FieldName, FieldEmail, FieldPhone, FieldSummary}

type PersonalInfo struct {
	Name    string
	Email   string
	Phone   string
	Summary string
}

func (p PersonalInfo) WithField(field, value string) (PersonalInfo, error) {
	switch field {
	case FieldName:
		p.Name = value
	case FieldEmail:
		p.Email = value
	case FieldPhone:
		p.Phone = value
	case FieldSummary:
		p.Summary = value
	default:
		return p, unknownField("personal info", field)
	}
	return p, nil
}
