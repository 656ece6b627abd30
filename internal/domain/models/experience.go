package models

const (
	FieldCompany     = "company"
	FieldPosition    = "position"
	FieldDuration    = "duration"
	FieldDescription = "description"
)

var ExperienceFields = []string{FieldCompany, FieldPosition, FieldDuration, FieldDescription}

type ExperienceEntry struct {
	ID          string
	Company     string
	Position    string
	Duration    string
	Description string
}

func (e ExperienceEntry) GetID() string {
	return e.ID
}

func (e ExperienceEntry) WithID(id string) ExperienceEntry {
	e.ID = id
	return e
}

func (e ExperienceEntry) WithField(field, value string) (ExperienceEntry, error) {
	switch field {
	case FieldCompany:
		e.Company = value
	case FieldPosition:
		e.Position = value
	case FieldDuration:
		e.Duration = value
	case FieldDescription:
		e.Description = value
	default:
		return e, unknownField("experience", field)
	}
	return e, nil
}
