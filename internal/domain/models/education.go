package models

const (
	FieldSchool = "school"
	FieldDegree = "degree"
	FieldYear   = "year"
)

var EducationFields = []string{FieldSchool, FieldDegree, FieldYear}

type EducationEntry struct {
	ID     string
	School string
	Degree string
	Year   string
}

func (e EducationEntry) GetID() string {
	return e.ID
}

func (e EducationEntry) WithID(id string) EducationEntry {
	e.ID = id
	return e
}

func (e EducationEntry) WithField(field, value string) (EducationEntry, error) {
	switch field {
	case FieldSchool:
		e.School = value
	case FieldDegree:
		e.Degree = value
	case FieldYear:
		e.Year = value
	default:
		return e, unknownField("education", field)
	}
	return e, nil
}
