package models

type SkillLevel string

const (
	Beginner     SkillLevel = "Beginner"
	Intermediate SkillLevel = "Intermediate"
	Advanced     SkillLevel = "Advanced"
	Expert       SkillLevel = "Expert"
)

func SkillLevels() []SkillLevel {
	return []SkillLevel{Beginner, Intermediate, Advanced, Expert}
}

func ToSkillLevel(s string) (SkillLevel, error) {
	switch s {
	case string(Beginner):
		return Beginner, nil
	case string(Intermediate):
		return Intermediate, nil
	case string(Advanced):
		return Advanced, nil
	case string(Expert):
		return Expert, nil
	default:
		return "", invalidValue("skill level", s)
	}
}

const (
	FieldName  = "name"
	FieldLevel = "level"
)

var SkillFields = []string{FieldName, FieldLevel}

type SkillEntry struct {
	ID    string
	Name  string
	Level SkillLevel
}

// NewSkill returns a blank skill; new skills always start as Beginner.
func NewSkill() SkillEntry {
	return SkillEntry{Level: Beginner}
}

func (s SkillEntry) GetID() string {
	return s.ID
}

func (s SkillEntry) WithID(id string) SkillEntry {
	s.ID = id
	return s
}

func (s SkillEntry) WithField(field, value string) (SkillEntry, error) {
	switch field {
	case FieldName:
		s.Name = value
	case FieldLevel:
		level, err := ToSkillLevel(value)
		if err != nil {
			return s, err
		}
		s.Level = level
	default:
		return s, unknownField("skill", field)
	}
	return s, nil
}
