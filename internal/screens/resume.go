package screens

import (
	"github.com/maxaizer/career-bot/internal/domain/models"
	"github.com/maxaizer/career-bot/internal/metrics"
	"github.com/maxaizer/career-bot/internal/state"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"sync"
)

type Section string

const (
	SectionPersonal   Section = "personal"
	SectionEducation  Section = "education"
	SectionExperience Section = "experience"
	SectionSkills     Section = "skills"
)

var ErrUnknownSection = errors.New("unknown resume section")

func Sections() []Section {
	return []Section{SectionPersonal, SectionEducation, SectionExperience, SectionSkills}
}

func ToSection(s string) (Section, error) {
	for _, section := range Sections() {
		if string(section) == s {
			return section, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownSection, "%q", s)
}

// Resume is the resume builder: personal info plus three record lists.
type Resume struct {
	mu         sync.Mutex
	section    Section
	personal   models.PersonalInfo
	education  state.Store[models.EducationEntry]
	experience state.Store[models.ExperienceEntry]
	skills     state.Store[models.SkillEntry]
}

func NewResume(options Options) *Resume {
	options.setDefaults()
	return &Resume{
		section:    SectionPersonal,
		education:  state.NewStore[models.EducationEntry](options.IDs),
		experience: state.NewStore[models.ExperienceEntry](options.IDs),
		skills:     state.NewStore[models.SkillEntry](options.IDs),
	}
}

func (r *Resume) Route() Route {
	return RouteResume
}

func (r *Resume) Close() {}

func (r *Resume) Section() Section {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.section
}

func (r *Resume) SetSection(section Section) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.section = section
}

func (r *Resume) PersonalInfo() models.PersonalInfo {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.personal
}

func (r *Resume) UpdatePersonalInfo(field, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	personal, err := r.personal.WithField(field, value)
	if err != nil {
		return err
	}
	r.personal = personal
	countOperation(SectionPersonal, "update")
	return nil
}

func (r *Resume) Education() state.Store[models.EducationEntry] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.education
}

func (r *Resume) AddEducation() models.EducationEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.education = r.education.Add(models.EducationEntry{})
	countOperation(SectionEducation, "add")
	return last(r.education)
}

func (r *Resume) UpdateEducation(id, field, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return update(&r.education, SectionEducation, id, field, value)
}

func (r *Resume) RemoveEducation(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	remove(&r.education, SectionEducation, id)
}

func (r *Resume) Experience() state.Store[models.ExperienceEntry] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.experience
}

func (r *Resume) AddExperience() models.ExperienceEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.experience = r.experience.Add(models.ExperienceEntry{})
	countOperation(SectionExperience, "add")
	return last(r.experience)
}

func (r *Resume) UpdateExperience(id, field, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return update(&r.experience, SectionExperience, id, field, value)
}

func (r *Resume) RemoveExperience(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	remove(&r.experience, SectionExperience, id)
}

func (r *Resume) Skills() state.Store[models.SkillEntry] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.skills
}

func (r *Resume) AddSkill() models.SkillEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.skills = r.skills.Add(models.NewSkill())
	countOperation(SectionSkills, "add")
	return last(r.skills)
}

func (r *Resume) UpdateSkill(id, field, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return update(&r.skills, SectionSkills, id, field, value)
}

func (r *Resume) RemoveSkill(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	remove(&r.skills, SectionSkills, id)
}

func update[T state.Record[T]](store *state.Store[T], section Section, id, field, value string) error {
	if _, found := store.Get(id); !found {
		log.Debugf("%s entry %s not found, update ignored", section, id)
		return nil
	}
	updated, err := store.Update(id, field, value)
	if err != nil {
		return err
	}
	*store = updated
	countOperation(section, "update")
	return nil
}

func remove[T state.Record[T]](store *state.Store[T], section Section, id string) {
	if _, found := store.Get(id); !found {
		log.Debugf("%s entry %s not found, remove ignored", section, id)
		return
	}
	*store = store.Remove(id)
	countOperation(section, "remove")
}

func last[T state.Record[T]](store state.Store[T]) T {
	record, _ := store.At(store.Len())
	return record
}

func countOperation(section Section, operation string) {
	metrics.ScreenOperationsCounter.WithLabelValues(string(RouteResume), string(section)+"_"+operation).Inc()
}
