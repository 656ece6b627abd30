package bot

import (
	"fmt"
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maxaizer/career-bot/internal/domain/models"
	"github.com/maxaizer/career-bot/internal/screens"
	"github.com/pkg/errors"
	"strings"
)

var resumeHelp = "Resume commands:\n" +
	"section <personal|education|experience|skills>\n" +
	"add [section] - add an entry\n" +
	"edit <field> <value> - personal info: " + strings.Join(models.PersonalInfoFields, ", ") + "\n" +
	"edit <n> <field> <value> - entry n of the current section\n" +
	"  education: " + strings.Join(models.EducationFields, ", ") + "\n" +
	"  experience: " + strings.Join(models.ExperienceFields, ", ") + "\n" +
	"  skills: " + strings.Join(models.SkillFields, ", ") + "\n" +
	"delete <n>"

type resumeView struct {
	chatID int64
	resume *screens.Resume
}

func newResumeView(chatID int64, resume *screens.Resume) *resumeView {
	return &resumeView{chatID: chatID, resume: resume}
}

func (v *resumeView) Render() botApi.MessageConfig {
	msg := textMessage(v.chatID, renderResume(v.resume))
	msg.ReplyMarkup = screenKeyboard("section personal", "section education",
		"section experience", "section skills", "add", helpCommand)
	return msg
}

func (v *resumeView) HandleInput(input string) botApi.Chattable {
	parsed := parseInput(input)

	switch parsed.name {
	case "section":
		section, err := screens.ToSection(strings.ToLower(parsed.rest(0)))
		if err != nil {
			return textMessage(v.chatID, resumeHelp)
		}
		v.resume.SetSection(section)
	case "add":
		if len(parsed.args) > 0 {
			section, err := screens.ToSection(strings.ToLower(parsed.args[0]))
			if err != nil {
				return textMessage(v.chatID, resumeHelp)
			}
			v.resume.SetSection(section)
		}
		if !v.add() {
			return textMessage(v.chatID, "Personal info has no entries to add. Use: edit <field> <value>")
		}
	case "edit":
		if err := v.edit(parsed); err != nil {
			return textMessage(v.chatID, describeEditError(err))
		}
	case "delete":
		position, ok := parsed.position(0)
		if !ok {
			return textMessage(v.chatID, resumeHelp)
		}
		v.remove(position)
	default:
		return textMessage(v.chatID, resumeHelp)
	}
	return nil
}

var errBadEdit = errors.New("bad edit command")

func describeEditError(err error) string {
	switch {
	case errors.Is(err, models.ErrUnknownField):
		return "Unknown field: " + err.Error()
	case errors.Is(err, models.ErrInvalidValue):
		return "Invalid value: " + err.Error() + "\nLevels: " + levelsHint()
	default:
		return resumeHelp
	}
}

func levelsHint() string {
	var levels []string
	for _, level := range models.SkillLevels() {
		levels = append(levels, string(level))
	}
	return strings.Join(levels, ", ")
}

func (v *resumeView) add() bool {
	switch v.resume.Section() {
	case screens.SectionEducation:
		v.resume.AddEducation()
	case screens.SectionExperience:
		v.resume.AddExperience()
	case screens.SectionSkills:
		v.resume.AddSkill()
	default:
		return false
	}
	return true
}

func (v *resumeView) edit(parsed parsedInput) error {
	section := v.resume.Section()
	if section == screens.SectionPersonal {
		if len(parsed.args) < 1 {
			return errBadEdit
		}
		return v.resume.UpdatePersonalInfo(parsed.args[0], parsed.rest(1))
	}

	position, ok := parsed.position(0)
	if !ok || len(parsed.args) < 2 {
		return errBadEdit
	}
	field, value := parsed.args[1], parsed.rest(2)

	switch section {
	case screens.SectionEducation:
		if entry, found := v.resume.Education().At(position); found {
			return v.resume.UpdateEducation(entry.ID, field, value)
		}
	case screens.SectionExperience:
		if entry, found := v.resume.Experience().At(position); found {
			return v.resume.UpdateExperience(entry.ID, field, value)
		}
	case screens.SectionSkills:
		if entry, found := v.resume.Skills().At(position); found {
			return v.resume.UpdateSkill(entry.ID, field, value)
		}
	}
	return nil
}

func (v *resumeView) remove(position int) {
	switch v.resume.Section() {
	case screens.SectionEducation:
		if entry, found := v.resume.Education().At(position); found {
			v.resume.RemoveEducation(entry.ID)
		}
	case screens.SectionExperience:
		if entry, found := v.resume.Experience().At(position); found {
			v.resume.RemoveExperience(entry.ID)
		}
	case screens.SectionSkills:
		if entry, found := v.resume.Skills().At(position); found {
			v.resume.RemoveSkill(entry.ID)
		}
	}
}

func renderResume(resume *screens.Resume) string {
	var sb strings.Builder
	current := resume.Section()

	sb.WriteString("Resume builder\n")
	for _, section := range screens.Sections() {
		marker := " "
		if section == current {
			marker = ">"
		}
		sb.WriteString(fmt.Sprintf("%s %s\n", marker, section))
	}
	sb.WriteString("\n")

	switch current {
	case screens.SectionPersonal:
		info := resume.PersonalInfo()
		sb.WriteString(fmt.Sprintf("%s: %s\n%s: %s\n%s: %s\n%s: %s\n",
			models.FieldName, orDash(info.Name), models.FieldEmail, orDash(info.Email),
			models.FieldPhone, orDash(info.Phone), models.FieldSummary, orDash(info.Summary)))
	case screens.SectionEducation:
		writeEntries(&sb, resume.Education().All(), func(e models.EducationEntry) string {
			return fmt.Sprintf("%s: %s, %s: %s, %s: %s", models.FieldSchool, orDash(e.School),
				models.FieldDegree, orDash(e.Degree), models.FieldYear, orDash(e.Year))
		})
	case screens.SectionExperience:
		writeEntries(&sb, resume.Experience().All(), func(e models.ExperienceEntry) string {
			return fmt.Sprintf("%s: %s, %s: %s, %s: %s\n   %s: %s", models.FieldCompany, orDash(e.Company),
				models.FieldPosition, orDash(e.Position), models.FieldDuration, orDash(e.Duration),
				models.FieldDescription, orDash(e.Description))
		})
	case screens.SectionSkills:
		writeEntries(&sb, resume.Skills().All(), func(s models.SkillEntry) string {
			return fmt.Sprintf("%s: %s, %s: %s", models.FieldName, orDash(s.Name), models.FieldLevel, s.Level)
		})
	}
	return sb.String()
}

func writeEntries[T any](sb *strings.Builder, entries []T, format func(T) string) {
	if len(entries) == 0 {
		sb.WriteString("No entries yet. Send \"add\".")
		return
	}
	for i, entry := range entries {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, format(entry)))
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
