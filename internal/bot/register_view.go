package bot

import (
	"fmt"
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maxaizer/career-bot/internal/domain/models"
	"github.com/maxaizer/career-bot/internal/screens"
	"github.com/samber/lo"
	"sort"
	"strings"
)

var registerCommands = map[string]string{
	"name":        models.FieldName,
	"email":       models.FieldEmail,
	"password":    models.FieldPassword,
	"skills":      models.FieldSkills,
	"preferences": models.FieldJobPreferences,
}

var registerHelp = func() string {
	var sb strings.Builder
	sb.WriteString("Registration commands:\n")
	for _, field := range models.RegistrationFields {
		command, _ := lo.FindKey(registerCommands, field)
		sb.WriteString(command + " <value>\n")
	}
	sb.WriteString("submit - check the form")
	return sb.String()
}()

type registerView struct {
	chatID   int64
	register *screens.Register
}

func newRegisterView(chatID int64, register *screens.Register) *registerView {
	return &registerView{chatID: chatID, register: register}
}

func (v *registerView) Render() botApi.MessageConfig {
	msg := textMessage(v.chatID, renderRegister(v.register.Form()))
	msg.ReplyMarkup = screenKeyboard("submit", helpCommand)
	return msg
}

func (v *registerView) HandleInput(input string) botApi.Chattable {
	parsed := parseInput(input)

	if parsed.name == "submit" {
		problems, ok := v.register.Submit()
		if ok {
			return textMessage(v.chatID, "The form is complete. Accounts are not created yet.")
		}
		return textMessage(v.chatID, renderProblems(problems))
	}

	field, known := registerCommands[parsed.name]
	if !known {
		return textMessage(v.chatID, registerHelp)
	}
	if err := v.register.UpdateField(field, parsed.rest(0)); err != nil {
		return textMessage(v.chatID, registerHelp)
	}
	return nil
}

func renderRegister(form models.RegistrationForm) string {
	password := ""
	if form.Password != "" {
		password = strings.Repeat("*", len([]rune(form.Password)))
	}
	return fmt.Sprintf("Create account\n\nname: %s\nemail: %s\npassword: %s\nskills: %s\npreferences: %s",
		orDash(form.Name), orDash(form.Email), orDash(password), orDash(form.Skills), orDash(form.JobPreferences))
}

func renderProblems(problems map[string]string) string {
	fields := lo.Keys(problems)
	sort.Strings(fields)

	var sb strings.Builder
	sb.WriteString("Please fix the form:")
	for _, field := range fields {
		sb.WriteString(fmt.Sprintf("\n%s %s", field, problems[field]))
	}
	return sb.String()
}
