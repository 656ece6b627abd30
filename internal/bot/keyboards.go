package bot

import (
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maxaizer/career-bot/internal/screens"
)

const backToMenuButton = "Menu"

var routeButtons = map[string]screens.Route{
	"Jobs":      screens.RouteJobs,
	"Resume":    screens.RouteResume,
	"Assistant": screens.RouteChat,
	"Alerts":    screens.RouteAlerts,
	"Community": screens.RouteCommunity,
	"Register":  screens.RouteRegister,
}

func mainMenuKeyboard() botApi.ReplyKeyboardMarkup {
	return botApi.NewReplyKeyboard(
		botApi.NewKeyboardButtonRow(
			botApi.NewKeyboardButton("Jobs"),
			botApi.NewKeyboardButton("Resume"),
			botApi.NewKeyboardButton("Assistant"),
		),
		botApi.NewKeyboardButtonRow(
			botApi.NewKeyboardButton("Alerts"),
			botApi.NewKeyboardButton("Community"),
			botApi.NewKeyboardButton("Register"),
		),
	)
}

// screenKeyboard lays out the given shortcuts two per row followed by the menu button.
func screenKeyboard(shortcuts ...string) botApi.ReplyKeyboardMarkup {
	var rows [][]botApi.KeyboardButton
	for i := 0; i < len(shortcuts); i += 2 {
		row := botApi.NewKeyboardButtonRow(botApi.NewKeyboardButton(shortcuts[i]))
		if i+1 < len(shortcuts) {
			row = append(row, botApi.NewKeyboardButton(shortcuts[i+1]))
		}
		rows = append(rows, row)
	}
	rows = append(rows, botApi.NewKeyboardButtonRow(botApi.NewKeyboardButton(backToMenuButton)))
	return botApi.NewReplyKeyboard(rows...)
}
