package bot

import (
	"fmt"
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maxaizer/career-bot/internal/domain/models"
	"github.com/maxaizer/career-bot/internal/screens"
	"strings"
)

const alertsHelp = "Alerts commands:\n" +
	"channel <push|email|sms|whatsapp> - turn a channel on or off\n" +
	"preference <jobs|applications|messages|community> - turn a notification type on or off"

type alertsView struct {
	chatID int64
	alerts *screens.Alerts
}

func newAlertsView(chatID int64, alerts *screens.Alerts) *alertsView {
	return &alertsView{chatID: chatID, alerts: alerts}
}

func (v *alertsView) Render() botApi.MessageConfig {
	msg := textMessage(v.chatID, renderAlerts(v.alerts.Channels(), v.alerts.Preferences(),
		v.alerts.History(), v.alerts.UnreadCount()))
	msg.ReplyMarkup = screenKeyboard("channel push", "channel email", "channel sms",
		"channel whatsapp", helpCommand)
	return msg
}

func (v *alertsView) HandleInput(input string) botApi.Chattable {
	parsed := parseInput(input)
	if len(parsed.args) != 1 {
		return textMessage(v.chatID, alertsHelp)
	}

	switch parsed.name {
	case "channel":
		v.alerts.ToggleChannel(strings.ToLower(parsed.args[0]))
	case "preference":
		v.alerts.TogglePreference(strings.ToLower(parsed.args[0]))
	default:
		return textMessage(v.chatID, alertsHelp)
	}
	return nil
}

func renderAlerts(channels []models.NotificationChannel, preferences []models.NotificationPreference,
	history []models.NotificationHistoryItem, unread int) string {

	var sb strings.Builder
	sb.WriteString("Notification channels\n")
	for _, channel := range channels {
		sb.WriteString(fmt.Sprintf("%s %s (%s)\n", onOff(channel.Enabled), channel.Name, channel.ID))
	}

	sb.WriteString("\nPreferences\n")
	for _, preference := range preferences {
		sb.WriteString(fmt.Sprintf("%s %s (%s)\n   %s\n", onOff(preference.Enabled), preference.Title,
			preference.ID, preference.Description))
	}

	sb.WriteString(fmt.Sprintf("\nRecent notifications (%d unread)\n", unread))
	for _, item := range history {
		marker := " "
		if !item.Read {
			marker = "*"
		}
		sb.WriteString(fmt.Sprintf("%s %s - %s\n   %s\n", marker, item.Title, item.Timestamp, item.Description))
	}
	return sb.String()
}

func onOff(enabled bool) string {
	if enabled {
		return "[on]"
	}
	return "[off]"
}
