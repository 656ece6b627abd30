package bot

import (
	"fmt"
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maxaizer/career-bot/internal/domain/models"
	"github.com/maxaizer/career-bot/internal/screens"
	"github.com/samber/lo"
	"strings"
)

const chatHistoryLimit = 10

type chatView struct {
	chatID int64
	chat   *screens.Chat
}

func newChatView(chatID int64, chat *screens.Chat) *chatView {
	return &chatView{chatID: chatID, chat: chat}
}

func (v *chatView) Render() botApi.MessageConfig {
	msg := textMessage(v.chatID, renderChat(v.chat.Messages(), v.chat.State()))
	msg.ReplyMarkup = screenKeyboard()
	return msg
}

// HandleInput sends everything the user types to the assistant.
func (v *chatView) HandleInput(input string) botApi.Chattable {
	if !v.chat.Submit(input) {
		return textMessage(v.chatID, "Type a message for the assistant.")
	}
	return nil
}

// renderChat shows at most chatHistoryLimit of the latest messages, fewer when they would
// not fit into one Telegram message.
func renderChat(messages []models.ChatMessage, state screens.ChatState) string {
	footer := ""
	if state == screens.ChatPending {
		footer = "\n\nAssistant is typing..."
	}

	lines := lo.Map(messages, func(message models.ChatMessage, _ int) string {
		author := "You"
		if message.IsBot() {
			author = "Assistant"
		}
		return fmt.Sprintf("\n[%s] %s: %s", message.Timestamp.Format("15:04"), author, message.Text)
	})

	shown := lines[max(0, len(lines)-chatHistoryLimit):]
	text := chatText(len(lines)-len(shown), shown, footer)
	for len(shown) > 1 && messageLength(text) > maxMessageLength {
		shown = shown[1:]
		text = chatText(len(lines)-len(shown), shown, footer)
	}
	return text
}

func chatText(hidden int, lines []string, footer string) string {
	var sb strings.Builder
	sb.WriteString("AI career assistant\n")
	if hidden > 0 {
		sb.WriteString(fmt.Sprintf("(%d earlier messages)\n", hidden))
	}
	for _, line := range lines {
		sb.WriteString(line)
	}
	sb.WriteString(footer)
	return sb.String()
}
