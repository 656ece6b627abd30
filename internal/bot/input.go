package bot

import (
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"strconv"
	"strings"
	"unicode/utf16"
)

const helpCommand = "help"

// maxMessageLength is the Bot API limit on message text, counted in UTF-16 code units.
const maxMessageLength = 4096

const truncatedSuffix = "\n..."

// view renders one mounted screen and turns text input into operations on it.
type view interface {
	Render() botApi.MessageConfig
	// HandleInput applies input to the screen. A nil result means the screen should be
	// rendered again.
	HandleInput(input string) botApi.Chattable
}

type parsedInput struct {
	name string
	args []string
}

func parseInput(input string) parsedInput {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return parsedInput{}
	}
	return parsedInput{name: strings.ToLower(fields[0]), args: fields[1:]}
}

// rest joins the arguments starting at index i back into free text.
func (p parsedInput) rest(i int) string {
	if i >= len(p.args) {
		return ""
	}
	return strings.Join(p.args[i:], " ")
}

// position parses a 1-based list position.
func (p parsedInput) position(i int) (int, bool) {
	if i >= len(p.args) {
		return 0, false
	}
	n, err := strconv.Atoi(p.args[i])
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func textMessage(chatID int64, text string) botApi.MessageConfig {
	return botApi.NewMessage(chatID, fitMessage(text))
}

func messageLength(text string) int {
	length := 0
	for _, r := range text {
		length += len(utf16.Encode([]rune{r}))
	}
	return length
}

// fitMessage cuts text that Telegram would reject and marks the cut.
func fitMessage(text string) string {
	if messageLength(text) <= maxMessageLength {
		return text
	}

	limit := maxMessageLength - messageLength(truncatedSuffix)
	length := 0
	var sb strings.Builder
	for _, r := range text {
		n := len(utf16.Encode([]rune{r}))
		if length+n > limit {
			break
		}
		sb.WriteRune(r)
		length += n
	}
	sb.WriteString(truncatedSuffix)
	return sb.String()
}
