package bot

import (
	"fmt"
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maxaizer/career-bot/internal/domain/models"
	"github.com/maxaizer/career-bot/internal/screens"
	"strings"
)

const communityHelp = "Community commands:\n" +
	"like <n> - like or unlike post n\n" +
	"tab <trending|latest|following>\n" +
	"search <text>"

type communityView struct {
	chatID    int64
	community *screens.Community
}

func newCommunityView(chatID int64, community *screens.Community) *communityView {
	return &communityView{chatID: chatID, community: community}
}

func (v *communityView) Render() botApi.MessageConfig {
	msg := textMessage(v.chatID, renderCommunity(v.community.Posts(), v.community.Tab(), v.community.Query()))
	msg.ReplyMarkup = screenKeyboard("tab trending", "tab latest", "tab following", helpCommand)
	msg.DisableWebPagePreview = true
	return msg
}

func (v *communityView) HandleInput(input string) botApi.Chattable {
	parsed := parseInput(input)

	switch parsed.name {
	case "like":
		position, ok := parsed.position(0)
		if !ok {
			return textMessage(v.chatID, communityHelp)
		}
		post, found := v.community.Post(position)
		if !found {
			return textMessage(v.chatID, fmt.Sprintf("There is no post %d.", position))
		}
		v.community.ToggleLike(post.ID)
	case "tab":
		tab, err := screens.ToTab(strings.ToLower(parsed.rest(0)))
		if err != nil {
			return textMessage(v.chatID, communityHelp)
		}
		v.community.SetTab(tab)
	case "search":
		v.community.SetQuery(parsed.rest(0))
	default:
		return textMessage(v.chatID, communityHelp)
	}
	return nil
}

func renderCommunity(posts []models.Post, active screens.Tab, query string) string {
	var sb strings.Builder
	sb.WriteString("Community\n")

	var tabs []string
	for _, tab := range screens.Tabs() {
		if tab == active {
			tabs = append(tabs, "["+string(tab)+"]")
		} else {
			tabs = append(tabs, string(tab))
		}
	}
	sb.WriteString(strings.Join(tabs, " | ") + "\n")
	if query != "" {
		sb.WriteString(fmt.Sprintf("Search: %q\n", query))
	}

	for i, post := range posts {
		liked := ""
		if post.IsLiked {
			liked = " (liked)"
		}
		sb.WriteString(fmt.Sprintf("\n%d. %s, %s - %s\n%s\n", i+1, post.Author.Name, post.Author.Role,
			post.Timestamp, post.Content))
		if post.Image != nil {
			sb.WriteString(*post.Image + "\n")
		}
		sb.WriteString(fmt.Sprintf("Likes %d%s | Comments %d | Shares %d\n", post.Likes, liked,
			post.Comments, post.Shares))
	}
	return sb.String()
}
