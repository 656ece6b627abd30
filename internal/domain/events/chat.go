package events

import "github.com/maxaizer/career-bot/internal/domain/models"

var (
	ChatRepliedTopic   = "ChatRepliedEvent"
	JobsRefreshedTopic = "JobsRefreshedEvent"
)

// ChatReplied is published when a scheduled assistant reply lands in a chat screen.
type ChatReplied struct {
	UserID  int64
	ChatID  int64
	Message models.ChatMessage
}

type JobsRefreshed struct {
	UserID int64
	ChatID int64
}
