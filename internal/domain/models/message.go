package models

import "time"

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

type ChatMessage struct {
	ID        string
	Text      string
	Sender    Sender
	Timestamp time.Time
}

func (m ChatMessage) IsBot() bool {
	return m.Sender == SenderBot
}
