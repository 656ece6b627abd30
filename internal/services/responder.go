package services

import (
	"context"
	log "github.com/sirupsen/logrus"
)

const DefaultReply = "I'm processing your request. As an AI assistant, I'm here to help with your " +
	"career-related questions."

// ScriptedResponder answers every chat message with the same canned text.
type ScriptedResponder struct {
	reply string
}

func NewScriptedResponder(reply string) *ScriptedResponder {
	if reply == "" {
		reply = DefaultReply
	}
	return &ScriptedResponder{reply: reply}
}

func (r *ScriptedResponder) Respond(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	log.Debugf("scripted reply to %d-rune message", len([]rune(text)))
	return r.reply, nil
}
