package bot

import (
	"context"
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maxaizer/career-bot/internal/logger"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type apiInterface interface {
	Send(chattable botApi.Chattable) (botApi.Message, error)
}

// limitedSender keeps outgoing traffic under the Bot API's flood limits.
type limitedSender struct {
	api     apiInterface
	limiter *rate.Limiter
}

func newLimitedSender(api apiInterface, messagesPerSecond float64) *limitedSender {
	return &limitedSender{api: api, limiter: rate.NewLimiter(rate.Limit(messagesPerSecond), 1)}
}

func (s *limitedSender) Send(ctx context.Context, chattable botApi.Chattable) (botApi.Message, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return botApi.Message{}, err
	}
	return sendWithLogError(s.api, chattable)
}

func sendWithLogError(api apiInterface, chattable botApi.Chattable) (botApi.Message, error) {
	msg, err := api.Send(chattable)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeTgApi).
			Errorf("error occurred while sending message: %v", err)
	}
	return msg, err
}
