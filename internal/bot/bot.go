package bot

import (
	"context"
	"errors"
	"fmt"
	"github.com/asaskevich/EventBus"
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maxaizer/career-bot/internal/domain/events"
	"github.com/maxaizer/career-bot/internal/logger"
	"github.com/maxaizer/career-bot/internal/screens"
	log "github.com/sirupsen/logrus"
)

type sessionManager interface {
	Navigate(ctx context.Context, owner screens.Owner, route screens.Route) (screens.Screen, error)
	Current(userID int64) (screens.Screen, bool)
	End(userID int64)
}

type Bot struct {
	client   *botApi.BotAPI
	sender   *limitedSender
	bus      EventBus.Bus
	sessions sessionManager
	ctx      context.Context
	cancel   context.CancelFunc
}

const welcomeText = "Welcome to your career assistant! Pick a section below."

func NewBot(token string, bus EventBus.Bus, sessions sessionManager, messagesPerSecond float64) (*Bot, error) {

	client, err := botApi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	log.Infof("Authorized on account %s", client.Self.UserName)

	err = botApi.SetLogger(log.StandardLogger())
	if err != nil {
		return nil, err
	}

	b, err := newBot(client, bus, sessions, messagesPerSecond)
	if err != nil {
		return nil, err
	}
	b.client = client
	return b, nil
}

func newBot(api apiInterface, bus EventBus.Bus, sessions sessionManager, messagesPerSecond float64) (*Bot, error) {

	if bus == nil {
		return nil, errors.New("bus is nil")
	}

	if sessions == nil {
		return nil, errors.New("session manager is nil")
	}

	if messagesPerSecond <= 0 {
		return nil, errors.New("messages per second must be greater than zero")
	}

	ctx, cancel := context.WithCancel(context.Background())
	b := &Bot{
		sender:   newLimitedSender(api, messagesPerSecond),
		bus:      bus,
		sessions: sessions,
		ctx:      ctx,
		cancel:   cancel,
	}

	subscriptions := map[string]interface{}{
		events.ChatRepliedTopic:     b.onChatReplied,
		events.JobsRefreshedTopic:   b.onJobsRefreshed,
		events.ScreenUnmountedTopic: b.onScreenUnmounted,
	}
	for topic, handler := range subscriptions {
		if err := bus.SubscribeAsync(topic, handler, false); err != nil {
			cancel()
			return nil, fmt.Errorf("subscribe to %s: %w", topic, err)
		}
	}
	return b, nil
}

func (b *Bot) Run() {

	updateConfig := botApi.NewUpdate(0)
	updateConfig.Timeout = 60

	updates := b.client.GetUpdatesChan(updateConfig)

	for update := range updates {

		if update.Message == nil || update.Message.From == nil {
			continue
		}

		if update.Message.Chat.IsGroup() || update.Message.Chat.IsSuperGroup() {
			continue
		}

		go b.handleMessage(update.Message.From.ID, update.Message.Chat.ID, update.Message.Text)
	}
}

func (b *Bot) Stop() {
	if b.client != nil {
		b.client.StopReceivingUpdates()
	}
	b.cancel()
	b.bus.WaitAsync()
}

func (b *Bot) handleMessage(userID, chatID int64, text string) {

	owner := screens.Owner{UserID: userID, ChatID: chatID}

	switch {
	case text == "/start" || text == backToMenuButton:
		b.sessions.End(userID)
		msg := textMessage(chatID, welcomeText)
		msg.ReplyMarkup = mainMenuKeyboard()
		b.send(msg)
		return
	case routeButtons[text] != "":
		b.navigate(owner, routeButtons[text])
		return
	}

	screen, found := b.sessions.Current(userID)
	if !found {
		msg := textMessage(chatID, "Pick a section from the menu first.")
		msg.ReplyMarkup = mainMenuKeyboard()
		b.send(msg)
		return
	}

	v := viewFor(chatID, screen)
	if response := v.HandleInput(text); response != nil {
		b.send(response)
		return
	}
	b.send(v.Render())
}

func (b *Bot) navigate(owner screens.Owner, route screens.Route) {
	screen, err := b.sessions.Navigate(b.ctx, owner, route)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeSession).
			Errorf("failed to open %s for user %d: %v", route, owner.UserID, err)
		b.send(textMessage(owner.ChatID, "Internal error!"))
		return
	}
	b.send(viewFor(owner.ChatID, screen).Render())
}

func (b *Bot) onChatReplied(event events.ChatReplied) {
	msg := textMessage(event.ChatID, event.Message.Text)
	b.send(msg)
}

func (b *Bot) onJobsRefreshed(event events.JobsRefreshed) {
	screen, found := b.sessions.Current(event.UserID)
	if !found || screen.Route() != screens.RouteJobs {
		return
	}
	b.send(viewFor(event.ChatID, screen).Render())
}

func (b *Bot) onScreenUnmounted(event events.ScreenUnmounted) {
	if event.Reason != events.UnmountExpired {
		return
	}
	msg := textMessage(event.ChatID, "Your session timed out. Pick a section to continue.")
	msg.ReplyMarkup = mainMenuKeyboard()
	b.send(msg)
}

func (b *Bot) send(chattable botApi.Chattable) {
	if _, err := b.sender.Send(b.ctx, chattable); err != nil && !errors.Is(err, context.Canceled) {
		log.Debugf("message not delivered: %v", err)
	}
}

func viewFor(chatID int64, screen screens.Screen) view {
	switch s := screen.(type) {
	case *screens.Jobs:
		return newJobsView(chatID, s)
	case *screens.Resume:
		return newResumeView(chatID, s)
	case *screens.Chat:
		return newChatView(chatID, s)
	case *screens.Alerts:
		return newAlertsView(chatID, s)
	case *screens.Community:
		return newCommunityView(chatID, s)
	case *screens.Register:
		return newRegisterView(chatID, s)
	default:
		return unknownView{chatID: chatID}
	}
}

type unknownView struct {
	chatID int64
}

func (v unknownView) Render() botApi.MessageConfig {
	msg := textMessage(v.chatID, "This section is not available.")
	msg.ReplyMarkup = mainMenuKeyboard()
	return msg
}

func (v unknownView) HandleInput(_ string) botApi.Chattable {
	return nil
}
