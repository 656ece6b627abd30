package screens

import (
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/career-bot/internal/domain/events"
	"github.com/maxaizer/career-bot/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"strings"
	"sync"
	"testing"
	"time"
)

func Test_Chat_WhenMounted_ShouldStartWithGreeting(t *testing.T) {

	assert := assert.New(t)
	chat := NewChat(Owner{UserID: 1, ChatID: 1}, &stubResponder{}, EventBus.New(), testOptions(time.Hour))
	defer chat.Close()

	messages := chat.Messages()
	assert.Len(messages, 1)
	assert.Equal(Greeting, messages[0].Text)
	assert.Equal(models.SenderBot, messages[0].Sender)
	assert.Equal(ChatIdle, chat.State())
}

func Test_Chat_SubmitHi_ShouldAppendUserThenOneBotMessage(t *testing.T) {

	assert := assert.New(t)
	responder := &stubResponder{}
	chat := NewChat(Owner{UserID: 1, ChatID: 1}, responder, EventBus.New(), testOptions(20*time.Millisecond))
	defer chat.Close()

	assert.True(chat.Submit("Hi"))

	messages := chat.Messages()
	assert.Len(messages, 2)
	assert.Equal("Hi", messages[1].Text)
	assert.Equal(models.SenderUser, messages[1].Sender)
	assert.Equal(ChatPending, chat.State())

	assert.Eventually(func() bool { return len(chat.Messages()) == 3 }, time.Second, 5*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	messages = chat.Messages()
	assert.Len(messages, 3)
	assert.Equal(testReply, messages[2].Text)
	assert.True(messages[2].IsBot())
	assert.Equal(ChatIdle, chat.State())
	assert.Equal(1, responder.calls())
}

func Test_Chat_Submit_WhenBlank_ShouldBeIgnored(t *testing.T) {

	assert := assert.New(t)
	chat := NewChat(Owner{}, &stubResponder{}, EventBus.New(), testOptions(time.Hour))
	defer chat.Close()

	assert.False(chat.Submit(""))
	assert.False(chat.Submit("   \n\t"))
	assert.Len(chat.Messages(), 1)
	assert.Equal(ChatIdle, chat.State())
}

func Test_Chat_Submit_ShouldTrimAndTruncate(t *testing.T) {

	assert := assert.New(t)
	chat := NewChat(Owner{}, &stubResponder{}, EventBus.New(), testOptions(time.Hour))
	defer chat.Close()

	assert.True(chat.Submit("  hello  "))
	assert.True(chat.Submit(strings.Repeat("я", MaxChatInputLength+20)))

	messages := chat.Messages()
	assert.Equal("hello", messages[1].Text)
	assert.Equal(MaxChatInputLength, len([]rune(messages[2].Text)))
}

func Test_Chat_WhenClosedBeforeDelay_ShouldNotReply(t *testing.T) {

	assert := assert.New(t)
	responder := &stubResponder{}
	bus := EventBus.New()
	published := 0
	assert.NoError(bus.Subscribe(events.ChatRepliedTopic, func(events.ChatReplied) { published++ }))

	chat := NewChat(Owner{}, responder, bus, testOptions(30*time.Millisecond))
	assert.True(chat.Submit("Hi"))
	chat.Close()

	time.Sleep(100 * time.Millisecond)
	assert.Len(chat.Messages(), 2)
	assert.Equal(0, responder.calls())
	assert.Equal(0, published)
	assert.Equal(0, chat.PendingReplies())
	assert.False(chat.Submit("again"))
}

func Test_Chat_ConcurrentSubmissions_ShouldEachGetReply(t *testing.T) {

	assert := assert.New(t)
	chat := NewChat(Owner{}, &stubResponder{}, EventBus.New(), testOptions(20*time.Millisecond))
	defer chat.Close()

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			chat.Submit("question")
		}()
	}
	wg.Wait()

	assert.Equal(5, chat.PendingReplies())
	assert.Eventually(func() bool { return len(chat.Messages()) == 11 }, time.Second, 5*time.Millisecond)
	assert.Equal(ChatIdle, chat.State())

	bots := 0
	for _, message := range chat.Messages() {
		if message.IsBot() {
			bots++
		}
	}
	assert.Equal(6, bots)
}

func Test_Chat_Timestamps_ShouldBeStrictlyIncreasing(t *testing.T) {

	assert := assert.New(t)
	options := testOptions(time.Hour)
	options.Now = frozenClock()
	chat := NewChat(Owner{}, &stubResponder{}, EventBus.New(), options)
	defer chat.Close()

	chat.Submit("a")
	chat.Submit("b")

	messages := chat.Messages()
	for i := 1; i < len(messages); i++ {
		assert.True(messages[i].Timestamp.After(messages[i-1].Timestamp))
	}
}

func Test_Chat_Reply_ShouldPublishEventForOwner(t *testing.T) {

	assert := assert.New(t)
	bus := EventBus.New()
	received := make(chan events.ChatReplied, 1)
	assert.NoError(bus.Subscribe(events.ChatRepliedTopic, func(e events.ChatReplied) { received <- e }))

	chat := NewChat(Owner{UserID: 7, ChatID: 8}, &stubResponder{}, bus, testOptions(10*time.Millisecond))
	defer chat.Close()
	chat.Submit("Hi")

	select {
	case event := <-received:
		assert.Equal(int64(7), event.UserID)
		assert.Equal(int64(8), event.ChatID)
		assert.Equal(testReply, event.Message.Text)
	case <-time.After(time.Second):
		t.Fatal("reply was not published")
	}
}

func Test_Chat_WhenResponderFails_ShouldReturnToIdleWithoutMessage(t *testing.T) {

	assert := assert.New(t)
	chat := NewChat(Owner{}, &stubResponder{err: errCatalog}, EventBus.New(), testOptions(10*time.Millisecond))
	defer chat.Close()

	chat.Submit("Hi")
	assert.Eventually(func() bool { return chat.State() == ChatIdle }, time.Second, 5*time.Millisecond)
	assert.Len(chat.Messages(), 2)
}
