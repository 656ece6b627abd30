package app

import (
	"context"
	"github.com/maxaizer/career-bot/internal/config"
	"github.com/maxaizer/career-bot/internal/domain/events"
	"github.com/maxaizer/career-bot/internal/screens"
	"github.com/maxaizer/career-bot/internal/services"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"os"
	"testing"
	"time"
)

const testDatabase = "testcatalog.db"

var testApp *App

func upEnvironment() {

	cfg := &config.Config{
		DB:      config.DBConfig{ConnectionString: testDatabase},
		Session: config.SessionConfig{IdleTimeout: time.Minute, SweepInterval: time.Minute},
		Chat:    config.ChatConfig{ReplyDelay: 10 * time.Millisecond},
		Jobs:    config.JobsConfig{RefreshDelay: 10 * time.Millisecond, ApplyFilters: true},
	}

	var err error
	testApp, err = New(cfg)
	if err != nil {
		log.Fatalf("could not create app: %s", err)
	}
}

func downEnvironment() {
	testApp.Close()
	_ = os.Remove(testDatabase)
}

func TestMain(m *testing.M) {

	upEnvironment()

	code := m.Run()

	downEnvironment()

	os.Exit(code)
}

func Test_App_JobsScreen_ShouldStartFromSeedCatalog(t *testing.T) {

	assert := assert.New(t)
	owner := screens.Owner{UserID: 1, ChatID: 1}

	screen, err := testApp.Sessions.Navigate(context.Background(), owner, screens.RouteJobs)
	assert.NoError(err)

	jobs := screen.(*screens.Jobs)
	assert.Len(jobs.Visible(), 3)

	assert.NoError(jobs.ToggleFilter("type", "Internship"))
	visible := jobs.Visible()
	assert.Len(visible, 1)
	assert.Equal("Product Design Intern", visible[0].Title)

	testApp.Sessions.End(owner.UserID)
}

func Test_App_ChatScreen_ShouldReplyWithScriptedText(t *testing.T) {

	assert := assert.New(t)
	owner := screens.Owner{UserID: 2, ChatID: 2}

	replies := make(chan events.ChatReplied, 1)
	handler := func(e events.ChatReplied) { replies <- e }
	assert.NoError(testApp.Bus.Subscribe(events.ChatRepliedTopic, handler))
	defer func() { _ = testApp.Bus.Unsubscribe(events.ChatRepliedTopic, handler) }()

	screen, err := testApp.Sessions.Navigate(context.Background(), owner, screens.RouteChat)
	assert.NoError(err)
	assert.True(screen.(*screens.Chat).Submit("Hi"))

	select {
	case reply := <-replies:
		assert.Equal(services.DefaultReply, reply.Message.Text)
		assert.Len(screen.(*screens.Chat).Messages(), 3)
	case <-time.After(time.Second):
		t.Fatal("no reply")
	}

	testApp.Sessions.End(owner.UserID)
}

func Test_App_Navigation_ShouldNotRetainState(t *testing.T) {

	assert := assert.New(t)
	owner := screens.Owner{UserID: 3, ChatID: 3}

	screen, err := testApp.Sessions.Navigate(context.Background(), owner, screens.RouteCommunity)
	assert.NoError(err)
	community := screen.(*screens.Community)
	post, _ := community.Post(1)
	community.ToggleLike(post.ID)

	_, err = testApp.Sessions.Navigate(context.Background(), owner, screens.RouteAlerts)
	assert.NoError(err)
	screen, err = testApp.Sessions.Navigate(context.Background(), owner, screens.RouteCommunity)
	assert.NoError(err)

	post, _ = screen.(*screens.Community).Post(1)
	assert.Equal(234, post.Likes)
	assert.False(post.IsLiked)

	testApp.Sessions.End(owner.UserID)
}
