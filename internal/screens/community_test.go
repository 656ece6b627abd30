package screens

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func Test_Community_ToggleLike_ShouldRoundTrip(t *testing.T) {

	assert := assert.New(t)
	community := NewCommunity(testPosts(), testOptions(time.Hour))

	community.ToggleLike("1")
	post, _ := community.Post(1)
	assert.Equal(11, post.Likes)
	assert.True(post.IsLiked)

	community.ToggleLike("1")
	post, _ = community.Post(1)
	assert.Equal(10, post.Likes)
	assert.False(post.IsLiked)
}

func Test_Community_ToggleLike_WhenNoLikesButLiked_ShouldNotGoNegative(t *testing.T) {

	assert := assert.New(t)
	community := NewCommunity(testPosts(), testOptions(time.Hour))

	community.ToggleLike("2")
	post, _ := community.Post(2)
	assert.Equal(0, post.Likes)
	assert.False(post.IsLiked)
}

func Test_Community_ToggleLike_WhenIDUnknown_ShouldChangeNothing(t *testing.T) {

	community := NewCommunity(testPosts(), testOptions(time.Hour))
	before := community.Posts()
	community.ToggleLike("404")
	assert.Equal(t, before, community.Posts())
}

func Test_Community_Tabs_ShouldBeTrackedOnly(t *testing.T) {

	assert := assert.New(t)
	community := NewCommunity(testPosts(), testOptions(time.Hour))
	assert.Equal(TabTrending, community.Tab())

	tab, err := ToTab("latest")
	assert.NoError(err)
	community.SetTab(tab)
	community.SetQuery("design")

	assert.Equal(TabLatest, community.Tab())
	assert.Equal("design", community.Query())
	assert.Len(community.Posts(), 2)

	_, err = ToTab("popular")
	assert.ErrorIs(err, ErrUnknownTab)
}
