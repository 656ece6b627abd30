package screens

import (
	"github.com/maxaizer/career-bot/internal/domain/models"
	"github.com/maxaizer/career-bot/internal/metrics"
	"github.com/maxaizer/career-bot/internal/state"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"sync"
)

type Tab string

const (
	TabTrending  Tab = "trending"
	TabLatest    Tab = "latest"
	TabFollowing Tab = "following"
)

var ErrUnknownTab = errors.New("unknown community tab")

func Tabs() []Tab {
	return []Tab{TabTrending, TabLatest, TabFollowing}
}

func ToTab(s string) (Tab, error) {
	for _, tab := range Tabs() {
		if string(tab) == s {
			return tab, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownTab, "%q", s)
}

// Community is the discussion feed. The active tab is tracked but every tab shows
// the same posts.
type Community struct {
	mu    sync.Mutex
	posts state.Store[models.Post]
	tab   Tab
	query string
}

func NewCommunity(posts []models.Post, options Options) *Community {
	options.setDefaults()
	return &Community{posts: state.NewStore(options.IDs, posts...), tab: TabTrending}
}

func (c *Community) Route() Route {
	return RouteCommunity
}

func (c *Community) Close() {}

func (c *Community) Posts() []models.Post {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.posts.All()
}

func (c *Community) Post(position int) (models.Post, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.posts.At(position)
}

// ToggleLike flips the like on a post; unknown ids are ignored.
func (c *Community) ToggleLike(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, found := c.posts.Get(id); !found {
		log.Debugf("post %s not found, like ignored", id)
		return
	}
	c.posts, _ = c.posts.Apply(id, func(p models.Post) (models.Post, error) {
		return p.ToggledLike(), nil
	})
	metrics.ScreenOperationsCounter.WithLabelValues(string(RouteCommunity), "toggle_like").Inc()
}

func (c *Community) Tab() Tab {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tab
}

func (c *Community) SetTab(tab Tab) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tab = tab
}

func (c *Community) Query() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

func (c *Community) SetQuery(query string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.query = query
}
