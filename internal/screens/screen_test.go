package screens

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func Test_NewFactory_WhenDependencyMissing_ShouldFail(t *testing.T) {

	assert := assert.New(t)

	_, err := NewFactory(nil, &stubResponder{}, EventBus.New(), Options{})
	assert.Error(err)
	_, err = NewFactory(&stubCatalog{}, nil, EventBus.New(), Options{})
	assert.Error(err)
	_, err = NewFactory(&stubCatalog{}, &stubResponder{}, nil, Options{})
	assert.Error(err)
}

func Test_Factory_Create_ShouldMountEveryRoute(t *testing.T) {

	assert := assert.New(t)
	catalog := &stubCatalog{jobs: testJobs(), posts: testPosts()}
	factory, err := NewFactory(catalog, &stubResponder{}, EventBus.New(), testOptions(time.Hour))
	assert.NoError(err)

	for _, route := range Routes() {
		screen, err := factory.Create(context.Background(), route, Owner{UserID: 1})
		assert.NoError(err)
		assert.Equal(route, screen.Route())
		screen.Close()
	}
}

func Test_Factory_Create_ShouldGiveEachMountFreshState(t *testing.T) {

	assert := assert.New(t)
	catalog := &stubCatalog{posts: testPosts()}
	factory, _ := NewFactory(catalog, &stubResponder{}, EventBus.New(), testOptions(time.Hour))

	first, _ := factory.Create(context.Background(), RouteCommunity, Owner{})
	first.(*Community).ToggleLike("1")
	first.Close()

	second, _ := factory.Create(context.Background(), RouteCommunity, Owner{})
	post, _ := second.(*Community).Post(1)
	assert.Equal(10, post.Likes)
	assert.False(post.IsLiked)
}

func Test_Factory_Create_WhenCatalogFails_ShouldReturnError(t *testing.T) {

	assert := assert.New(t)
	factory, _ := NewFactory(&stubCatalog{err: errCatalog}, &stubResponder{}, EventBus.New(), Options{})

	_, err := factory.Create(context.Background(), RouteJobs, Owner{})
	assert.ErrorIs(err, errCatalog)

	_, err = factory.Create(context.Background(), Route("settings"), Owner{})
	assert.ErrorIs(err, ErrUnknownRoute)
}
