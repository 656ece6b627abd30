package events

var (
	ScreenMountedTopic   = "ScreenMountedEvent"
	ScreenUnmountedTopic = "ScreenUnmountedEvent"
)

type ScreenMounted struct {
	UserID int64
	ChatID int64
	Route  string
}

type ScreenUnmounted struct {
	UserID int64
	ChatID int64
	Route  string
	Reason string
}

const (
	UnmountNavigation = "navigation"
	UnmountExpired    = "expired"
	UnmountEnded      = "ended"
)
