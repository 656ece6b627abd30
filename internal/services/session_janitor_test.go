package services

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"testing"
	"time"
)

type mockSweeper struct {
	mock.Mock
}

func (m *mockSweeper) Sweep() int {
	return m.Called().Int(0)
}

func (m *mockSweeper) Count() int {
	return m.Called().Int(0)
}

func Test_NewSessionJanitor_WhenArgumentsInvalid_ShouldFail(t *testing.T) {

	assert := assert.New(t)

	_, err := NewSessionJanitor(nil, time.Minute)
	assert.Error(err)

	_, err = NewSessionJanitor(&mockSweeper{}, time.Millisecond)
	assert.Error(err)
}

func Test_SessionJanitor_Sweep_ShouldDelegateToSessions(t *testing.T) {

	sweeper := &mockSweeper{}
	sweeper.On("Sweep").Return(2).Once()
	sweeper.On("Count").Return(5).Once()

	janitor, err := NewSessionJanitor(sweeper, time.Hour)
	assert.NoError(t, err)
	defer janitor.Stop()

	janitor.sweep()
	sweeper.AssertExpectations(t)
}

func Test_SessionJanitor_ShouldSweepOnSchedule(t *testing.T) {

	sweeper := &mockSweeper{}
	swept := make(chan struct{}, 1)
	sweeper.On("Sweep").Return(0).Run(func(mock.Arguments) {
		select {
		case swept <- struct{}{}:
		default:
		}
	})

	janitor, err := NewSessionJanitor(sweeper, time.Second)
	assert.NoError(t, err)
	defer janitor.Stop()

	select {
	case <-swept:
	case <-time.After(3 * time.Second):
		t.Fatal("janitor did not sweep")
	}
}
