package state

import (
	"github.com/google/uuid"
	"strconv"
	"sync"
)

type IDGenerator func() string

func NewUUID() string {
	return uuid.NewString()
}

// SequentialIDs returns a generator yielding "1", "2", ... Safe for concurrent use.
func SequentialIDs() IDGenerator {
	var mu sync.Mutex
	next := 0
	return func() string {
		mu.Lock()
		defer mu.Unlock()
		next++
		return strconv.Itoa(next)
	}
}
