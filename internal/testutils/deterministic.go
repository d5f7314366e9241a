// Package testutils provides deterministic generators for test mode runs.
// Production mode gets random session ids and the wall clock; test mode gets
// fixed values so batch transcripts can be compared byte for byte.
package testutils

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Epoch is the first timestamp handed out by a deterministic clock.
var Epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)

var (
	idCounter uint64
	idMutex   sync.Mutex
)

// GenerateUUID returns a random UUID, or in test mode one of the form
// 00000001-0000-4000-8000-000000000001, 00000002-..., and so on.
func GenerateUUID(testMode bool) string {
	if testMode {
		return getDeterministicUUID()
	}
	return uuid.New().String()
}

// Clock returns time.Now, or in test mode a clock that starts at Epoch and
// advances one second per call so ordering stays stable.
func Clock(testMode bool) func() time.Time {
	if !testMode {
		return time.Now
	}
	var (
		mu   sync.Mutex
		tick int64
	)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := Epoch.Add(time.Duration(tick) * time.Second)
		tick++
		return t
	}
}

// FixedClock returns a clock that always reports t.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// ResetDeterministicGenerators resets the UUID counter, for tests.
func ResetDeterministicGenerators() {
	idMutex.Lock()
	defer idMutex.Unlock()
	idCounter = 0
}

func getDeterministicUUID() string {
	idMutex.Lock()
	defer idMutex.Unlock()

	idCounter++
	return fmt.Sprintf("%08d-0000-4000-8000-%012d", idCounter, idCounter)
}
