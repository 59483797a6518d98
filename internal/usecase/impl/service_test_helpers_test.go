package impl

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"majorexplorer/config"
	"majorexplorer/internal/domain/service"
	"majorexplorer/internal/infra/auth"
	"majorexplorer/internal/infra/persistence"
	"majorexplorer/internal/infra/persistence/memory"

	"golang.org/x/crypto/bcrypt"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			BcryptCost: bcrypt.MinCost,
		},
	}
}

func newTestHasher() service.PasswordHasher {
	return auth.NewBcryptHasherWithCost(bcrypt.MinCost)
}

// steppingClock advances one second per reading so saved-at values are strictly ordered.
type steppingClock struct {
	mu  sync.Mutex
	now time.Time
}

func newSteppingClock() *steppingClock {
	return &steppingClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *steppingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(time.Second)

	return c.now
}

func newMemoryBackend(opts ...memory.Option) persistence.Result {
	opts = append([]memory.Option{memory.WithClock(newSteppingClock().Now)}, opts...)

	return persistence.NewMemory(memory.NewStore(opts...))
}
