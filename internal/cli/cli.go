package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/cardman/internal/iocli"
	"github.com/iudanet/cardman/internal/session"
	"github.com/iudanet/cardman/internal/storage"
)

type Cli struct {
	io       iocli.IO
	store    storage.Storage
	sessions *session.Service
}

func New(io iocli.IO, store storage.Storage, sessions *session.Service) *Cli {
	return &Cli{
		io:       io,
		store:    store,
		sessions: sessions,
	}
}

// requireAuth проверяет, что сессия разблокирована.
// Все команды с данными проходят через эту проверку; доступны без нее
// только login и reset-pin.
func (c *Cli) requireAuth(ctx context.Context) error {
	authenticated, err := c.sessions.IsAuthenticated(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}
	if !authenticated {
		return fmt.Errorf("not authenticated. Please run 'cardman login' first")
	}
	return nil
}
