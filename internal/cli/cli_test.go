package cli

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/cardman/internal/iocli"
	"github.com/iudanet/cardman/internal/session"
	sessionboltdb "github.com/iudanet/cardman/internal/session/boltdb"
	"github.com/iudanet/cardman/internal/storage/sqlite"
)

// testCli собирает Cli поверх настоящих хранилищ: in-memory sqlite
// и bolt-файл во временной директории. Ввод скриптуется через IOMock:
// ReadInput и ReadPassword читают из общей очереди inputs.
type testCli struct {
	cli      *Cli
	store    *sqlite.Storage
	sessions *session.Service
	inputs   []string
	pos      int
}

func setupTestCli(t *testing.T, inputs []string) *testCli {
	ctx := context.Background()

	store, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	sessStore, err := sessionboltdb.New(ctx, filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sessStore.Close() })

	sessions := session.NewService(sessStore)
	require.NoError(t, sessions.EnsureDefaultPin(ctx))

	tc := &testCli{
		store:    store,
		sessions: sessions,
		inputs:   inputs,
	}

	next := func(prompt string) (string, error) {
		if tc.pos >= len(tc.inputs) {
			return "", nil
		}
		value := tc.inputs[tc.pos]
		tc.pos++
		return value, nil
	}

	mockIO := &iocli.IOMock{
		PrintlnFunc:      func(a ...any) {},
		PrintfFunc:       func(format string, a ...any) {},
		ReadInputFunc:    next,
		ReadPasswordFunc: next,
	}

	tc.cli = New(mockIO, store, sessions)
	return tc
}

// unlock переводит сессию в Unlocked напрямую через сервис
func (tc *testCli) unlock(t *testing.T) {
	ok, err := tc.sessions.Verify(context.Background(), session.DefaultPin)
	require.NoError(t, err)
	require.True(t, ok)
}
