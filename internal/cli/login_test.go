package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/cardman/internal/session"
)

func TestCli_runLogin_RetriesUntilCorrectPin(t *testing.T) {
	ctx := context.Background()

	// Два неверных PIN, затем верный
	tc := setupTestCli(t, []string{"0000", "9999", session.DefaultPin})

	err := tc.cli.runLogin(ctx)
	require.NoError(t, err)

	authenticated, err := tc.sessions.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.True(t, authenticated)

	// Все три попытки прочитаны
	assert.Equal(t, 3, tc.pos)
}

func TestCli_runLogout(t *testing.T) {
	ctx := context.Background()
	tc := setupTestCli(t, nil)
	tc.unlock(t)

	require.NoError(t, tc.cli.runLogout(ctx))

	authenticated, err := tc.sessions.IsAuthenticated(ctx)
	require.NoError(t, err)
	assert.False(t, authenticated)
}

func TestCli_runResetPin(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		answer  string
		wantErr bool
	}{
		{name: "exact answer", answer: "LUDO", wantErr: false},
		{name: "case-insensitive answer", answer: "ludo", wantErr: false},
		{name: "wrong answer", answer: "chess", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := setupTestCli(t, []string{tt.answer})

			err := tc.cli.runResetPin(ctx)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)

				// После сброса вход возможен только с PIN по умолчанию
				ok, err := tc.sessions.Verify(ctx, session.DefaultPin)
				require.NoError(t, err)
				assert.True(t, ok)
			}
		})
	}
}

func TestCli_DataCommandsRequireAuth(t *testing.T) {
	ctx := context.Background()

	// Сессия заблокирована: команды с данными отказывают до чтения ввода
	tc := setupTestCli(t, []string{"should-not-be-read"})

	assert.Error(t, tc.cli.runAdd(ctx, []string{"card"}))
	assert.Error(t, tc.cli.runList(ctx, []string{"cards"}))
	assert.Error(t, tc.cli.runGet(ctx, []string{"card", "1"}))
	assert.Error(t, tc.cli.runUpdate(ctx, []string{"card", "1"}))
	assert.Error(t, tc.cli.runDelete(ctx, []string{"card", "1"}))

	assert.Equal(t, 0, tc.pos)
}

func TestCli_runStatus_Locked(t *testing.T) {
	ctx := context.Background()
	tc := setupTestCli(t, nil)

	// Статус доступен и в заблокированном состоянии
	require.NoError(t, tc.cli.runStatus(ctx))
}
