package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/cardman/internal/grid"
)

func TestCli_runAddSheet(t *testing.T) {
	ctx := context.Background()
	tc := setupTestCli(t, []string{"budget"})
	tc.unlock(t)

	require.NoError(t, tc.cli.runAdd(ctx, []string{"sheet"}))

	sheets, err := tc.store.ListSpreadsheets(ctx)
	require.NoError(t, err)
	require.Len(t, sheets, 1)
	assert.Equal(t, "budget", sheets[0].Name)
	// Новый документ — пустая сетка по умолчанию
	assert.Equal(t, grid.Default(), sheets[0].Data)
}

func TestCli_runUpdateSheet_PersistsEdit(t *testing.T) {
	ctx := context.Background()

	// Две строки данных и точка-ограничитель
	tc := setupTestCli(t, []string{"name,amount", "rent,1200", "."})
	tc.unlock(t)

	id, err := tc.store.CreateSpreadsheet(ctx, "budget", grid.Default())
	require.NoError(t, err)

	require.NoError(t, tc.cli.runUpdate(ctx, []string{"sheet", "1"}))

	// Правка долговечна: перечитываем из хранилища
	got, err := tc.store.GetSpreadsheet(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "name,amount\nrent,1200", got.Data)
}

func TestCli_runGetSheet_RendersPreview(t *testing.T) {
	ctx := context.Background()
	tc := setupTestCli(t, nil)
	tc.unlock(t)

	_, err := tc.store.CreateSpreadsheet(ctx, "tiny", "a,b\nc,d")
	require.NoError(t, err)

	require.NoError(t, tc.cli.runGet(ctx, []string{"sheet", "1"}))

	err = tc.cli.runGet(ctx, []string{"sheet", "42"})
	assert.Error(t, err)
}

func TestCli_runAddMedia(t *testing.T) {
	ctx := context.Background()
	tc := setupTestCli(t, nil)
	tc.unlock(t)

	// Отсутствующий путь к файлу — ошибка до обращения к хранилищу
	tc.inputs = []string{"1", "", ""}
	err := tc.cli.runAdd(ctx, []string{"media"})
	assert.Error(t, err)
}
