package modelops

import (
	"context"
	"errors"
	"testing"

	"github.com/flke/flke/internal/app"
	"github.com/flke/flke/internal/board"
	"github.com/flke/flke/internal/config"
	"github.com/flke/flke/internal/models"
	"github.com/flke/flke/internal/session"
	"github.com/flke/flke/internal/testutil"
	"github.com/flke/flke/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModel(t *testing.T) (*testutil.FakeStore, *tui.Model) {
	t.Helper()
	store := testutil.NewFakeStore(1, "Acme")
	store.AddTask(1, "Draft the roadmap", models.StatusTodo)
	store.AddMember(1, "ann", "ann@acme.test", &models.Role{})
	a := app.New(store, app.WithSession(session.New(store.Companies[0])))
	return store, tui.InitialModel(context.Background(), a)
}

func TestInitialLoad(t *testing.T) {
	_, m := newModel(t)

	msg, ok := InitialLoad(m)().(tui.LoadedMsg)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	assert.Len(t, msg.Tasks, 1)
	assert.Len(t, msg.Records, 2, "root and ann")
}

func TestInitialLoad_Error(t *testing.T) {
	store, m := newModel(t)
	store.Fail("ListCompanies", errors.New("down"))

	msg := InitialLoad(m)().(tui.LoadedMsg)
	assert.Error(t, msg.Err)
	assert.Nil(t, msg.Tasks)
}

func TestCommitStatus(t *testing.T) {
	store, m := newModel(t)
	current := store.Tasks[0].Clone()
	commit := board.Commit{TaskID: current.ID, From: models.StatusTodo, To: models.StatusDone}

	msg := CommitStatus(m, commit, current)().(tui.StatusCommittedMsg)
	require.NoError(t, msg.Err)
	assert.Equal(t, commit, msg.Commit)
	assert.Equal(t, models.StatusDone, msg.Task.Status)
	assert.Equal(t, 1, store.CallCount("UpdateTask"), "one request per drop")
}

func TestDeleteUser_RequiresManageUsers(t *testing.T) {
	store, m := newModel(t)
	m.App.Session = session.New(store.Companies[1])

	msg := DeleteUser(m, store.Companies[1].ID)().(tui.UserDeletedMsg)
	assert.Error(t, msg.Err)
	assert.Equal(t, 0, store.CallCount("DeleteCompany"))
}

func stubSaveConfig(t *testing.T, save func(cfg *config.Config) error) {
	t.Helper()
	orig := saveConfig
	saveConfig = save
	t.Cleanup(func() { saveConfig = orig })
}

func TestSaveSettings(t *testing.T) {
	_, m := newModel(t)
	var saved string
	stubSaveConfig(t, func(cfg *config.Config) error {
		saved = cfg.ColorScheme.Preset
		return nil
	})

	m.Config.ColorScheme.Preset = "lotus"
	msg := SaveSettings(m)().(tui.SettingsSavedMsg)
	assert.NoError(t, msg.Err)
	assert.Equal(t, "lotus", msg.Preset)
	assert.Equal(t, "lotus", saved)
}

func TestSaveSettings_WritesConfigAsOfTheKeypress(t *testing.T) {
	_, m := newModel(t)
	var saved *config.Config
	stubSaveConfig(t, func(cfg *config.Config) error {
		saved = cfg
		return nil
	})

	m.Config.ColorScheme.Preset = "lotus"
	cmd := SaveSettings(m)
	m.Config.ColorScheme.Preset = "dawn"

	msg := cmd().(tui.SettingsSavedMsg)
	assert.Equal(t, "lotus", msg.Preset)
	require.NotNil(t, saved)
	assert.Equal(t, "lotus", saved.ColorScheme.Preset)
	assert.NotSame(t, m.Config, saved)
	assert.Equal(t, "dawn", m.Config.ColorScheme.Preset)
}
