package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stale/internal/adapters/config"
	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeSettings(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.SettingsFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	path := writeSettings(t, t.TempDir(), `
track:
  - "templates/*.tmpl"
  - "config.ini"
hook:
  trigger: USR1
  reaction: INT
  verbose: true
`)

	settings, err := config.NewLoader(log).Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"templates/*.tmpl", "config.ini"}, settings.Track)
	assert.Equal(t, "USR1", settings.Hook.Trigger)
	assert.Equal(t, "INT", settings.Hook.Reaction)
	assert.True(t, settings.Hook.Verbose)
}

func TestLoader_Load_EmptyFileYieldsDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	path := writeSettings(t, t.TempDir(), "")

	settings, err := config.NewLoader(log).Load(path)
	require.NoError(t, err)

	assert.Empty(t, settings.Track)
	assert.Equal(t, domain.DefaultTrigger, settings.Hook.Trigger)
	assert.Equal(t, domain.DefaultReaction, settings.Hook.Reaction)
	assert.False(t, settings.Hook.Verbose)
}

func TestLoader_Load_WarnsOnEmptyPattern(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	path := writeSettings(t, t.TempDir(), `
track:
  - ""
  - "config.ini"
`)

	settings, err := config.NewLoader(log).Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"config.ini"}, settings.Track)
}

func TestLoader_Load_UnknownField(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	path := writeSettings(t, t.TempDir(), "watch: true\n")

	_, err := config.NewLoader(log).Load(path)
	assert.ErrorIs(t, err, domain.ErrConfigParseFailed)
}

func TestLoader_Load_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	_, err := config.NewLoader(log).Load(filepath.Join(t.TempDir(), domain.SettingsFileName))
	assert.ErrorIs(t, err, domain.ErrConfigReadFailed)
}

func TestLoader_Find(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	root := t.TempDir()
	writeSettings(t, root, "track: []\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, err := config.NewLoader(log).Find(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, domain.SettingsFileName), found)
}

func TestLoader_Find_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	_, err := config.NewLoader(log).Find(t.TempDir())
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
	// A missing file is not a read failure; callers treat it as optional.
	assert.NotErrorIs(t, err, domain.ErrConfigReadFailed)
}
