package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"ssf/internal/config"
	"ssf/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore creates a store whose global and local files live in
// separate temp directories.
func newTestStore(t *testing.T) *config.Store {
	t.Helper()
	globalDir := t.TempDir()
	localDir := t.TempDir()
	return config.NewStoreAt(
		filepath.Join(globalDir, config.ConfigFileName),
		filepath.Join(localDir, config.ConfigFileName),
	)
}

func writeConfigFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadDefaults(t *testing.T) {
	store := newTestStore(t)
	cfg := store.Load()

	assert.Equal(t, "SSF Project", cfg.ProjectName)
	assert.Equal(t, "./renamed_files", cfg.OutputDir)
	assert.True(t, cfg.FileProcessing.DefaultRecursive)
	assert.True(t, cfg.FileProcessing.CopyInsteadOfRename)
	assert.Equal(t, "timestamp", cfg.RenameConfig.ConflictResolution)
	assert.Equal(t, []string{".git", "__pycache__", ".DS_Store"}, cfg.FileProcessing.ExcludePatterns)
	assert.Empty(t, store.Warnings())
}

func TestLoadPrecedence(t *testing.T) {
	store := newTestStore(t)

	// builtin default for output_dir is "./renamed_files"
	writeConfigFile(t, store.GlobalPath(), `{"output_dir": "./global_out", "timeout": 99}`)
	writeConfigFile(t, store.LocalPath(), `{"output_dir": "./local_out"}`)

	cfg := store.Load()

	// local wins over global, global wins over builtin
	assert.Equal(t, "./local_out", cfg.OutputDir)
	assert.Equal(t, 99, cfg.Timeout)
	// keys absent from both files keep builtin values
	assert.Equal(t, "SSF Project", cfg.ProjectName)
}

func TestLoadIdempotent(t *testing.T) {
	store := newTestStore(t)
	writeConfigFile(t, store.GlobalPath(), `{"project_name": "alpha", "debug": true}`)
	writeConfigFile(t, store.LocalPath(), `{"retry_count": 7}`)

	first := store.Load()
	second := store.Load()

	assert.Equal(t, first, second)
}

func TestLoadSkipsUnparsableSource(t *testing.T) {
	store := newTestStore(t)
	writeConfigFile(t, store.GlobalPath(), `{"output_dir": [this is not valid`)
	writeConfigFile(t, store.LocalPath(), `{"project_name": "still applied"}`)

	cfg := store.Load()

	// the broken global file is skipped, not fatal
	assert.Equal(t, "./renamed_files", cfg.OutputDir)
	assert.Equal(t, "still applied", cfg.ProjectName)
	require.Len(t, store.Warnings(), 1)
	assert.Contains(t, store.Warnings()[0], store.GlobalPath())
}

func TestLoadNestedOverlay(t *testing.T) {
	store := newTestStore(t)
	writeConfigFile(t, store.LocalPath(),
		`{"file_processing": {"default_dry_run": true, "default_recursive": false, "exclude_patterns": ["*.bak"], "supported_extensions": ["*"], "copy_instead_of_rename": true}}`)

	cfg := store.Load()

	assert.True(t, cfg.FileProcessing.DefaultDryRun)
	assert.False(t, cfg.FileProcessing.DefaultRecursive)
	assert.Equal(t, []string{"*.bak"}, cfg.FileProcessing.ExcludePatterns)
}

func TestSaveRoundTrip(t *testing.T) {
	store := newTestStore(t)

	cfg := config.Default()
	cfg.ProjectName = "saved project"
	cfg.FileProcessing.DefaultDryRun = true
	require.NoError(t, store.Save(config.ScopeLocal, cfg))

	loaded := store.Load()
	assert.Equal(t, "saved project", loaded.ProjectName)
	assert.True(t, loaded.FileProcessing.DefaultDryRun)

	// the file is full-document JSON, so every schema key is present
	data, err := os.ReadFile(store.LocalPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"rename_config"`)
	assert.Contains(t, string(data), `"log_level"`)
}

func TestSaveUnwritableTarget(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	store := config.NewStoreAt(
		filepath.Join(dir, config.ConfigFileName),
		filepath.Join(blocker, "nested", config.ConfigFileName),
	)

	err := store.Save(config.ScopeLocal, config.Default())
	require.Error(t, err)
	assert.Equal(t, errors.ConfigSaveFailed, errors.KindOf(err))
}

func TestInitCreatesMissingFiles(t *testing.T) {
	store := newTestStore(t)
	writeConfigFile(t, store.GlobalPath(), `{"project_name": "keep me"}`)

	require.NoError(t, store.Init())

	// the existing global file is byte-for-byte untouched
	data, err := os.ReadFile(store.GlobalPath())
	require.NoError(t, err)
	assert.Equal(t, `{"project_name": "keep me"}`, string(data))

	// the missing local file was created with the full defaults
	local, err := os.ReadFile(store.LocalPath())
	require.NoError(t, err)
	assert.Contains(t, string(local), `"project_name": "SSF Project"`)
	assert.Contains(t, string(local), `"rename_config"`)
}

func TestSetString(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, config.Set(cfg, "output_dir", "./elsewhere"))
	assert.Equal(t, "./elsewhere", cfg.OutputDir)
}

func TestSetBool(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"true", true}, {"TRUE", true}, {"1", true}, {"yes", true}, {"On", true},
		{"false", false}, {"0", false}, {"No", false}, {"OFF", false},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			cfg := config.Default()
			require.NoError(t, config.Set(cfg, "debug", tc.raw))
			assert.Equal(t, tc.want, cfg.Debug)
		})
	}
}

func TestSetBoolRejectsOtherValues(t *testing.T) {
	cfg := config.Default()
	err := config.Set(cfg, "debug", "definitely")

	require.Error(t, err)
	assert.Equal(t, errors.TypeConversion, errors.KindOf(err))
	assert.Contains(t, err.Error(), "definitely")
	assert.False(t, cfg.Debug, "failed set must not mutate the config")
}

func TestSetInt(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, config.Set(cfg, "timeout", "45"))
	assert.Equal(t, 45, cfg.Timeout)

	err := config.Set(cfg, "timeout", "soon")
	require.Error(t, err)
	assert.Equal(t, errors.TypeConversion, errors.KindOf(err))
	assert.Equal(t, 45, cfg.Timeout)
}

func TestSetNestedKey(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, config.Set(cfg, "file_processing.default_dry_run", "yes"))
	assert.True(t, cfg.FileProcessing.DefaultDryRun)

	require.NoError(t, config.Set(cfg, "file_processing.exclude_patterns", "*.bak, *.tmp"))
	assert.Equal(t, []string{"*.bak", "*.tmp"}, cfg.FileProcessing.ExcludePatterns)
}

func TestSetUnknownKey(t *testing.T) {
	cfg := config.Default()
	err := config.Set(cfg, "no_such_key", "value")

	require.Error(t, err)
	assert.Equal(t, errors.UnknownKey, errors.KindOf(err))
	assert.Contains(t, err.Error(), "no_such_key")
}

func TestSchemaCoversEveryKeyOnce(t *testing.T) {
	seen := map[string]bool{}
	for _, field := range config.Schema() {
		assert.False(t, seen[field.Key], "duplicate schema key %s", field.Key)
		seen[field.Key] = true

		// every registered key resolves through Lookup
		_, ok := config.Lookup(field.Key)
		assert.True(t, ok)
	}
}
