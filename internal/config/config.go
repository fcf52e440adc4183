// Package config implements the three-tier configuration store:
// builtin defaults, overridden by a per-user global file, overridden
// by a per-project local file. Both files share the same name and the
// same JSON document format.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"ssf/internal/errors"
	"ssf/internal/log"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is used for both the global and the local file.
const ConfigFileName = ".ssfrc"

// Scope selects which config file a save targets.
type Scope string

const (
	ScopeGlobal Scope = "global"
	ScopeLocal  Scope = "local"
)

// FileProcessing groups the file matching defaults applied when a
// batch invocation leaves them unset.
type FileProcessing struct {
	DefaultDryRun       bool     `json:"default_dry_run" yaml:"default_dry_run"`
	DefaultRecursive    bool     `json:"default_recursive" yaml:"default_recursive"`
	ExcludePatterns     []string `json:"exclude_patterns" yaml:"exclude_patterns"`
	SupportedExtensions []string `json:"supported_extensions" yaml:"supported_extensions"`
	CopyInsteadOfRename bool     `json:"copy_instead_of_rename" yaml:"copy_instead_of_rename"`
}

// RenameConfig groups the rename script's policy settings.
type RenameConfig struct {
	DefaultPrefix      string `json:"default_prefix" yaml:"default_prefix"`
	DefaultSuffix      string `json:"default_suffix" yaml:"default_suffix"`
	ConflictResolution string `json:"conflict_resolution" yaml:"conflict_resolution"`
	DateFormat         string `json:"date_format" yaml:"date_format"`
	PreserveOriginal   bool   `json:"preserve_original" yaml:"preserve_original"`
}

// Config is the full configuration schema. Every key has a builtin
// default; overlay files may only carry keys that exist here.
type Config struct {
	ProjectName    string         `json:"project_name" yaml:"project_name"`
	Version        string         `json:"version" yaml:"version"`
	OutputDir      string         `json:"output_dir" yaml:"output_dir"`
	TempDir        string         `json:"temp_dir" yaml:"temp_dir"`
	FileProcessing FileProcessing `json:"file_processing" yaml:"file_processing"`
	RenameConfig   RenameConfig   `json:"rename_config" yaml:"rename_config"`
	LogLevel       string         `json:"log_level" yaml:"log_level"`
	LogFile        string         `json:"log_file" yaml:"log_file"`
	Timeout        int            `json:"timeout" yaml:"timeout"`
	RetryCount     int            `json:"retry_count" yaml:"retry_count"`
	Debug          bool           `json:"debug" yaml:"debug"`
	Verbose        bool           `json:"verbose" yaml:"verbose"`
}

// Default returns the builtin configuration, lowest precedence tier.
func Default() *Config {
	return &Config{
		ProjectName: "SSF Project",
		Version:     "0.1.0",
		OutputDir:   "./renamed_files",
		TempDir:     "./temp",
		FileProcessing: FileProcessing{
			DefaultDryRun:       false,
			DefaultRecursive:    true,
			ExcludePatterns:     []string{".git", "__pycache__", ".DS_Store"},
			SupportedExtensions: []string{"*"},
			CopyInsteadOfRename: true,
		},
		RenameConfig: RenameConfig{
			DefaultPrefix:      "",
			DefaultSuffix:      "",
			ConflictResolution: "timestamp",
			DateFormat:         "20060102_150405",
			PreserveOriginal:   true,
		},
		LogLevel:   "info",
		LogFile:    "./logs/ssf.log",
		Timeout:    30,
		RetryCount: 3,
		Debug:      false,
		Verbose:    false,
	}
}

// Store resolves and persists the three configuration tiers. It holds
// no mutable state besides the warnings of the most recent Load, so a
// fresh instance per process invocation is cheap.
type Store struct {
	globalPath string
	localPath  string
	warnings   []string
}

// NewStore creates a store using the default file locations: the
// global file in the user's home directory and the local file in the
// current working directory.
func NewStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return NewStoreAt(
		filepath.Join(home, ConfigFileName),
		filepath.Join(cwd, ConfigFileName),
	), nil
}

// NewStoreAt creates a store with explicit file locations.
func NewStoreAt(globalPath, localPath string) *Store {
	return &Store{globalPath: globalPath, localPath: localPath}
}

// GlobalPath returns the per-user config file location.
func (s *Store) GlobalPath() string { return s.globalPath }

// LocalPath returns the per-project config file location.
func (s *Store) LocalPath() string { return s.localPath }

// Load merges the three tiers in precedence order: builtin defaults,
// then the global file, then the local file. A source that exists but
// fails to parse is skipped with a warning; Load never fails.
func (s *Store) Load() *Config {
	cfg := Default()
	s.warnings = nil
	s.overlay(cfg, s.globalPath)
	s.overlay(cfg, s.localPath)
	return cfg
}

// overlay applies one source file on top of cfg. The files are written
// as JSON and read through the YAML parser, which accepts every JSON
// document and tolerates hand-edited YAML. Keys absent from the file
// keep their current values; a source that does not decode leaves cfg
// untouched.
func (s *Store) overlay(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.warn("cannot read config file %s: %v", path, err)
		}
		return
	}

	layered := *cfg
	if err := yaml.Unmarshal(data, &layered); err != nil {
		s.warn("%v", errors.NewParseError(path, err))
		return
	}
	*cfg = layered
}

func (s *Store) warn(format string, args ...interface{}) {
	log.Warn(format, args...)
	s.warnings = append(s.warnings, fmt.Sprintf(format, args...))
}

// Warnings returns the non-fatal problems encountered by the most
// recent Load.
func (s *Store) Warnings() []string {
	return s.warnings
}

// Save serializes the full configuration, not a delta, to the file of
// the given scope as indented JSON.
func (s *Store) Save(scope Scope, cfg *Config) error {
	path := s.localPath
	if scope == ScopeGlobal {
		path = s.globalPath
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.NewFileError("failed to create config directory", filepath.Dir(path), errors.ConfigSaveFailed, err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.NewFileError("failed to marshal config", path, errors.ConfigSaveFailed, err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.NewFileError("failed to write config file", path, errors.ConfigSaveFailed, err)
	}
	return nil
}

// Init writes default config files for any scope whose file does not
// exist yet. Existing files are left alone.
func (s *Store) Init() error {
	for _, scope := range []Scope{ScopeGlobal, ScopeLocal} {
		path := s.localPath
		if scope == ScopeGlobal {
			path = s.globalPath
		}
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := s.Save(scope, Default()); err != nil {
			return err
		}
	}
	return nil
}
