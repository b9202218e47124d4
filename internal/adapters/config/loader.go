// Package config provides the settings loader for stale.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/stale/internal/core/domain"
	"go.trai.ch/stale/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader reads tracking settings from a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// staleFile is the YAML shape of the settings file.
type staleFile struct {
	Track []string `yaml:"track"`
	Hook  hookDTO  `yaml:"hook"`
}

type hookDTO struct {
	Trigger  string `yaml:"trigger"`
	Reaction string `yaml:"reaction"`
	Verbose  bool   `yaml:"verbose"`
}

// Load reads the settings file at path and returns settings with defaults
// applied. An empty file is valid and yields the defaults.
func (l *Loader) Load(path string) (domain.Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Settings{}, zerr.With(zerr.Wrap(domain.ErrConfigReadFailed, err.Error()), "path", path)
	}

	var dto staleFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return domain.Settings{}, zerr.With(zerr.Wrap(domain.ErrConfigParseFailed, err.Error()), "path", path)
	}

	track := make([]string, 0, len(dto.Track))
	for _, pattern := range dto.Track {
		if pattern == "" {
			l.Logger.Warn("ignoring empty track pattern in " + path)
			continue
		}
		track = append(track, pattern)
	}

	settings := domain.Settings{
		Track: track,
		Hook: domain.HookSettings{
			Trigger:  dto.Hook.Trigger,
			Reaction: dto.Hook.Reaction,
			Verbose:  dto.Hook.Verbose,
		},
	}
	return settings.WithDefaults(), nil
}

// Find walks up from cwd looking for the settings file and returns its path.
// Returns domain.ErrConfigNotFound when no settings file exists anywhere up
// to the filesystem root.
func (l *Loader) Find(cwd string) (string, error) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.SettingsFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}
	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "locate "+domain.SettingsFileName), "cwd", cwd)
}
