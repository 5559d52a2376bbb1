// Package config holds the external configuration flags the rendering
// core consumes.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// Config is the external configuration object. The zero value is a valid
// default.
type Config struct {
	// DefaultColors renders white-on-black through the terminal's own
	// default colors instead of explicit palette entries.
	DefaultColors bool `yaml:"default-colors"`

	// DimText renders body text with the dim attribute.
	DimText bool `yaml:"dim-text"`
}

// Load reads a YAML configuration file. A missing file yields the zero
// config without error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return c, nil
}

// watchDebounce is how long the file must stay quiet before a reload.
// Editors and atomic-save tools emit bursts of events per save; one
// reload per burst keeps downstream rebuild work bounded.
const watchDebounce = 100 * time.Millisecond

// Watch reloads path whenever it changes and hands the result to onChange.
// It watches the containing directory so editors that replace the file are
// still seen, and debounces event bursts so each save triggers a single
// reload. The returned function stops the watcher.
func Watch(path string, onChange func(Config)) (stop func() error, err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: watch: %w", err)
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		w.Close()
		return nil, fmt.Errorf("config: watch %s: %w", path, err)
	}

	go func() {
		quiet := time.NewTimer(watchDebounce)
		if !quiet.Stop() {
			<-quiet.C
		}
		defer quiet.Stop()
		pending := false

		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(path) {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if pending && !quiet.Stop() {
					<-quiet.C
				}
				quiet.Reset(watchDebounce)
				pending = true
			case <-quiet.C:
				pending = false
				if c, err := Load(path); err == nil {
					onChange(c)
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return w.Close, nil
}
