// Package registry persists the saved-application list. The whole
// document is rewritten on every mutation; there is no incremental
// editing and no cross-process locking.
package registry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrAppNotFound means no saved application has the requested name.
var ErrAppNotFound = errors.New("app not found")

// SavedApp maps an application name to the window class used to find a
// live window and the desktop file used to launch one when none is
// found.
type SavedApp struct {
	Name        string `yaml:"name"         json:"name"`
	Class       string `yaml:"class"        json:"class"`
	DesktopFile string `yaml:"desktop_file" json:"desktop_file"`
}

// document is the persisted registry shape: one top-level collection
// in insertion order.
type document struct {
	Apps []SavedApp `yaml:"apps"`
}

// Registry reads and writes the saved-application document at a fixed
// path. Each operation reloads from disk; no state is held in memory
// across calls.
type Registry struct {
	path string
}

func New(path string) *Registry {
	return &Registry{path: path}
}

// List returns all saved applications in insertion order. A missing
// registry file is an empty registry, not an error.
func (r *Registry) List() ([]SavedApp, error) {
	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	return doc.Apps, nil
}

// Find looks up a saved application by name.
func (r *Registry) Find(name string) (SavedApp, error) {
	doc, err := r.load()
	if err != nil {
		return SavedApp{}, err
	}
	for _, app := range doc.Apps {
		if app.Name == name {
			return app, nil
		}
	}
	return SavedApp{}, fmt.Errorf("%w: %s", ErrAppNotFound, name)
}

// Save stores app under its name. An existing entry with the same name
// is replaced in place, keeping its position; otherwise the entry is
// appended.
func (r *Registry) Save(app SavedApp) error {
	doc, err := r.load()
	if err != nil {
		return err
	}
	replaced := false
	for i := range doc.Apps {
		if doc.Apps[i].Name == app.Name {
			doc.Apps[i] = app
			replaced = true
			break
		}
	}
	if !replaced {
		doc.Apps = append(doc.Apps, app)
	}
	return r.store(doc)
}

// Delete removes the named entry. It returns false, with no error,
// when the name is not present.
func (r *Registry) Delete(name string) (bool, error) {
	doc, err := r.load()
	if err != nil {
		return false, err
	}
	for i, app := range doc.Apps {
		if app.Name == name {
			doc.Apps = append(doc.Apps[:i], doc.Apps[i+1:]...)
			return true, r.store(doc)
		}
	}
	return false, nil
}

func (r *Registry) load() (document, error) {
	var doc document
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil
		}
		return doc, fmt.Errorf("read registry: %w", err)
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("parse registry: %w", err)
	}
	return doc, nil
}

// store writes the complete replacement document to a temp file in the
// registry's directory and renames it over the registry path, so an
// interrupted write never leaves a partial document. The temp file is
// removed on any failure.
func (r *Registry) store(doc document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode registry: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create registry dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".apps-*.yaml")
	if err != nil {
		return fmt.Errorf("write registry: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write registry: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write registry: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("write registry: %w", err)
	}
	return nil
}
