package registry

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "apps.yaml"))
}

func TestRegistry_MissingFileIsEmpty(t *testing.T) {
	reg := newTestRegistry(t)
	apps, err := reg.List()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(apps) != 0 {
		t.Errorf("expected empty registry, got %v", apps)
	}
}

func TestRegistry_SaveAndFind(t *testing.T) {
	reg := newTestRegistry(t)
	app := SavedApp{Name: "browser", Class: "firefox", DesktopFile: "firefox.desktop"}
	if err := reg.Save(app); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := reg.Find("browser")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got != app {
		t.Errorf("expected %+v, got %+v", app, got)
	}
}

func TestRegistry_FindMiss(t *testing.T) {
	reg := newTestRegistry(t)
	if _, err := reg.Find("nope"); !errors.Is(err, ErrAppNotFound) {
		t.Errorf("expected ErrAppNotFound, got %v", err)
	}
}

func TestRegistry_SaveReplacesInPlace(t *testing.T) {
	reg := newTestRegistry(t)
	for _, app := range []SavedApp{
		{Name: "a", Class: "A"},
		{Name: "x", Class: "A"},
		{Name: "b", Class: "B"},
	} {
		if err := reg.Save(app); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	// Re-saving "x" updates it where it sits, not at the end.
	if err := reg.Save(SavedApp{Name: "x", Class: "B"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	apps, err := reg.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	names := make([]string, len(apps))
	for i, app := range apps {
		names[i] = app.Name
	}
	if !reflect.DeepEqual(names, []string{"a", "x", "b"}) {
		t.Errorf("expected order [a x b], got %v", names)
	}
	if apps[1].Class != "B" {
		t.Errorf("expected updated class B, got %s", apps[1].Class)
	}
}

func TestRegistry_DeleteMissReturnsFalse(t *testing.T) {
	reg := newTestRegistry(t)
	deleted, err := reg.Delete("ghost")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deleted {
		t.Error("expected false for unknown name")
	}
}

func TestRegistry_SaveDeleteRoundTrip(t *testing.T) {
	reg := newTestRegistry(t)
	for _, app := range []SavedApp{
		{Name: "a", Class: "A"},
		{Name: "b", Class: "B"},
	} {
		if err := reg.Save(app); err != nil {
			t.Fatalf("save: %v", err)
		}
	}
	before, err := reg.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if err := reg.Save(SavedApp{Name: "tmp", Class: "T"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	deleted, err := reg.Delete("tmp")
	if err != nil || !deleted {
		t.Fatalf("delete: deleted=%v err=%v", deleted, err)
	}

	after, err := reg.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !reflect.DeepEqual(before, after) {
		t.Errorf("round trip changed registry: %v vs %v", before, after)
	}
}

func TestRegistry_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	reg := New(filepath.Join(dir, "apps.yaml"))
	if err := reg.Save(SavedApp{Name: "a", Class: "A"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), ".apps-") {
			t.Errorf("temp file left behind: %s", entry.Name())
		}
	}
	if len(entries) != 1 || entries[0].Name() != "apps.yaml" {
		t.Errorf("expected only apps.yaml, got %v", entries)
	}
}

func TestRegistry_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apps.yaml")
	if err := New(path).Save(SavedApp{Name: "a", Class: "A"}); err != nil {
		t.Fatalf("save: %v", err)
	}

	apps, err := New(path).List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(apps) != 1 || apps[0].Name != "a" {
		t.Errorf("expected persisted app, got %v", apps)
	}
}
