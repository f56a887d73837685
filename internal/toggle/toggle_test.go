package toggle

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"winctl/internal/directory"
	"winctl/internal/launcher"
	"winctl/internal/model"
	"winctl/internal/registry"
)

type fakeApps map[string]registry.SavedApp

func (f fakeApps) Find(name string) (registry.SavedApp, error) {
	if app, ok := f[name]; ok {
		return app, nil
	}
	return registry.SavedApp{}, registry.ErrAppNotFound
}

type fakeWindows struct {
	records []model.WindowRecord
	err     error
}

func (f fakeWindows) Find(q directory.Query) ([]model.WindowRecord, error) {
	return f.records, f.err
}

type fakeActions struct {
	calls []string
}

func (f *fakeActions) Activate(id model.WindowID) error {
	f.calls = append(f.calls, "activate "+string(id))
	return nil
}

func (f *fakeActions) Minimize(id model.WindowID) error {
	f.calls = append(f.calls, "minimize "+string(id))
	return nil
}

func (f *fakeActions) Unminimize(id model.WindowID) error {
	f.calls = append(f.calls, "unminimize "+string(id))
	return nil
}

type fakeLauncher struct {
	launched []string
	err      error
}

func (f *fakeLauncher) Launch(desktopFile string) error {
	f.launched = append(f.launched, desktopFile)
	return f.err
}

func window(id model.WindowID, class string, minimized bool) model.WindowRecord {
	return model.WindowRecord{
		ID:        id,
		Class:     model.Some(class),
		Title:     model.Some(class),
		Minimized: model.Some(minimized),
	}
}

func firefoxApps() fakeApps {
	return fakeApps{"firefox": {Name: "firefox", Class: "firefox", DesktopFile: "firefox.desktop"}}
}

func newTestEngine(apps Apps, windows Windows, actions *fakeActions, launch *fakeLauncher) *Engine {
	return NewEngine(apps, windows, actions, launch, zerolog.Nop())
}

func TestEngine_VisibleWindowIsMinimized(t *testing.T) {
	actions := &fakeActions{}
	launch := &fakeLauncher{}
	engine := newTestEngine(firefoxApps(),
		fakeWindows{records: []model.WindowRecord{window("7", "firefox", false)}},
		actions, launch)

	result, err := engine.LaunchOrToggle("firefox")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Action != ActionMinimized || result.WindowID != "7" {
		t.Errorf("expected minimized 7, got %+v", result)
	}
	if len(actions.calls) != 1 || actions.calls[0] != "minimize 7" {
		t.Errorf("expected only minimize, got %v", actions.calls)
	}
	if len(launch.launched) != 0 {
		t.Errorf("expected no launch, got %v", launch.launched)
	}
}

func TestEngine_MinimizedWindowIsRestored(t *testing.T) {
	actions := &fakeActions{}
	launch := &fakeLauncher{}
	engine := newTestEngine(firefoxApps(),
		fakeWindows{records: []model.WindowRecord{window("7", "firefox", true)}},
		actions, launch)

	result, err := engine.LaunchOrToggle("firefox")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Action != ActionActivated || result.WindowID != "7" {
		t.Errorf("expected activated 7, got %+v", result)
	}
	want := []string{"unminimize 7", "activate 7"}
	if len(actions.calls) != 2 || actions.calls[0] != want[0] || actions.calls[1] != want[1] {
		t.Errorf("expected %v, got %v", want, actions.calls)
	}
}

func TestEngine_NoMatchLaunches(t *testing.T) {
	actions := &fakeActions{}
	launch := &fakeLauncher{}
	engine := newTestEngine(firefoxApps(),
		fakeWindows{records: []model.WindowRecord{window("1", "term", false)}},
		actions, launch)

	result, err := engine.LaunchOrToggle("firefox")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Action != ActionLaunched {
		t.Errorf("expected launched, got %+v", result)
	}
	if len(launch.launched) != 1 || launch.launched[0] != "firefox.desktop" {
		t.Errorf("expected firefox.desktop launch, got %v", launch.launched)
	}
	if len(actions.calls) != 0 {
		t.Errorf("expected no window actions, got %v", actions.calls)
	}
}

func TestEngine_ExactClassMatchOnly(t *testing.T) {
	actions := &fakeActions{}
	launch := &fakeLauncher{}
	// "firefox-esr" contains "firefox" but is not an exact match.
	engine := newTestEngine(firefoxApps(),
		fakeWindows{records: []model.WindowRecord{window("1", "firefox-esr", false)}},
		actions, launch)

	result, err := engine.LaunchOrToggle("firefox")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Action != ActionLaunched {
		t.Errorf("expected launch for non-exact class, got %+v", result)
	}
}

func TestEngine_FirstOfDuplicateClassesWins(t *testing.T) {
	actions := &fakeActions{}
	engine := newTestEngine(firefoxApps(),
		fakeWindows{records: []model.WindowRecord{
			window("1", "firefox", false),
			window("2", "firefox", true),
		}},
		actions, &fakeLauncher{})

	result, err := engine.LaunchOrToggle("firefox")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.WindowID != "1" || result.Action != ActionMinimized {
		t.Errorf("expected first window minimized, got %+v", result)
	}
	if len(actions.calls) != 1 {
		t.Errorf("sibling windows must be ignored, got %v", actions.calls)
	}
}

func TestEngine_UnknownAppFails(t *testing.T) {
	engine := newTestEngine(fakeApps{}, fakeWindows{}, &fakeActions{}, &fakeLauncher{})
	if _, err := engine.LaunchOrToggle("ghost"); !errors.Is(err, registry.ErrAppNotFound) {
		t.Errorf("expected ErrAppNotFound, got %v", err)
	}
}

func TestEngine_ScanFailureFallsThroughToLaunch(t *testing.T) {
	launch := &fakeLauncher{}
	engine := newTestEngine(firefoxApps(),
		fakeWindows{err: errors.New("no enumeration source")},
		&fakeActions{}, launch)

	result, err := engine.LaunchOrToggle("firefox")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Action != ActionLaunched {
		t.Errorf("expected launch on scan failure, got %+v", result)
	}
}

func TestEngine_LaunchFailurePropagates(t *testing.T) {
	launch := &fakeLauncher{err: launcher.ErrLaunchFailed}
	engine := newTestEngine(firefoxApps(), fakeWindows{}, &fakeActions{}, launch)

	if _, err := engine.LaunchOrToggle("firefox"); !errors.Is(err, launcher.ErrLaunchFailed) {
		t.Errorf("expected ErrLaunchFailed, got %v", err)
	}
}
