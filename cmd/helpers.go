package cmd

import (
	"winctl/internal/action"
	"winctl/internal/backend"
	"winctl/internal/directory"
	"winctl/internal/launcher"
	"winctl/internal/registry"
	"winctl/internal/toggle"
)

// components bundles the wired-up core for one command invocation.
// Everything is rebuilt per run; no state survives across invocations.
type components struct {
	enum   *backend.Chain
	insp   backend.Inspector
	ctl    backend.Controller
	dir    *directory.Directory
	exec   *action.Executor
	reg    *registry.Registry
	launch *launcher.Launcher
	engine *toggle.Engine
}

// newComponents builds the backend chain and everything above it. A
// failed session-bus connection degrades the primary to the null
// backend: enumeration falls through to xdotool/wmctrl and property
// queries come back unavailable, but the tool keeps working.
func newComponents() *components {
	run := backend.ExecRunner{}

	var (
		primary backend.Enumerator
		insp    backend.Inspector
		ctl     backend.Controller
	)
	if shell, err := backend.NewShell(logger); err == nil {
		primary, insp, ctl = shell, shell, shell
	} else {
		logger.Warn().Err(err).Msg("compositor backend unavailable, falling back")
		null := backend.Null{}
		primary, insp, ctl = null, null, null
	}

	enum := backend.NewChain(logger, primary,
		backend.NewXdotool(run),
		backend.NewWmctrl(run),
	)

	dir := directory.New(enum, insp, logger)
	exec := action.NewExecutor(enum, ctl, logger)
	reg := registry.New(cfg.RegistryPath)
	launch := launcher.New(run, cfg.Launcher, logger)

	return &components{
		enum:   enum,
		insp:   insp,
		ctl:    ctl,
		dir:    dir,
		exec:   exec,
		reg:    reg,
		launch: launch,
		engine: toggle.NewEngine(reg, dir, exec, launch, logger),
	}
}
