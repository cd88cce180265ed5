package app

import (
	"context"
	"sort"

	"github.com/felixgeelhaar/hyperpm/internal/adapters/logging"
	"github.com/felixgeelhaar/hyperpm/internal/domain/config"
	"github.com/felixgeelhaar/hyperpm/internal/domain/platform"
	"github.com/felixgeelhaar/hyperpm/internal/ports"
)

// CoreModule is the refresh module that maintains the Kanbn Boards extension.
const CoreModule = "hyperpm_core"

// Registry holds refresh modules by name.
type Registry struct {
	refreshers map[string]Refresher
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{refreshers: make(map[string]Refresher)}
}

// Register adds r, replacing any module with the same name.
func (reg *Registry) Register(r Refresher) {
	reg.refreshers[r.Name()] = r
}

// Names returns the registered module names in sorted order.
func (reg *Registry) Names() []string {
	names := make([]string, 0, len(reg.refreshers))
	for name := range reg.refreshers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select returns the named modules in the order given, or every module when
// names is empty. Duplicates are dropped. An unknown name is a
// *config.UserError.
func (reg *Registry) Select(names []string) ([]Refresher, error) {
	if len(names) == 0 {
		names = reg.Names()
	}

	seen := make(map[string]bool, len(names))
	selected := make([]Refresher, 0, len(names))
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true

		r, ok := reg.refreshers[name]
		if !ok {
			return nil, config.NewModuleNotFoundError(name, reg.Names())
		}
		selected = append(selected, r)
	}
	return selected, nil
}

// Result pairs a module with the outcome of its run.
type Result struct {
	Module  string
	Outcome Outcome
}

// RunAll runs each refresher in turn. A module that needs manual follow-up
// does not stop the ones after it.
func RunAll(ctx context.Context, refreshers []Refresher) []Result {
	results := make([]Result, 0, len(refreshers))
	for _, r := range refreshers {
		if ctx.Err() != nil {
			break
		}
		results = append(results, Result{Module: r.Name(), Outcome: r.Run(ctx)})
	}
	return results
}

// Dependencies are the collaborators shared by the built-in modules.
type Dependencies struct {
	Runner   ports.CommandRunner
	Finder   ports.ExecutableFinder
	Platform *platform.Platform
	Logger   ports.Logger
}

// NewDefaultRegistry registers the built-in modules configured by cfg.
func NewDefaultRegistry(deps Dependencies, cfg *config.Config) *Registry {
	logger := logging.OrNop(deps.Logger)

	reg := NewRegistry()
	reg.Register(NewExtensionRefresher(ExtensionRefresherOptions{
		Module:         CoreModule,
		ExtensionID:    cfg.Refresh.Extension,
		Platform:       deps.Platform,
		Finder:         deps.Finder,
		Runner:         deps.Runner,
		Logger:         logger.With(ports.F("module", CoreModule)),
		ListTimeout:    cfg.Refresh.ListTimeout.Std(),
		InstallTimeout: cfg.Refresh.InstallTimeout.Std(),
	}))
	return reg
}
