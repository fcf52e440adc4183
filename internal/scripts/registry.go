package scripts

import (
	"fmt"
	"sort"
	"strings"

	"ssf/internal/config"
	"ssf/pkg/types"
)

// Constructor builds a script bound to one invocation's config and
// working directory.
type Constructor func(cfg *config.Config, workDir string) Script

// Registry maps operation names to script constructors. The table is
// static: a new operation registers itself here (or via Register) by
// satisfying the Script contract, nothing is discovered dynamically.
type Registry struct {
	cfg          *config.Config
	workDir      string
	constructors map[string]Constructor
}

// NewRegistry creates a registry with the built-in scripts registered.
func NewRegistry(cfg *config.Config, workDir string) *Registry {
	r := &Registry{
		cfg:          cfg,
		workDir:      workDir,
		constructors: make(map[string]Constructor),
	}
	r.Register("rename", func(cfg *config.Config, dir string) Script { return NewRename(cfg, dir) })
	r.Register("delete", func(cfg *config.Config, dir string) Script { return NewDelete(cfg, dir) })
	return r
}

// Register adds an operation to the table, replacing any previous
// entry of the same name.
func (r *Registry) Register(name string, c Constructor) {
	r.constructors[name] = c
}

// Names returns the registered operation names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get builds the script registered under name.
func (r *Registry) Get(name string) (Script, bool) {
	c, ok := r.constructors[name]
	if !ok {
		return nil, false
	}
	return c(r.cfg, r.workDir), true
}

// Execute dispatches params to the named operation. An unknown name
// yields a failed result listing the valid names for caller display.
func (r *Registry) Execute(name string, p Params) *types.Result {
	script, ok := r.Get(name)
	if !ok {
		res := types.Failure(fmt.Sprintf("unknown operation %q (available: %s)",
			name, strings.Join(r.Names(), ", ")))
		res.Script = name
		return res
	}
	res := script.Execute(p)
	res.Script = name
	return res
}

// List returns introspection records for every registered operation.
// It has no side effects.
func (r *Registry) List() []types.ScriptInfo {
	infos := make([]types.ScriptInfo, 0, len(r.constructors))
	for _, name := range r.Names() {
		script, _ := r.Get(name)
		infos = append(infos, types.ScriptInfo{
			Name:                script.Name(),
			Description:         script.Description(),
			SupportedExtensions: script.SupportedExtensions(),
			ConfigKeys:          script.ConfigKeys(),
		})
	}
	return infos
}
