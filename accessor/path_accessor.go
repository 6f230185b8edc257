package accessor

import (
	"data-accessor/kind"
)

// PathAccessor binds a path, parsed once, to an Accessor.
type PathAccessor struct {
	accessor *Accessor
	path     []string
}

// At returns a PathAccessor for path.
func (a *Accessor) At(path string) *PathAccessor {
	return &PathAccessor{accessor: a, path: a.parse(path)}
}

func (p *PathAccessor) Get(data any, def any) any {
	value, _ := p.accessor.get(data, p.path, def, kind.None)
	return value
}

func (p *PathAccessor) GetAs(data any, def any, target kind.Type) (any, error) {
	return p.accessor.get(data, p.path, def, target)
}

func (p *PathAccessor) Has(data any) bool {
	return p.accessor.has(data, p.path)
}

func (p *PathAccessor) Set(data any, value any) (any, error) {
	return p.accessor.set(data, p.path, 0, value)
}

// Segments returns a copy of the parsed path.
func (p *PathAccessor) Segments() []string {
	return append([]string(nil), p.path...)
}
