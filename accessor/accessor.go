// Package accessor reads and writes values at delimited paths inside nested
// maps, slices, arrays and records.
//
// Get and Has never fail: missing members, wrong node types and nil roots
// degrade to the default value or false. Set is copy-on-write: it returns a
// new root and leaves the original graph untouched.
package accessor

import (
	"strings"

	"github.com/sirupsen/logrus"

	"data-accessor/kind"
	"data-accessor/node"
	"data-accessor/transformer"
)

// Config holds the settings of an Accessor.
type Config struct {
	// Separator splits paths into segments. It must not be empty.
	Separator string
	// Transformer normalizes values before descending and coerces results
	// of GetAs.
	Transformer transformer.Transformer
	Logger      logrus.FieldLogger
}

// DefaultConfig returns a Config with "/" as separator, the shared default
// transformer and the standard logrus logger.
func DefaultConfig() Config {
	return Config{
		Separator:   "/",
		Transformer: transformer.Default(),
		Logger:      logrus.StandardLogger(),
	}
}

// Accessor is safe for concurrent use as long as its transformer is.
type Accessor struct {
	separator   string
	transformer transformer.Transformer
	log         logrus.FieldLogger
}

// New creates an Accessor. It panics when the separator is empty; a nil
// transformer or logger falls back to the defaults.
func New(cfg Config) *Accessor {
	if cfg.Separator == "" {
		panic("accessor: empty separator")
	}

	if cfg.Transformer == nil {
		cfg.Transformer = transformer.Default()
	}

	if cfg.Logger == nil {
		cfg.Logger = logrus.StandardLogger()
	}

	return &Accessor{
		separator:   cfg.Separator,
		transformer: cfg.Transformer,
		log:         cfg.Logger,
	}
}

func (a *Accessor) Separator() string {
	return a.separator
}

// Get returns the value at path, or def when any segment is missing.
func (a *Accessor) Get(data any, path string, def any) any {
	value, _ := a.get(data, a.parse(path), def, kind.None)
	return value
}

// GetAs is Get with the found value coerced into target when the
// transformer can. The default is returned as is. Only coercion fails.
func (a *Accessor) GetAs(data any, path string, def any, target kind.Type) (any, error) {
	return a.get(data, a.parse(path), def, target)
}

// Has reports whether every segment of path resolves. The empty path always
// resolves to the root.
func (a *Accessor) Has(data any, path string) bool {
	return a.has(data, a.parse(path))
}

// Set returns a copy of data with value stored at path. Missing containers
// are created as map[string]any, and a scalar in the way is replaced. Only
// records can refuse, with an *Error.
func (a *Accessor) Set(data any, path string, value any) (any, error) {
	return a.set(data, a.parse(path), 0, value)
}

func (a *Accessor) parse(path string) []string {
	return ParsePath(path, a.separator)
}

func (a *Accessor) get(data any, path []string, def any, target kind.Type) (any, error) {
	for _, key := range path {
		member, ok := node.Lookup(a.normalize(data), key)
		if !ok {
			return def, nil
		}

		data = member
	}

	if target == kind.None || !a.transformer.CanTransform(data, target) {
		return data, nil
	}

	a.log.WithFields(logrus.Fields{
		"type":   node.TypeName(data),
		"target": target,
	}).Debug("coercing value")

	return a.transformer.Transform(data, target)
}

func (a *Accessor) has(data any, path []string) bool {
	for _, key := range path {
		member, ok := node.Lookup(a.normalize(data), key)
		if !ok {
			return false
		}

		data = member
	}

	return true
}

func (a *Accessor) set(data any, path []string, depth int, value any) (any, error) {
	if depth == len(path) {
		return value, nil
	}

	data = a.normalize(data)
	key := path[depth]

	if data != nil && !node.Dispatch(data).IsContainer() {
		a.log.WithFields(logrus.Fields{
			"key":  key,
			"type": node.TypeName(data),
		}).Debug("replacing scalar with a new container")
	}

	out, err := node.Assoc(data, key, func(member any) (any, error) {
		return a.set(member, path, depth+1, value)
	})
	if err != nil {
		if _, ok := err.(*Error); ok {
			return nil, err
		}

		return nil, &Error{Path: strings.Join(path[:depth+1], a.separator), Err: err}
	}

	return out, nil
}

// normalize asks the transformer for an Object shape of error values, so
// the parts of an error can be addressed like members. Anything else, and
// any result that is not a container, leaves data unchanged.
func (a *Accessor) normalize(data any) any {
	if _, ok := data.(error); !ok || node.Dispatch(data) == node.DispatcherNull {
		return data
	}

	if !a.transformer.CanTransform(data, kind.Object) {
		return data
	}

	out, err := a.transformer.Transform(data, kind.Object)
	if err != nil {
		a.log.WithError(err).Debug("normalization failed")
		return data
	}

	if !node.Dispatch(out).IsContainer() {
		return data
	}

	a.log.WithField("type", node.TypeName(data)).Debug("normalized value")

	return out
}
