package transformer

import (
	"fmt"

	"data-accessor/kind"
	"data-accessor/node"
)

// FirstMatchResolver delegates to the first transformer that accepts the
// value. Its target is used when the caller gives none.
type FirstMatchResolver struct {
	transformers []Transformer
	target       kind.Type
}

// NewFirstMatchResolver panics when a transformer is nil.
func NewFirstMatchResolver(transformers []Transformer, target kind.Type) *FirstMatchResolver {
	for i, t := range transformers {
		if t == nil {
			panic(fmt.Sprintf("transformer: nil transformer at index %d", i))
		}
	}

	return &FirstMatchResolver{transformers: transformers, target: target}
}

func (r *FirstMatchResolver) CanTransform(value any, target kind.Type) bool {
	return r.match(value, resolve(target, r.target)) != nil
}

func (r *FirstMatchResolver) Transform(value any, target kind.Type) (any, error) {
	target = resolve(target, r.target)

	t := r.match(value, target)
	if t == nil {
		return nil, &Error{
			Value:  value,
			Target: target,
			Reason: fmt.Sprintf("could not find transformer for %s", node.TypeName(value)),
			Err:    ErrNoTransformer,
		}
	}

	return t.Transform(value, target)
}

func (r *FirstMatchResolver) match(value any, target kind.Type) Transformer {
	for _, t := range r.transformers {
		if t.CanTransform(value, target) {
			return t
		}
	}

	return nil
}
