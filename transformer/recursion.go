package transformer

import (
	"data-accessor/kind"
	"data-accessor/node"
)

// RecursionResolver applies its base transformer to a value and then to
// every container or record nested in the result, so records buried inside
// maps and slices are converted too. Recursion happens for Array, Object and
// implicit targets only.
type RecursionResolver struct {
	base Transformer
}

func NewRecursionResolver(base Transformer) *RecursionResolver {
	return &RecursionResolver{base: base}
}

func (r *RecursionResolver) CanTransform(value any, target kind.Type) bool {
	return r.base.CanTransform(value, target)
}

func (r *RecursionResolver) Transform(value any, target kind.Type) (any, error) {
	out, err := r.base.Transform(value, target)
	if err != nil {
		return nil, err
	}

	if target != kind.None && target != kind.Array && target != kind.Object {
		return out, nil
	}

	switch node.Dispatch(out) {
	case node.DispatcherSlice:
		entries := node.Entries(out)
		rebuilt := make([]any, len(entries))
		for i, e := range entries {
			if rebuilt[i], err = r.child(e.Value, target); err != nil {
				return nil, err
			}
		}
		return rebuilt, nil

	case node.DispatcherMap:
		entries := node.Entries(out)
		rebuilt := make(map[string]any, len(entries))
		for _, e := range entries {
			if rebuilt[e.Key], err = r.child(e.Value, target); err != nil {
				return nil, err
			}
		}
		return rebuilt, nil
	}

	return out, nil
}

func (r *RecursionResolver) child(value any, target kind.Type) (any, error) {
	if !node.Dispatch(value).IsContainer() || !r.base.CanTransform(value, target) {
		return value, nil
	}

	return r.Transform(value, target)
}
