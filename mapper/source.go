package mapper

import "context"

// ValueSource resolves flat keys to raw values. Sources may be backed by
// memory, a request body, a network service, or any other store; lookups
// within one mapping pass are issued strictly sequentially.
//
// Get returns the raw value and true when the key is present. An absent
// key is ordinary control flow, not an error: the field is left untouched.
// Lookups are attempted exactly once per pass; sources needing retries or
// timeouts should implement them internally or honor ctx.
type ValueSource interface {
	Get(ctx context.Context, key string) (any, bool, error)
}

// MapSource is the default ValueSource, reading from a flat key/value map.
type MapSource map[string]any

// Get implements ValueSource.
func (s MapSource) Get(_ context.Context, key string) (any, bool, error) {
	v, ok := s[key]
	return v, ok, nil
}

// Ensure MapSource implements ValueSource at compile time.
var _ ValueSource = MapSource{}

// SourceFunc adapts a function to the ValueSource interface.
type SourceFunc func(ctx context.Context, key string) (any, bool, error)

// Get implements ValueSource.
func (f SourceFunc) Get(ctx context.Context, key string) (any, bool, error) {
	return f(ctx, key)
}
