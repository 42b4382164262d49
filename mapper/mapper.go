package mapper

import (
	"context"

	"github.com/erraggy/formtools/formerrors"
	"github.com/erraggy/formtools/schema"
)

// DefaultDelimiter separates path segments in whitelist entries and flat
// keys when no delimiter is configured.
const DefaultDelimiter = "_"

// Mapper performs mapping passes from a flat value source onto entities.
// Build one with New; the zero value is not usable.
type Mapper struct {
	source    ValueSource
	delimiter string
	overwrite bool
	logger    Logger
}

// Option configures a Mapper.
type Option func(*Mapper) error

// WithSource sets the value source flat keys are resolved against.
// A source is required.
func WithSource(src ValueSource) Option {
	return func(m *Mapper) error {
		m.source = src
		return nil
	}
}

// WithDelimiter sets the separator used to split whitelist paths and to
// join parent-path segments into flat keys. Defaults to "_".
func WithDelimiter(delim string) Option {
	return func(m *Mapper) error {
		if delim == "" {
			return &formerrors.ConfigError{Option: "delimiter", Message: "must not be empty"}
		}
		m.delimiter = delim
		return nil
	}
}

// WithOverwrite sets the write policy for scalar fields on keyed targets.
// When true (the default), an incoming value unconditionally overwrites;
// when false, a field is only filled if currently unset.
func WithOverwrite(overwrite bool) Option {
	return func(m *Mapper) error {
		m.overwrite = overwrite
		return nil
	}
}

// WithLogger sets the logger used for diagnostic output during passes.
// Defaults to a no-op logger.
func WithLogger(logger Logger) Option {
	return func(m *Mapper) error {
		if logger == nil {
			return &formerrors.ConfigError{Option: "logger", Message: "must not be nil"}
		}
		m.logger = logger
		return nil
	}
}

// New creates a Mapper from the given options. A value source is required.
func New(opts ...Option) (*Mapper, error) {
	m := &Mapper{
		delimiter: DefaultDelimiter,
		overwrite: true,
		logger:    NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	if m.source == nil {
		return nil, &formerrors.ConfigError{Option: "source", Message: "a value source is required"}
	}
	return m, nil
}

// Map runs one mapping pass: it walks es.Schema in declared order, pulls
// matching flat keys from the value source, and writes converted values
// into target. Only fields authorized by the whitelist are written; see the
// package documentation for the path rules.
//
// Each call is a fresh, self-contained construction pass. Map mutates
// target in place and reports whether any field was written. On a fatal
// error (unsupported schema shapes, source failures) the pass aborts;
// whatever was written before the failure is left on target at the
// caller's discretion.
func (m *Mapper) Map(ctx context.Context, target schema.Entity, es *schema.EntitySchema, whitelistEntries []string) (bool, error) {
	if target == nil {
		return false, &formerrors.ConfigError{Option: "target", Message: "must not be nil"}
	}
	if es == nil || es.Schema == nil {
		return false, &formerrors.ConfigError{Option: "schema", Message: "entity schema must carry a schema"}
	}

	wl := parseWhitelist(whitelistEntries, m.delimiter)
	parent := &parentPath{delim: m.delimiter}
	return m.walk(ctx, keyedTarget{entity: target}, es, wl, parent)
}
