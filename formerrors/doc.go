// Package formerrors provides structured error types for formtools.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between different categories
// of errors and implement appropriate recovery strategies.
//
// # Error Categories
//
//   - SchemaError: schema defects detected during a mapping pass, such as
//     arrays of arrays or a scalar conversion reached with a non-scalar
//     type, and failures to load a schema definition
//   - ConfigError: invalid mapper configuration or options
//   - SourceError: value source lookup failures
//
// # Usage with errors.Is
//
//	changed, err := m.Map(ctx, entity, es, whitelist)
//	if err != nil {
//	    if errors.Is(err, formerrors.ErrNestedArray) {
//	        // The schema declares an array of arrays, which is unsupported.
//	    }
//	}
package formerrors
