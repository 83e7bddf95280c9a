// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInvalidRequest,
//	    "failed to compile extraction pattern",
//	    compileErr,
//	    map[string]interface{}{
//	        "pattern": pattern,
//	    },
//	)
package errors
