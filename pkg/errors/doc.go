// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUnavailable,
//	    "failed to fetch build manifest",
//	    cause,
//	    map[string]interface{}{
//	        "source": source,
//	    },
//	)
//
// CodeOf finds the code anywhere in a wrapped chain, so callers can add
// fmt.Errorf context without losing the classification:
//
//	if errors.HasCode(err, errors.ErrCodeNotFound) {
//	    // no build matched
//	}
//
// ErrorCode.Retryable marks codes whose failures are transient (upstream
// unavailable, timeouts, rate limiting). The HTTP layer maps codes to status
// codes and the retryable flag; see server.WriteErrorFromErr.
package errors
