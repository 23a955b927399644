// Package ecode defines the business codes returned by the paging API and
// maps pagination errors onto them.
//
// # Error Code Convention
//
//   - 0: Success (OK)
//   - -400 to -499: Request errors
//   - -500+: Server errors
//
// # Pagination Errors
//
//	ecode.FromError(paging.ErrInvalidToken)    // -402: Invalid page token
//	ecode.FromError(paging.ErrInvalidArgument) // -401: Invalid parameters
//	ecode.FromError(&paging.SourceError{})     // -503: Service unavailable
//
// # HTTP Status Mapping
//
//	httpStatus := ecode.ToHTTPStatus(ecode.InvalidToken)
//	// Returns: 400
//
// # Usage with Response Package
//
//	code := ecode.FromError(err)
//	resp.Fail(w, &resp.Exception{
//	    Status:  ecode.ToHTTPStatus(code),
//	    Code:    code,
//	    Message: ecode.Text(code),
//	})
package ecode
