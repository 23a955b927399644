// Package resp provides the HTTP response helpers used by the paging API.
//
// # Response Structure
//
// Successful responses carry the payload as the JSON body. Failures follow
// a standard structure:
//
//	{
//	  "code": -402,                   // Business error code
//	  "message": "invalid page token", // Human-readable message
//	  "errors": {...}                 // Error details, if any
//	}
//
// # Success Responses
//
//	resp.Success(w, page)
//	resp.WithStatusCode(w, http.StatusCreated, token)
//
// # Error Responses
//
//	resp.Fail(w, resp.BadRequest("page_size invalid"))
//	resp.Fail(w, resp.FromError(err))
//
// FromError maps pagination errors through the ecode package, so an
// invalid token becomes a 400 with code -402 and a source failure becomes
// a 503 with code -503.
package resp
