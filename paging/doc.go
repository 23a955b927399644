// Package paging provides stateless, token-based pagination over any
// ordered and countable data source.
//
// A traversal is described entirely by an opaque page token handed back to
// the caller with every page. Replaying the token resumes the traversal, so
// no session state has to survive between requests and any instance behind
// a load balancer can serve the next page.
//
// # Basic Usage
//
// Implement Source for the data set, or use one of the adapters under
// source/:
//
//	page, err := paging.Paginate(ctx, src, 20, r.URL.Query().Get("page_token"))
//	if err != nil {
//	    return err
//	}
//	// page.Items, page.NextToken ("" on the last page), page.TotalItems
//
// # Tokens
//
// A token is "b:" followed by the standard base64 encoding of the JSON
// page state:
//
//	{"total_count":100,"page_size":10,"remaining":90,"page_num":1,"offset":10,"elements_fetched":10}
//
// The prefix names the encoding scheme. DecodeToken rejects anything that
// is not a complete, well-typed, self-consistent state with ErrInvalidToken.
//
// # Consistency
//
// The total is counted once, when a traversal starts without a token, and
// then travels inside the token. Rows inserted or deleted afterwards are
// not reflected in the total; a traversal over a changing source can skip
// or repeat elements. Snapshot isolation, if needed, belongs to the Source.
//
// # Page Size Changes
//
// A continuation request may ask for a different page size. The new size
// is used from that step on while the offset keeps the position reached
// with the previous size.
//
// # Errors
//
//   - ErrInvalidArgument: non-positive page size, rejected before any I/O
//   - ErrInvalidToken: token failed to decode at any stage
//   - ErrSource: Count or FetchSlice failed; the backend error is wrapped
//     in a *SourceError and is reachable with errors.As / errors.Unwrap
//
// Reaching the last page is not an error; it is signaled by an empty
// NextToken.
package paging
