// Package observes sets up tracing and error reporting, and decorates
// page sources with spans.
package observes
