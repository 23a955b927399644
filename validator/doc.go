// Package validator turns go-playground validation errors into messages
// keyed by the field names clients use.
package validator
