// Package version reports build metadata for the sqlpage binary.
//
// Set it at build time with ldflags:
//
//	go build -ldflags "\
//	  -X github.com/ncobase/sqlpage/version.Version=1.2.3 \
//	  -X github.com/ncobase/sqlpage/version.Branch=main \
//	  -X github.com/ncobase/sqlpage/version.Revision=abc1234 \
//	  -X 'github.com/ncobase/sqlpage/version.BuiltAt=$(date)'" ./cmd/sqlpage
package version
