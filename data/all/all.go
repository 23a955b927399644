// Package all registers every data driver at once.
//
// Import this package to make all backends selectable from configuration:
//
//	import _ "github.com/ncobase/sqlpage/data/all"
//
// Binaries that only need one backend should import its driver package
// directly:
//
//	import _ "github.com/ncobase/sqlpage/data/postgres"
package all

import (
	// Database drivers
	_ "github.com/ncobase/sqlpage/data/mongodb"
	_ "github.com/ncobase/sqlpage/data/mysql"
	_ "github.com/ncobase/sqlpage/data/postgres"
	_ "github.com/ncobase/sqlpage/data/sqlite"

	// Cache drivers
	_ "github.com/ncobase/sqlpage/data/redis"

	// Search drivers
	_ "github.com/ncobase/sqlpage/data/elasticsearch"
	_ "github.com/ncobase/sqlpage/data/meilisearch"
)
