// Package config loads the sqlpage configuration with viper.
//
// A YAML, JSON or TOML file is read from the path given to SetPath, or from
// /etc/sqlpage, $HOME/.sqlpage, the working directory and the binary's
// directory. Any key can be overridden from the environment with the
// SQLPAGE_ prefix, dots replaced by underscores:
//
//	export SQLPAGE_SERVER_PORT=9000
//	export SQLPAGE_SOURCE_KIND=sql
//
// Example:
//
//	app_name: sqlpage
//	server:
//	  port: 8080
//	paging:
//	  default_page_size: 10
//	  max_page_size: 500
//	source:
//	  kind: sql
//	  table: events
//	  sort: ["created_at:desc", "id"]
//	data:
//	  database:
//	    driver: postgres
//	    source: postgres://localhost/app
//
// Watch reloads the file when it changes.
package config
