package data

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Driver interfaces define contracts for the backends a page source can
// read from. Following the design pattern of database/sql, drivers register
// themselves from init() and are looked up at runtime by configured name.

// DatabaseDriver defines the interface for database drivers.
type DatabaseDriver interface {
	// Name returns the driver identifier (e.g., "postgres", "mysql", "sqlite")
	Name() string

	// Connect establishes a new database connection using the provided configuration.
	Connect(ctx context.Context, cfg any) (any, error)

	// Close terminates the database connection and releases resources.
	Close(conn any) error

	// Ping verifies the connection is alive and functional.
	Ping(ctx context.Context, conn any) error
}

// CacheDriver defines the interface for key-value store drivers.
type CacheDriver interface {
	Name() string
	Connect(ctx context.Context, cfg any) (any, error)
	Close(conn any) error
	Ping(ctx context.Context, conn any) error
}

// SearchDriver defines the interface for search engine drivers.
type SearchDriver interface {
	Name() string
	Connect(ctx context.Context, cfg any) (any, error)
	Close(conn any) error
}

type namedDriver interface {
	Name() string
}

// registry is a name-keyed driver table guarded by a mutex.
type registry[D namedDriver] struct {
	kind    string
	mu      sync.RWMutex
	drivers map[string]D
}

func newRegistry[D namedDriver](kind string) *registry[D] {
	return &registry[D]{kind: kind, drivers: make(map[string]D)}
}

func (r *registry[D]) register(fn string, driver D) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if any(driver) == nil {
		panic(fmt.Sprintf("data: %s driver is nil", fn))
	}

	name := driver.Name()
	if name == "" {
		panic(fmt.Sprintf("data: %s driver name is empty", fn))
	}

	if _, exists := r.drivers[name]; exists {
		panic(fmt.Sprintf("data: %s called twice for driver %s", fn, name))
	}

	r.drivers[name] = driver
}

func (r *registry[D]) get(name string) (D, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	driver, ok := r.drivers[name]
	if !ok {
		return driver, fmt.Errorf(
			"data: %s driver %q not registered\n\n"+
				"Did you forget to import the driver package?\n"+
				"Add to your imports:\n"+
				"    _ \"github.com/ncobase/sqlpage/data/%s\"\n\n"+
				"Available drivers: %v",
			r.kind, name, name, r.namesLocked(),
		)
	}
	return driver, nil
}

func (r *registry[D]) names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.namesLocked()
}

// reset clears the registry. Tests only.
func (r *registry[D]) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.drivers = make(map[string]D)
}

// namesLocked must be called with the lock held.
func (r *registry[D]) namesLocked() []string {
	names := make([]string, 0, len(r.drivers))
	for name := range r.drivers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var (
	databaseDrivers = newRegistry[DatabaseDriver]("database")
	cacheDrivers    = newRegistry[CacheDriver]("cache")
	searchDrivers   = newRegistry[SearchDriver]("search")
)

// RegisterDatabaseDriver makes a database driver available by the provided name.
// It is intended to be called from the init function in driver packages.
//
//	func init() {
//	    data.RegisterDatabaseDriver(&driver{})
//	}
//
// If RegisterDatabaseDriver is called twice with the same name or if driver is nil,
// it panics.
func RegisterDatabaseDriver(driver DatabaseDriver) {
	databaseDrivers.register("RegisterDatabaseDriver", driver)
}

// RegisterCacheDriver makes a cache driver available by the provided name.
func RegisterCacheDriver(driver CacheDriver) {
	cacheDrivers.register("RegisterCacheDriver", driver)
}

// RegisterSearchDriver makes a search engine driver available by the provided name.
func RegisterSearchDriver(driver SearchDriver) {
	searchDrivers.register("RegisterSearchDriver", driver)
}

// GetDatabaseDriver retrieves a registered database driver by name.
func GetDatabaseDriver(name string) (DatabaseDriver, error) {
	return databaseDrivers.get(name)
}

// GetCacheDriver retrieves a registered cache driver by name.
func GetCacheDriver(name string) (CacheDriver, error) {
	return cacheDrivers.get(name)
}

// GetSearchDriver retrieves a registered search engine driver by name.
func GetSearchDriver(name string) (SearchDriver, error) {
	return searchDrivers.get(name)
}

// ListRegisteredDrivers returns a snapshot of all registered drivers.
func ListRegisteredDrivers() map[string][]string {
	return map[string][]string{
		"database": databaseDrivers.names(),
		"cache":    cacheDrivers.names(),
		"search":   searchDrivers.names(),
	}
}
