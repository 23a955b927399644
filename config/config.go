package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	dc "github.com/ncobase/sqlpage/data/config"
	lc "github.com/ncobase/sqlpage/logging/logger/config"
	"github.com/ncobase/sqlpage/observes"
	"github.com/ncobase/sqlpage/source"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SQLPAGE_SERVER_PORT.
const EnvPrefix = "SQLPAGE"

var (
	config *Config
	path   string
	once   sync.Once
	mu     sync.Mutex
	v      *viper.Viper
)

// Config represents the configuration implementation.
type Config struct {
	AppName  string
	RunMode  string
	Server   *Server
	Paging   *Paging
	Logger   *lc.Config
	Data     *dc.Config
	Source   *source.Config
	Observes *observes.Config
	Viper    *viper.Viper
}

func init() {
	v = newViper()
}

func newViper() *viper.Viper {
	nv := viper.New()
	nv.SetEnvPrefix(EnvPrefix)
	nv.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	nv.AutomaticEnv()
	return nv
}

// Init initializes and loads the configuration.
func Init() (cfg *Config, err error) {
	once.Do(func() {
		cfg, err = loadConfiguration()
	})
	return cfg, err
}

// GetConfig returns the configuration.
func GetConfig() (*Config, error) {
	mu.Lock()
	current := config
	mu.Unlock()
	if current != nil {
		return current, nil
	}
	cfg, err := Init()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}
	if cfg == nil {
		return nil, fmt.Errorf("config not loaded")
	}
	return cfg, nil
}

// SetPath sets the file Init and Reload read from. An empty path searches
// the default locations.
func SetPath(p string) {
	mu.Lock()
	defer mu.Unlock()
	path = p
}

// loadConfiguration loads the configuration from the file and sets it globally.
func loadConfiguration() (*Config, error) {
	mu.Lock()
	p := path
	mu.Unlock()

	cfg, err := load(v, p)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	mu.Lock()
	config = cfg
	mu.Unlock()
	return cfg, nil
}

// LoadConfig loads the configuration from configPath, or from the default
// search paths when it is empty.
func LoadConfig(configPath string) (*Config, error) {
	return load(newViper(), configPath)
}

func load(v *viper.Viper, configPath string) (*Config, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		ex, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("failed to get executable path: %w", err)
		}
		v.SetConfigName("config")
		v.AddConfigPath("/etc/sqlpage")
		v.AddConfigPath("$HOME/.sqlpage")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Dir(ex))
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return FromViper(v), nil
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		AppName:  getStringOrDefault(v, "app_name", "sqlpage"),
		RunMode:  getStringOrDefault(v, "run_mode", "release"),
		Server:   getServerConfig(v),
		Paging:   getPagingConfig(v),
		Logger:   lc.GetConfig(v),
		Data:     dc.GetConfig(v),
		Source:   source.GetConfig(v),
		Observes: observes.GetConfig(v),
		Viper:    v,
	}
}

// Reload reloads the configuration from the file.
func Reload() error {
	mu.Lock()
	defer mu.Unlock()

	newConfig, err := load(v, path)
	if err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}

	config = newConfig
	return nil
}

// Watch watches the configuration file and reloads it when it changes.
func Watch(callback func(*Config)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		if err := Reload(); err != nil {
			fmt.Fprintf(os.Stderr, "Error reloading config: %v\n", err)
			return
		}
		mu.Lock()
		cfg := config
		mu.Unlock()
		callback(cfg)
	})
	v.WatchConfig()
}
