package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Server config struct
type Server struct {
	Host            string        `json:"host" yaml:"host"`
	Port            int           `json:"port" yaml:"port"`
	ReadTimeout     time.Duration `json:"read_timeout" yaml:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout" yaml:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
}

// Addr returns host:port.
func (s *Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func getServerConfig(v *viper.Viper) *Server {
	return &Server{
		Host:            getStringOrDefault(v, "server.host", "0.0.0.0"),
		Port:            getIntOrDefault(v, "server.port", 8080),
		ReadTimeout:     getDurationOrDefault(v, "server.read_timeout", 15*time.Second),
		WriteTimeout:    getDurationOrDefault(v, "server.write_timeout", 30*time.Second),
		ShutdownTimeout: getDurationOrDefault(v, "server.shutdown_timeout", 10*time.Second),
	}
}

// Paging holds the request defaults applied by the paginator.
type Paging struct {
	DefaultPageSize int64 `json:"default_page_size" yaml:"default_page_size"`
	MaxPageSize     int64 `json:"max_page_size" yaml:"max_page_size"`
}

func getPagingConfig(v *viper.Viper) *Paging {
	return &Paging{
		DefaultPageSize: int64(getIntOrDefault(v, "paging.default_page_size", 10)),
		MaxPageSize:     int64(getIntOrDefault(v, "paging.max_page_size", 1000)),
	}
}
