package config

import (
	"github.com/spf13/viper"
)

// Config data config struct. A nil section means the backend is not
// configured and no connection is opened for it.
type Config struct {
	*Database      `yaml:"database" json:"database"`
	*Redis         `yaml:"redis" json:"redis"`
	*Meilisearch   `yaml:"meilisearch" json:"meilisearch"`
	*Elasticsearch `yaml:"elasticsearch" json:"elasticsearch"`
	*MongoDB       `yaml:"mongodb" json:"mongodb"`
}

// GetConfig returns data config
func GetConfig(v *viper.Viper) *Config {
	return &Config{
		Database:      getDatabaseConfig(v),
		Redis:         getRedisConfigs(v),
		Meilisearch:   getMeilisearchConfigs(v),
		Elasticsearch: getElasticsearchConfigs(v),
		MongoDB:       getMongoDBConfigs(v),
	}
}
