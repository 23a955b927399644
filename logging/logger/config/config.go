package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config configuration struct
type Config struct {
	Level           int              `json:"level" yaml:"level"`
	Format          string           `json:"format" yaml:"format"`
	Output          string           `json:"output" yaml:"output"`
	OutputFile      string           `json:"output_file" yaml:"output_file"`
	Name            string           `json:"name" yaml:"name"`
	Desensitization *Desensitization `json:"desensitization" yaml:"desensitization"`
}

// GetConfig returns the logger configuration
func GetConfig(v *viper.Viper) *Config {
	if !v.IsSet("logger") {
		return nil
	}

	name := strings.ToLower(v.GetString("app_name") + "-" + v.GetString("run_mode"))

	return &Config{
		Level:           v.GetInt("logger.level"),
		Format:          v.GetString("logger.format"),
		Output:          v.GetString("logger.output"),
		OutputFile:      v.GetString("logger.output_file"),
		Name:            strings.Trim(name, "-"),
		Desensitization: getDesensitizationConfigs(v),
	}
}
