package observes

import (
	"time"

	"github.com/spf13/viper"
)

// Config groups the observability backends. A nil field disables it.
type Config struct {
	Tracer *TracerOption
	Sentry *SentryOption
}

// GetConfig reads the observes section
func GetConfig(v *viper.Viper) *Config {
	return &Config{
		Tracer: getTracerOption(v),
		Sentry: getSentryOption(v),
	}
}

func getTracerOption(v *viper.Viper) *TracerOption {
	if v.GetString("observes.tracer.endpoint") == "" {
		return nil
	}
	return &TracerOption{
		URL:                v.GetString("observes.tracer.endpoint"),
		Name:               getString(v, "observes.tracer.service_name", "sqlpage"),
		Version:            v.GetString("observes.tracer.service_version"),
		Environment:        v.GetString("observes.tracer.environment"),
		Insecure:           !v.GetBool("observes.tracer.tls_enabled"),
		Headers:            v.GetStringMapString("observes.tracer.headers"),
		SamplingRate:       getFloat64(v, "observes.tracer.sampling_rate", 1.0),
		MaxExportBatchSize: getInt(v, "observes.tracer.max_export_batch_size", 512),
		BatchTimeout:       getDuration(v, "observes.tracer.batch_timeout", 5*time.Second),
		ExportTimeout:      getDuration(v, "observes.tracer.export_timeout", 30*time.Second),
	}
}

func getSentryOption(v *viper.Viper) *SentryOption {
	if v.GetString("observes.sentry.endpoint") == "" {
		return nil
	}
	return &SentryOption{
		Dsn:         v.GetString("observes.sentry.endpoint"),
		Name:        getString(v, "observes.sentry.server_name", "sqlpage"),
		Release:     v.GetString("observes.sentry.release"),
		Environment: v.GetString("observes.sentry.environment"),
		SampleRate:  getFloat64(v, "observes.sentry.sample_rate", 1.0),
	}
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		return v.GetInt(key)
	}
	return def
}

func getFloat64(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		return v.GetFloat64(key)
	}
	return def
}

func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if v.IsSet(key) {
		return v.GetDuration(key)
	}
	return def
}
