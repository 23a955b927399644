package logger

import (
	"fmt"
	"strings"

	"github.com/ncobase/sqlpage/logging/logger/config"
	"github.com/sirupsen/logrus"
)

// Desensitizer masks the values of sensitive log fields.
type Desensitizer struct {
	config *config.Desensitization
	fields map[string]struct{}
}

// NewDesensitizer creates a new desensitizer instance
func NewDesensitizer(cfg *config.Desensitization) *Desensitizer {
	if cfg == nil {
		cfg = config.DefaultDesensitization()
	}
	d := &Desensitizer{
		config: cfg,
		fields: make(map[string]struct{}, len(cfg.SensitiveFields)),
	}
	for _, f := range cfg.SensitiveFields {
		d.fields[strings.ToLower(f)] = struct{}{}
	}
	return d
}

// DesensitizeFields returns a copy of fields with sensitive values masked.
func (d *Desensitizer) DesensitizeFields(fields logrus.Fields) logrus.Fields {
	if !d.config.Enabled || len(fields) == 0 {
		return fields
	}

	result := make(logrus.Fields, len(fields))
	for key, value := range fields {
		if d.isSensitiveField(key) && value != nil {
			result[key] = d.maskString(fmt.Sprint(value))
			continue
		}
		result[key] = value
	}
	return result
}

func (d *Desensitizer) isSensitiveField(name string) bool {
	_, ok := d.fields[strings.ToLower(name)]
	return ok
}

func (d *Desensitizer) maskString(s string) string {
	prefix := d.config.PreservePrefix
	if prefix < 0 || prefix >= len(s) {
		prefix = 0
	}
	return s[:prefix] + strings.Repeat(d.config.MaskChar, d.config.FixedMaskLength)
}
