package source

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Kinds of source.
const (
	KindMemory        = "memory"
	KindSQL           = "sql"
	KindMongoDB       = "mongodb"
	KindRedis         = "redis"
	KindElasticsearch = "elasticsearch"
	KindMeilisearch   = "meilisearch"
)

// Redis structures.
const (
	StructureList = "list"
	StructureZSet = "zset"
)

// Config selects and parameterizes the source pages are read from.
//
// Sort terms use the form "field" or "field:desc" for every kind.
type Config struct {
	Kind string `json:"kind" yaml:"kind" validate:"required,oneof=memory sql mongodb redis elasticsearch meilisearch"`
	// memory
	Size int `json:"size" yaml:"size" validate:"gte=0"`
	// sql
	Table   string   `json:"table" yaml:"table" validate:"required_if=Kind sql"`
	Columns []string `json:"columns" yaml:"columns"`
	Where   string   `json:"where" yaml:"where"`
	// mongodb
	Collection string `json:"collection" yaml:"collection" validate:"required_if=Kind mongodb"`
	Filter     string `json:"filter" yaml:"filter"`
	// redis
	Key       string `json:"key" yaml:"key" validate:"required_if=Kind redis"`
	Structure string `json:"structure" yaml:"structure" validate:"omitempty,oneof=list zset"`
	// elasticsearch, meilisearch
	Index string `json:"index" yaml:"index" validate:"required_if=Kind elasticsearch,required_if=Kind meilisearch"`
	Query string `json:"query" yaml:"query"`

	Sort []string `json:"sort" yaml:"sort"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that the fields the selected kind needs are set.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid source config: %w", err)
	}
	return nil
}

// GetConfig returns the source configuration
func GetConfig(v *viper.Viper) *Config {
	return &Config{
		Kind:       v.GetString("source.kind"),
		Size:       v.GetInt("source.size"),
		Table:      v.GetString("source.table"),
		Columns:    v.GetStringSlice("source.columns"),
		Where:      v.GetString("source.where"),
		Collection: v.GetString("source.collection"),
		Filter:     v.GetString("source.filter"),
		Key:        v.GetString("source.key"),
		Structure:  v.GetString("source.structure"),
		Index:      v.GetString("source.index"),
		Query:      v.GetString("source.query"),
		Sort:       v.GetStringSlice("source.sort"),
	}
}

// sortTerm is a parsed "field[:asc|desc]" term.
type sortTerm struct {
	field string
	desc  bool
}

func parseSort(terms []string) ([]sortTerm, error) {
	out := make([]sortTerm, 0, len(terms))
	for _, term := range terms {
		field, dir, _ := strings.Cut(strings.TrimSpace(term), ":")
		if field == "" {
			return nil, fmt.Errorf("invalid sort term %q", term)
		}
		switch strings.ToLower(dir) {
		case "", "asc":
			out = append(out, sortTerm{field: field})
		case "desc":
			out = append(out, sortTerm{field: field, desc: true})
		default:
			return nil, fmt.Errorf("invalid sort direction in %q", term)
		}
	}
	return out, nil
}
