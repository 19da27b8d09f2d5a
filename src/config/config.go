package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// StrategyKind is the closed set of anonymization strategies a column can carry.
// The zero value is not valid; absence of a column mapping means StrategyKeep.
type StrategyKind string

const (
	StrategyKeep      StrategyKind = "keep"
	StrategyFirstName StrategyKind = "first_name"
	StrategyLastName  StrategyKind = "last_name"
	StrategyFullName  StrategyKind = "full_name"
	StrategyEmail     StrategyKind = "email"
	StrategyPhone     StrategyKind = "phone"
	StrategyMask      StrategyKind = "mask"
	StrategyFixed     StrategyKind = "fixed"
)

// ColumnStrategy is a tagged variant: every kind except StrategyFixed is carried
// by Kind alone, StrategyFixed additionally carries the replacement literal.
type ColumnStrategy struct {
	Kind       StrategyKind
	FixedValue string
}

func Keep() ColumnStrategy { return ColumnStrategy{Kind: StrategyKeep} }

func Fixed(text string) ColumnStrategy {
	return ColumnStrategy{Kind: StrategyFixed, FixedValue: text}
}

func Strategy(k StrategyKind) ColumnStrategy { return ColumnStrategy{Kind: k} }

func (s ColumnStrategy) String() string {
	if s.Kind == StrategyFixed {
		return fmt.Sprintf("fixed(%s)", s.FixedValue)
	}
	return string(s.Kind)
}

// MarshalYAML emits payload-free kinds as a bare snake_case string and the
// fixed strategy as a single-key mapping, e.g. `fixed: REDACTED_SECRET`.
func (s ColumnStrategy) MarshalYAML() (interface{}, error) {
	if s.Kind == StrategyFixed {
		return map[string]string{"fixed": s.FixedValue}, nil
	}
	return string(s.Kind), nil
}

func (s *ColumnStrategy) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var plain string
	if err := unmarshal(&plain); err == nil {
		switch StrategyKind(plain) {
		case StrategyKeep, StrategyFirstName, StrategyLastName, StrategyFullName,
			StrategyEmail, StrategyPhone, StrategyMask:
			s.Kind = StrategyKind(plain)
			s.FixedValue = ""
			return nil
		default:
			return fmt.Errorf("unknown column strategy %q", plain)
		}
	}

	var tagged map[string]string
	if err := unmarshal(&tagged); err != nil {
		return fmt.Errorf("invalid column strategy value: %w", err)
	}
	text, ok := tagged["fixed"]
	if !ok || len(tagged) != 1 {
		return fmt.Errorf("invalid column strategy mapping %v", tagged)
	}
	s.Kind = StrategyFixed
	s.FixedValue = text
	return nil
}

// TableConfig maps column names, case-sensitive as written in the dump,
// to their strategies.
type TableConfig struct {
	Columns map[string]ColumnStrategy `yaml:"columns"`
}

// StrategyFor returns the strategy for a column, defaulting to keep when
// the column is not configured.
func (t TableConfig) StrategyFor(columnName string) ColumnStrategy {
	if strategy, ok := t.Columns[columnName]; ok {
		return strategy
	}
	return Keep()
}

// AppConfig is the full anonymization plan: table name (possibly
// schema-qualified) to per-column strategies. It is built once before a run
// and read-only afterwards.
type AppConfig struct {
	Tables map[string]TableConfig `yaml:"tables"`
}

func NewAppConfig() *AppConfig {
	return &AppConfig{Tables: map[string]TableConfig{}}
}

// ResolveTable looks up a table by its full name first and falls back to the
// unqualified name (the last dot-separated segment). Dumps qualify table names
// inconsistently between scans and runs, so both spellings must hit the same
// entry. If neither form is present the table is untracked and the caller
// must pass the statement through untouched.
func (c *AppConfig) ResolveTable(tableName string) (TableConfig, bool) {
	if tableConfig, ok := c.Tables[tableName]; ok {
		return tableConfig, true
	}
	if idx := strings.LastIndex(tableName, "."); idx >= 0 {
		if tableConfig, ok := c.Tables[tableName[idx+1:]]; ok {
			return tableConfig, true
		}
	}
	return TableConfig{}, false
}

func Load(filePath string) (*AppConfig, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("open configuration file: %w", err)
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse YAML configuration %q: %w", filePath, err)
	}
	return &cfg, nil
}

func (c *AppConfig) Marshal() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("serialize configuration: %w", err)
	}
	return string(data), nil
}

func (c *AppConfig) Save(filePath string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("serialize configuration: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("write configuration file: %w", err)
	}
	return nil
}
