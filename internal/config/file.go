package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/abhisek/tenfold/internal/session"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Drill DrillConfig `toml:"drill"`
}

// DrillConfig maps drill settings. Unset keys stay nil and leave the
// current value alone.
type DrillConfig struct {
	Operations *[]string `toml:"operations"`
	Factors    *[]int    `toml:"factors"`
	Difficulty *string   `toml:"difficulty"`
	Mode       *string   `toml:"mode"`
	Count      *int      `toml:"count"`
	Minutes    *int      `toml:"minutes"`
	Advance    *string   `toml:"advance"`
}

// LoadFile reads a TOML config from the given path. Missing file is not an error.
func LoadFile(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return FileConfig{}, fmt.Errorf("decode config: unknown keys %s", strings.Join(keys, ", "))
	}
	return cfg, nil
}

// Apply copies every key present in the file onto s.
func (f FileConfig) Apply(s *Settings) {
	d := f.Drill
	if d.Operations != nil {
		s.Operations = append([]string(nil), (*d.Operations)...)
	}
	if d.Factors != nil {
		s.Factors = append([]int(nil), (*d.Factors)...)
	}
	applyString(&s.Difficulty, d.Difficulty)
	applyString(&s.Mode, d.Mode)
	applyInt(&s.Count, d.Count)
	applyInt(&s.Minutes, d.Minutes)
	applyString(&s.Advance, d.Advance)
}

func applyString(target, value *string) {
	if value != nil {
		*target = *value
	}
}

func applyInt(target, value *int) {
	if value != nil {
		*target = *value
	}
}

// Template renders a commented config file listing every key and its default.
func Template() string {
	d := Defaults()
	return fmt.Sprintf(`# tenfold configuration
# Uncomment a value to enable it. Environment variables (TENFOLD_*) override
# the file, and command-line flags override both.

[drill]
# operations = %s   # "multiply", "divide"
# factors = %s          # any of 10, 100, 1000
# difficulty = %q             # "whole", "decimal" or "mixed"
# mode = %q                   # "count" or "duration"
# count = %d                       # tasks per session (%d-%d)
# minutes = %d                      # session length in duration mode (%d-%d)
# advance = %q           # "on-correct", "every-attempt" or "manual"
`,
		quoteList(d.Operations),
		intList(d.Factors),
		d.Difficulty,
		d.Mode,
		d.Count, session.MinCount, session.MaxCount,
		d.Minutes, session.MinMinutes, session.MaxMinutes,
		d.Advance,
	)
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = strconv.Quote(s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

func intList(items []int) string {
	parts := make([]string, len(items))
	for i, n := range items {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
