// Package tzdir provides the timezone directory: a curated table of timezones
// with display names, base UTC offsets and common abbreviations, embedded in
// the binary and searchable by free-text query.
package tzdir

import (
	_ "embed"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"gopkg.in/yaml.v3"
)

//go:embed zones.yaml
var zonesYAML []byte

// Info is one directory entry. Key is the unique identifier; display names
// and offsets may repeat across entries.
type Info struct {
	Key           string   `yaml:"key"`
	Display       string   `yaml:"name"`
	OffsetMinutes int      `yaml:"offset"`
	Abbreviations []string `yaml:"abbreviations"`

	// Location is resolved from Key when the directory is loaded.
	Location *time.Location `yaml:"-"`
}

// OffsetLabel formats the entry's base offset as GMT±HH:MM for directory
// listings. The offset in effect at a given instant may differ; live clocks
// derive their label from the instant instead.
func (i Info) OffsetLabel() string {
	off := i.OffsetMinutes
	sign := "+"
	if off < 0 {
		sign = "-"
		off = -off
	}
	return fmt.Sprintf("GMT%s%02d:%02d", sign, off/60, off%60)
}

// Load parses the embedded directory and resolves every entry's location.
func Load() ([]Info, error) {
	var raw struct {
		Zones []Info `yaml:"zones"`
	}
	if err := yaml.Unmarshal(zonesYAML, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse timezone directory: %w", err)
	}
	for idx := range raw.Zones {
		loc, err := time.LoadLocation(raw.Zones[idx].Key)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone %q in directory: %w", raw.Zones[idx].Key, err)
		}
		raw.Zones[idx].Location = loc
	}
	return raw.Zones, nil
}

// Find returns the directory entry with the given IANA key.
func Find(dir []Info, key string) (Info, bool) {
	for _, info := range dir {
		if info.Key == key {
			return info, true
		}
	}
	return Info{}, false
}

// Resolve looks up key in the directory, falling back to an ad-hoc entry for
// any valid IANA key outside the curated table. The fallback display name is
// the last path segment with underscores replaced, e.g. "Los Angeles".
func Resolve(dir []Info, key string, now time.Time) (Info, error) {
	if info, ok := Find(dir, key); ok {
		return info, nil
	}
	loc, err := time.LoadLocation(key)
	if err != nil {
		return Info{}, fmt.Errorf("unknown timezone %q: %w", key, err)
	}
	display := key
	if idx := strings.LastIndex(key, "/"); idx >= 0 {
		display = key[idx+1:]
	}
	display = strings.ReplaceAll(display, "_", " ")
	_, off := now.In(loc).Zone()
	return Info{
		Key:           key,
		Display:       display,
		OffsetMinutes: off / 60,
		Location:      loc,
	}, nil
}
