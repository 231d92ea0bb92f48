package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mobile-next/swipecli/gesture"
	"gopkg.in/ini.v1"
)

// DefaultProfile is used when no profile is named
const DefaultProfile = "default"

const (
	keyHorizontal               = "horizontal"
	keyVertical                 = "vertical"
	keyLeft                     = "left"
	keyRight                    = "right"
	keyUp                       = "up"
	keyDown                     = "down"
	keyContinuous               = "continuous"
	keyInitialVelocityThreshold = "initial_velocity_threshold"
	keyVerticalThreshold        = "vertical_threshold"
	keyHorizontalThreshold      = "horizontal_threshold"
	keyReportGestureState       = "report_gesture_state"
)

// Profiles maps profile names to gesture configurations
type Profiles map[string]gesture.Config

// BuiltinProfiles returns the profiles available without a config file
func BuiltinProfiles() Profiles {
	all := gesture.DefaultConfig()
	all.Horizontal = true
	all.Vertical = true

	horizontal := gesture.DefaultConfig()
	horizontal.Horizontal = true

	vertical := gesture.DefaultConfig()
	vertical.Vertical = true

	return Profiles{
		DefaultProfile: all,
		"horizontal":   horizontal,
		"vertical":     vertical,
	}
}

// Names returns the profile names in sorted order
func (p Profiles) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the named profile, or the default profile when name is empty
func (p Profiles) Get(name string) (gesture.Config, error) {
	if name == "" {
		name = DefaultProfile
	}

	c, ok := p[name]
	if !ok {
		return gesture.Config{}, fmt.Errorf("profile not found: %s (available: %s)", name, strings.Join(p.Names(), ", "))
	}
	return c, nil
}

// LoadFile reads profiles from an INI file on top of the builtin ones. Every
// section is a profile; keys missing from a section keep their defaults.
func LoadFile(path string) (Profiles, error) {
	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return parse(file)
}

// LoadBytes is LoadFile for in-memory content
func LoadBytes(data []byte) (Profiles, error) {
	file, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse profiles: %w", err)
	}
	return parse(file)
}

func parse(file *ini.File) (Profiles, error) {
	profiles := BuiltinProfiles()

	for _, section := range file.Sections() {
		name := section.Name()
		if name == ini.DefaultSection {
			if len(section.Keys()) == 0 {
				continue
			}
			name = DefaultProfile
		}

		c, err := parseSection(section)
		if err != nil {
			return nil, fmt.Errorf("profile %s: %w", name, err)
		}
		profiles[name] = c
	}

	return profiles, nil
}

func parseSection(section *ini.Section) (gesture.Config, error) {
	c := gesture.DefaultConfig()

	bools := []struct {
		key    string
		target *bool
	}{
		{keyHorizontal, &c.Horizontal},
		{keyVertical, &c.Vertical},
		{keyLeft, &c.Left},
		{keyRight, &c.Right},
		{keyUp, &c.Up},
		{keyDown, &c.Down},
		{keyContinuous, &c.Continuous},
		{keyReportGestureState, &c.ReportGestureState},
	}

	for _, b := range bools {
		if !section.HasKey(b.key) {
			continue
		}
		v, err := section.Key(b.key).Bool()
		if err != nil {
			return gesture.Config{}, fmt.Errorf("invalid value for %s: %w", b.key, err)
		}
		*b.target = v
	}

	floats := []struct {
		key    string
		target *float64
	}{
		{keyInitialVelocityThreshold, &c.InitialVelocityThreshold},
		{keyVerticalThreshold, &c.VerticalThreshold},
		{keyHorizontalThreshold, &c.HorizontalThreshold},
	}

	for _, f := range floats {
		if !section.HasKey(f.key) {
			continue
		}
		v, err := section.Key(f.key).Float64()
		if err != nil {
			return gesture.Config{}, fmt.Errorf("invalid value for %s: %w", f.key, err)
		}
		if v < 0 {
			return gesture.Config{}, fmt.Errorf("%s must be non-negative, got %v", f.key, v)
		}
		*f.target = v
	}

	for _, key := range section.KeyStrings() {
		if !knownKey(key) {
			return gesture.Config{}, fmt.Errorf("unknown key: %s", key)
		}
	}

	return c, nil
}

func knownKey(key string) bool {
	switch key {
	case keyHorizontal, keyVertical, keyLeft, keyRight, keyUp, keyDown,
		keyContinuous, keyInitialVelocityThreshold, keyVerticalThreshold,
		keyHorizontalThreshold, keyReportGestureState:
		return true
	}
	return false
}
