package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/diegoclair/event-reminder-bot/internal/domain"
	"github.com/diegoclair/event-reminder-bot/internal/domain/entity"
	"gopkg.in/yaml.v3"
)

//go:embed default_schedule.yaml
var defaultSchedule []byte

// ErrInvalidSchedule wraps every schedule validation failure
var ErrInvalidSchedule = errors.New("invalid schedule")

type scheduleFile struct {
	Events []eventConfig `yaml:"events"`
}

type eventConfig struct {
	Name     string     `yaml:"name"`
	Image    string     `yaml:"image"`
	Emoji    string     `yaml:"emoji"`
	Color    colorValue `yaml:"color"`
	Schedule []float64  `yaml:"schedule"`
}

// colorValue accepts a 24-bit RGB value as an integer (decimal or 0x hex)
// or as a "#rrggbb" string.
type colorValue struct {
	value int
	set   bool
}

func (c *colorValue) UnmarshalYAML(node *yaml.Node) error {
	raw := strings.TrimSpace(node.Value)
	var (
		v   int64
		err error
	)
	if strings.HasPrefix(raw, "#") {
		v, err = strconv.ParseInt(strings.TrimPrefix(raw, "#"), 16, 32)
	} else {
		v, err = strconv.ParseInt(raw, 0, 32)
	}
	if err != nil {
		return fmt.Errorf("invalid color %q: %w", node.Value, err)
	}
	if v < 0 || v > 0xffffff {
		return fmt.Errorf("color %q is not a 24-bit RGB value", node.Value)
	}
	c.value = int(v)
	c.set = true
	return nil
}

// LoadSchedule reads the schedule table from path, or the embedded default
// schedule when path is empty.
func LoadSchedule(path string) ([]entity.EventDefinition, error) {
	data := defaultSchedule
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read schedule file: %w", err)
		}
		data = b
	}
	return ParseSchedule(data)
}

// ParseSchedule decodes and validates a YAML schedule document.
func ParseSchedule(data []byte) ([]entity.EventDefinition, error) {
	var file scheduleFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}
	if len(file.Events) == 0 {
		return nil, fmt.Errorf("%w: no events defined", ErrInvalidSchedule)
	}

	seen := make(map[string]bool, len(file.Events))
	events := make([]entity.EventDefinition, 0, len(file.Events))
	for i, ev := range file.Events {
		name := strings.TrimSpace(ev.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: event #%d has no name", ErrInvalidSchedule, i+1)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: event %q declared twice", ErrInvalidSchedule, name)
		}
		seen[name] = true

		if len(ev.Schedule) == 0 {
			return nil, fmt.Errorf("%w: event %q has no schedule times", ErrInvalidSchedule, name)
		}

		times := make([]entity.ScheduleTime, 0, len(ev.Schedule))
		for _, t := range ev.Schedule {
			if err := validateScheduleTime(t); err != nil {
				return nil, fmt.Errorf("%w: event %q: %v", ErrInvalidSchedule, name, err)
			}
			times = append(times, entity.ScheduleTime(t))
		}

		def := entity.EventDefinition{
			Name:     name,
			ImageURL: ev.Image,
			Emoji:    ev.Emoji,
			Color:    domain.DefaultColor,
			Schedule: times,
		}
		if ev.Color.set {
			def.Color = ev.Color.value
		}
		if def.Emoji == "" {
			def.Emoji = domain.DefaultEmoji
		}
		events = append(events, def)
	}

	return events, nil
}

func validateScheduleTime(t float64) error {
	if t < 0 || t >= 24 {
		return fmt.Errorf("time %v is outside 0..23.5", t)
	}
	frac := t - math.Floor(t)
	if frac != 0 && frac != 0.5 {
		return fmt.Errorf("time %v must be a whole hour or a half hour (N.5)", t)
	}
	return nil
}
