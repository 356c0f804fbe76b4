// Package transcript loads live-reveal definitions: simulated terminal
// sessions made of prompt/input/output lines, or a reference to a source
// file that is typed out.
package transcript

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// TypeSourceFile marks a definition that reveals a source file.
	TypeSourceFile = "sourceFile"

	DefaultSpeed = 5
	MinSpeed     = 1
	MaxSpeed     = 10

	DefaultProgressChar = "█"
)

// File is a parsed transcript definition.
type File struct {
	Type     string `yaml:"type"`
	Speed    *int   `yaml:"speed"`
	File     string `yaml:"file"`
	Language string `yaml:"language"`
	Lines    []Line `yaml:"lines"`
}

// Line is one step of a simulated session.
type Line struct {
	Prompt       string `yaml:"prompt"`
	In           string `yaml:"in"`
	Out          string `yaml:"out"`
	Color        string `yaml:"color"`
	Bold         bool   `yaml:"bold"`
	Underline    bool   `yaml:"underline"`
	Progress     bool   `yaml:"progress"`
	ProgressChar string `yaml:"progressChar"`
}

// Load reads and parses the definition at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse transcript %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a YAML definition.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	if f.IsSourceFile() && f.File == "" {
		return nil, fmt.Errorf("%s transcript needs a file", TypeSourceFile)
	}
	return &f, nil
}

// IsSourceFile reports whether the definition reveals a source file.
func (f *File) IsSourceFile() bool {
	return f.Type == TypeSourceFile
}

// RawSpeed returns the configured speed, or DefaultSpeed when unset.
func (f *File) RawSpeed() int {
	if f.Speed == nil {
		return DefaultSpeed
	}
	return *f.Speed
}

// ClampSpeed limits speed to [MinSpeed, MaxSpeed]. clamped is true when the
// input was out of range.
func ClampSpeed(speed int) (v int, clamped bool) {
	switch {
	case speed < MinSpeed:
		return MinSpeed, true
	case speed > MaxSpeed:
		return MaxSpeed, true
	default:
		return speed, false
	}
}

// Delay converts a speed into the number of frames between reveal steps:
// speed 10 steps every frame, speed 1 every 10 frames.
func Delay(speed int) int {
	v, _ := ClampSpeed(speed)
	return MaxSpeed + 1 - v
}
