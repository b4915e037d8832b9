// Package config loads batch generation jobs from a YAML file.
//
//	catalogs:
//	  - path: Resources/Assets.xcassets
//	    platform: ios
//	    output: Sources/Generated/Assets.swift
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/agentic-research/assetgen/api"
)

// Job is one catalog to generate.
type Job struct {
	Path     string       `yaml:"path"`
	Platform api.Platform `yaml:"platform"`
	// Output is the destination file. Empty or "-" writes to stdout.
	Output string `yaml:"output,omitempty"`
	// Verify runs the syntax check on the generated code.
	Verify bool `yaml:"verify,omitempty"`
}

// File is the top-level document.
type File struct {
	Catalogs []Job `yaml:"catalogs"`
}

// Load reads path and resolves relative job paths against its directory.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.resolve(filepath.Dir(path))
	return f, nil
}

// Parse decodes and validates a config document. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if len(f.Catalogs) == 0 {
		return nil, errors.New("config lists no catalogs")
	}
	for i, j := range f.Catalogs {
		if j.Path == "" {
			return nil, fmt.Errorf("catalogs[%d]: path is required", i)
		}
		p, err := api.ParsePlatform(string(j.Platform))
		if err != nil {
			return nil, fmt.Errorf("catalogs[%d]: %w", i, err)
		}
		f.Catalogs[i].Platform = p
	}
	return &f, nil
}

func (f *File) resolve(base string) {
	for i := range f.Catalogs {
		j := &f.Catalogs[i]
		if !filepath.IsAbs(j.Path) {
			j.Path = filepath.Join(base, j.Path)
		}
		if j.Output != "" && j.Output != "-" && !filepath.IsAbs(j.Output) {
			j.Output = filepath.Join(base, j.Output)
		}
	}
}
