// Package hclsource loads named equation systems from HCL files.
//
// A file holds any number of system blocks:
//
//	system "circuit" {
//	  description = "two loop currents"
//	  equations   = ["x + 2y = -4", "8x + y = 9"]
//	  reduced     = true
//	}
//
// A path may name a single .hcl file or a directory, which is walked in
// lexical order. System names must be unique across everything loaded.
package hclsource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/matthewg-rev/fmatrix-solver/internal/ctxlog"
)

var (
	// ErrNoSystems indicates that the loaded files define no system block.
	ErrNoSystems = errors.New("hclsource: no system blocks found")

	// ErrSystemNotFound indicates that Select was asked for an unknown name.
	ErrSystemNotFound = errors.New("hclsource: system not found")

	// ErrDuplicateSystem indicates two system blocks with the same name.
	ErrDuplicateSystem = errors.New("hclsource: duplicate system name")

	// ErrNoEquations indicates a system block with an empty equations list.
	ErrNoEquations = errors.New("hclsource: system has no equations")
)

// System is one decoded system block.
type System struct {
	Name        string
	Description string
	Equations   []string
	Reduced     bool
	File        string
}

// hclSystem is the decoding target of a single system block.
type hclSystem struct {
	Name        string   `hcl:"name,label"`
	Description *string  `hcl:"description,optional"`
	Equations   []string `hcl:"equations"`
	Reduced     *bool    `hcl:"reduced,optional"`
}

// hclFile represents the top-level structure of a systems file for decoding.
type hclFile struct {
	Systems []*hclSystem `hcl:"system,block"`
}

// Load parses every .hcl file under path and returns their systems in file
// order, then block order.
func Load(ctx context.Context, path string) ([]System, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := findHCLFiles(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "path", path, "count", len(files))

	parser := hclparse.NewParser()
	var out []System
	for _, file := range files {
		f, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}
		systems, err := decode(file, f.Body)
		if err != nil {
			return nil, err
		}
		out = append(out, systems...)
	}

	if err = check(out); err != nil {
		return nil, err
	}
	logger.Debug("HCL loading complete.", "systems", len(out))

	return out, nil
}

// Parse decodes src as the content of filename.
func Parse(filename string, src []byte) ([]System, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	systems, err := decode(filename, f.Body)
	if err != nil {
		return nil, err
	}
	if err = check(systems); err != nil {
		return nil, err
	}

	return systems, nil
}

// Select returns the system called name, or the first one when name is empty.
func Select(systems []System, name string) (System, error) {
	if len(systems) == 0 {
		return System{}, ErrNoSystems
	}
	if name == "" {
		return systems[0], nil
	}
	for _, s := range systems {
		if s.Name == name {
			return s, nil
		}
	}

	return System{}, fmt.Errorf("%q: %w", name, ErrSystemNotFound)
}

// decode maps the system blocks of one file body.
func decode(filename string, body hcl.Body) ([]System, error) {
	var parsed hclFile
	if diags := gohcl.DecodeBody(body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}

	out := make([]System, 0, len(parsed.Systems))
	for _, b := range parsed.Systems {
		s := System{Name: b.Name, Equations: b.Equations, File: filename}
		if b.Description != nil {
			s.Description = *b.Description
		}
		if b.Reduced != nil {
			s.Reduced = *b.Reduced
		}
		if len(s.Equations) == 0 {
			return nil, fmt.Errorf("%s: system %q: %w", filename, s.Name, ErrNoEquations)
		}
		out = append(out, s)
	}

	return out, nil
}

// check rejects empty results and duplicate names.
func check(systems []System) error {
	if len(systems) == 0 {
		return ErrNoSystems
	}
	seen := make(map[string]string, len(systems))
	for _, s := range systems {
		if prev, ok := seen[s.Name]; ok {
			return fmt.Errorf("%q in %s and %s: %w", s.Name, prev, s.File, ErrDuplicateSystem)
		}
		seen[s.Name] = s.File
	}

	return nil
}

// findHCLFiles returns path itself when it is a file, or every .hcl file
// below it in lexical order.
func findHCLFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing path %s: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Ext(p) == ".hcl" {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
