package loader

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/blossom-graphql/blossom/errors"
)

// SourceFile is one schema file of the import graph, immutable once read.
type SourceFile struct {
	Path     string
	Text     string
	Manifest *Manifest
}

// Graph maps an absolute file path to its source file. It is built once by
// Load and treated as frozen afterwards.
type Graph map[string]*SourceFile

// importPattern recognizes both directive shapes on a single line:
//
//	#import "relative/path"
//	#import { TypeA, TypeB } from "relative/path"
//
// with single or double quotes and an optional trailing semicolon. Lines
// not matching are comments to the SDL grammar and are left alone.
var importPattern = regexp.MustCompile(`^#\s*import\s+(?:\{\s*([^}]*?)\s*\}\s+from\s+)?["']([^"']+)["']\s*;?\s*$`)

// AbsPath normalizes a schema path the same way graph keys are normalized.
func AbsPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Errorf(errors.ImportRead, "cannot resolve path %q: %s", path, err).WithFile(path).WithCause(err)
	}
	return abs, nil
}

// Load reads the entry file and every file reachable through import
// directives, producing the completed graph. A file that cannot be read
// fails the whole load with ImportReadError; a true import cycle is
// reported as ImportCycleError rather than silently terminated.
func Load(entry string) (Graph, error) {
	abs, err := AbsPath(entry)
	if err != nil {
		return nil, err
	}
	graph := make(Graph)
	if err := load(abs, graph, make(map[string]bool)); err != nil {
		return nil, err
	}
	return graph, nil
}

func load(path string, graph Graph, visiting map[string]bool) error {
	if visiting[path] {
		return errors.Errorf(errors.ImportCycle, "import cycle through %q", path).WithFile(path)
	}
	if _, ok := graph[path]; ok {
		// diamond-shaped graphs visit each file once
		return nil
	}
	visiting[path] = true
	defer delete(visiting, path)

	text, err := os.ReadFile(path)
	if err != nil {
		return errors.Errorf(errors.ImportRead, "cannot read schema file %q: %s", path, err).WithFile(path).WithCause(err)
	}

	file := &SourceFile{
		Path:     path,
		Text:     string(text),
		Manifest: scanImports(path, string(text)),
	}
	for _, imp := range file.Manifest.Imports {
		if err := load(imp.Path, graph, visiting); err != nil {
			return err
		}
	}
	graph[path] = file
	return nil
}

// scanImports walks the raw text line by line, resolving each import target
// relative to the importing file's directory and merging it into the
// manifest. No SDL parsing happens here.
func scanImports(path, text string) *Manifest {
	dir := filepath.Dir(path)
	m := &Manifest{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		match := importPattern.FindStringSubmatchIndex(line)
		if match == nil {
			continue
		}
		target := line[match[4]:match[5]]
		if !filepath.IsAbs(target) {
			target = filepath.Join(dir, target)
		}
		target = filepath.Clean(target)

		if match[2] < 0 {
			m.addWildcard(target)
			continue
		}
		var names []string
		for _, name := range strings.Split(line[match[2]:match[3]], ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
		m.addNamed(target, names)
	}
	return m
}
