// Package blossom compiles a graph of GraphQL schema files connected by
// #import directives into declaration bundles ready for code emission. The
// pipeline is resolve (build the file graph), parse (one declaration
// dictionary per file) and link (resolve every cross-file reference for a
// target file).
package blossom

import (
	"sync"

	"github.com/vektah/gqlparser/v2/ast"
	gqlparser "github.com/vektah/gqlparser/v2/parser"
	"golang.org/x/sync/errgroup"

	"github.com/blossom-graphql/blossom/internal/linker"
	"github.com/blossom-graphql/blossom/internal/loader"
	"github.com/blossom-graphql/blossom/internal/parser"
	"github.com/blossom-graphql/blossom/log"
	"github.com/blossom-graphql/blossom/types"
)

// Compiler drives the pipeline. Every run starts from an empty accumulator;
// no state persists between runs.
type Compiler struct {
	Logger log.Logger
}

func New() *Compiler {
	return &Compiler{Logger: &log.DefaultLogger{}}
}

// Compile resolves the import graph rooted at entry, parses every file in
// it and links the entry file into a bundle.
func (c *Compiler) Compile(entry string) (*types.Bundle, error) {
	files, err := c.parseGraph(entry)
	if err != nil {
		return nil, err
	}
	abs, err := loader.AbsPath(entry)
	if err != nil {
		return nil, err
	}
	return linker.Link(abs, files)
}

// CompileTargets parses the graph rooted at entry once and links every
// listed target against it. Targets link concurrently; the parsed graph is
// frozen by then, so no locking is needed around the lookups.
func (c *Compiler) CompileTargets(entry string, targets []string) (map[string]*types.Bundle, error) {
	files, err := c.parseGraph(entry)
	if err != nil {
		return nil, err
	}

	bundles := make(map[string]*types.Bundle, len(targets))
	var mu sync.Mutex
	var g errgroup.Group
	for _, target := range targets {
		target := target
		g.Go(func() error {
			abs, err := loader.AbsPath(target)
			if err != nil {
				return err
			}
			bundle, err := linker.Link(abs, files)
			if err != nil {
				return err
			}
			mu.Lock()
			bundles[abs] = bundle
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return bundles, nil
}

// parseGraph loads the file graph and parses every file into its
// dictionary. File parses fan out; the merge into the set is the single
// writer. The returned set is complete and read-only.
func (c *Compiler) parseGraph(entry string) (linker.FileSet, error) {
	graph, err := loader.Load(entry)
	if err != nil {
		return nil, err
	}

	files := make(linker.FileSet, len(graph))
	var mu sync.Mutex
	var g errgroup.Group
	for path, src := range graph {
		path, src := path, src
		g.Go(func() error {
			doc, perr := gqlparser.ParseSchema(&ast.Source{Name: src.Path, Input: src.Text})
			if perr != nil {
				return perr
			}
			dict, err := parser.Parse(src.Path, doc)
			if err != nil {
				return err
			}
			mu.Lock()
			files[path] = &linker.ParsedFile{Source: src, Dictionary: dict}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if c.Logger != nil {
		for path, pf := range files {
			for _, d := range pf.Dictionary.Duplicates {
				c.Logger.Warnf("%s: %s %q defined more than once; the later declaration wins", path, d.Kind, d.Name)
			}
		}
	}
	return files, nil
}

// Compile links the entry file of a schema graph with default settings.
func Compile(entry string) (*types.Bundle, error) {
	return New().Compile(entry)
}
