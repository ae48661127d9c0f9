package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blossom-graphql/blossom/errors"
)

func TestScanImports(t *testing.T) {
	type testCase struct {
		description string
		text        string
		expected    []*Import
	}

	dir := string(filepath.Separator) + filepath.Join("schemas", "app")
	file := filepath.Join(dir, "main.graphql")

	tests := []testCase{{
		description: "recognizes a full import",
		text:        `#import "./types.graphql"`,
		expected:    []*Import{{Path: filepath.Join(dir, "types.graphql"), All: true}},
	}, {
		description: "recognizes a named import",
		text:        `#import { User, Post } from "./types.graphql"`,
		expected:    []*Import{{Path: filepath.Join(dir, "types.graphql"), Names: []string{"User", "Post"}}},
	}, {
		description: "accepts single quotes, a trailing semicolon and whitespace after the hash",
		text:        `# import 'other/common.graphql';`,
		expected:    []*Import{{Path: filepath.Join(dir, "other", "common.graphql"), All: true}},
	}, {
		description: "resolves parent-relative paths",
		text:        `#import "../shared.graphql"`,
		expected:    []*Import{{Path: string(filepath.Separator) + filepath.Join("schemas", "shared.graphql"), All: true}},
	}, {
		description: "leaves ordinary comments and declarations alone",
		text: "# just a comment\ntype User { id: ID! }\n#importantly not an import\n",
		expected:    nil,
	}, {
		description: "a full import supersedes named entries for the same path",
		text: `#import { User } from "./types.graphql"
#import "./types.graphql"`,
		expected: []*Import{{Path: filepath.Join(dir, "types.graphql"), All: true}},
	}, {
		description: "a named import is ignored once a full import is recorded",
		text: `#import "./types.graphql"
#import { User } from "./types.graphql"`,
		expected: []*Import{{Path: filepath.Join(dir, "types.graphql"), All: true}},
	}, {
		description: "named members merge without duplicates",
		text: `#import { User } from "./types.graphql"
#import { User, Post } from "./types.graphql"`,
		expected: []*Import{{Path: filepath.Join(dir, "types.graphql"), Names: []string{"User", "Post"}}},
	}}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			m := scanImports(file, test.text)
			assert.Equal(t, test.expected, m.Imports)
		})
	}
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, text := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	}
	return dir
}

func TestLoadVisitsDiamondOnce(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.graphql": "#import \"./b.graphql\"\n#import \"./c.graphql\"\ntype A { x: String }\n",
		"b.graphql": "#import \"./d.graphql\"\ntype B { x: String }\n",
		"c.graphql": "#import \"./d.graphql\"\ntype C { x: String }\n",
		"d.graphql": "type D { x: String }\n",
	})

	graph, err := Load(filepath.Join(dir, "a.graphql"))
	require.NoError(t, err)
	require.Len(t, graph, 4)

	d := graph[filepath.Join(dir, "d.graphql")]
	require.NotNil(t, d)
	assert.Empty(t, d.Manifest.Imports)
	assert.Equal(t, "type D { x: String }\n", d.Text)
}

func TestLoadIsIdempotent(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.graphql": "#import { B } from \"./b.graphql\"\ntype A { b: B! }\n",
		"b.graphql": "type B { x: String }\n",
	})
	entry := filepath.Join(dir, "a.graphql")

	first, err := Load(entry)
	require.NoError(t, err)
	second, err := Load(entry)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoadMissingImport(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.graphql": "#import \"./nope.graphql\"\ntype A { x: String }\n",
	})

	_, err := Load(filepath.Join(dir, "a.graphql"))
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.ImportRead))
}

func TestLoadReportsCycle(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.graphql": "#import \"./b.graphql\"\ntype A { x: String }\n",
		"b.graphql": "#import \"./a.graphql\"\ntype B { x: String }\n",
	})

	_, err := Load(filepath.Join(dir, "a.graphql"))
	require.Error(t, err)
	assert.True(t, errors.IsKind(err, errors.ImportCycle))
}
