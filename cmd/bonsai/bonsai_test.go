// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"cogentcore.org/core/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"a.txt":         {Data: []byte("a")},
		"sub/b.png":     {Data: []byte("b")},
		"sub/deep/c.go": {Data: []byte("package c")},
	}
}

func render(t *testing.T, v *view) string {
	var buf bytes.Buffer
	require.NoError(t, v.render(&buf))
	return buf.String()
}

func TestRenderText(t *testing.T) {
	v := newView(&Config{Depth: 1}, testFS(), "project")
	want := strings.Join([]string{
		"  a.txt",
		"▾ sub",
		"    b.png",
		"  ▸ deep",
		"",
	}, "\n")
	assert.Equal(t, want, render(t, v))

	v = newView(&Config{Depth: 0, Self: true}, testFS(), "project")
	assert.Equal(t, "▸ project\n", render(t, v))
}

func TestRenderSelected(t *testing.T) {
	v := newView(&Config{Depth: 0}, testFS(), "project")
	v.tree.Select(v.tree.Roots[0])
	assert.Equal(t, "  a.txt *\n▸ sub\n", render(t, v))
}

func TestRenderYAML(t *testing.T) {
	v := newView(&Config{Depth: 2, Self: true, Format: "yaml"}, testFS(), "project")
	var got []yamlNode
	require.NoError(t, yaml.Unmarshal([]byte(render(t, v)), &got))
	require.Len(t, got, 1)
	root := got[0]
	assert.Equal(t, "project", root.Name)
	assert.Equal(t, ".", root.Path)
	assert.Equal(t, "folder-open", root.Icon)
	require.Len(t, root.Children, 2)
	sub := root.Children[1]
	assert.Equal(t, "sub", sub.Path)
	require.Len(t, sub.Children, 2)
	assert.Equal(t, "image", sub.Children[0].Icon)
	assert.Equal(t, "folder", sub.Children[1].Icon)
	assert.Empty(t, sub.Children[1].Children)
}

func TestRenderUnknownFormat(t *testing.T) {
	v := newView(&Config{Format: "xml"}, testFS(), "project")
	assert.Error(t, v.render(&bytes.Buffer{}))
}

func TestReload(t *testing.T) {
	fsys := testFS()
	v := newView(&Config{Depth: 1}, fsys, "project")
	v.tree.Select(v.tree.Rows()[2])

	fsys["sub/new.txt"] = &fstest.MapFile{Data: []byte("new")}
	fsys["top.txt"] = &fstest.MapFile{Data: []byte("top")}
	v.reload(map[string]bool{"sub": true})
	assert.Contains(t, render(t, v), "    new.txt\n")
	assert.NotContains(t, render(t, v), "top.txt")
	assert.Contains(t, render(t, v), "    b.png *\n")

	v.reload(map[string]bool{".": true})
	out := render(t, v)
	assert.Contains(t, out, "  top.txt\n")
	assert.Contains(t, out, "▾ sub\n")
	assert.Contains(t, out, "    b.png *\n")
}

func TestCollect(t *testing.T) {
	changes := make(chan string, 4)
	changes <- "a"
	changes <- "b"
	dirs := collect("x", changes, 10*time.Millisecond)
	assert.Equal(t, map[string]bool{"x": true, "a": true, "b": true}, dirs)
}

func newTempDir(t *testing.T) string {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub", "deep"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "deep", "c.go"), []byte("package c"), 0o644))
	return dir
}

func capture(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = old })
	return &buf
}

func TestPrintState(t *testing.T) {
	dir := newTempDir(t)
	state := filepath.Join(t.TempDir(), "state.toml")
	buf := capture(t)

	require.NoError(t, Print(&Config{Root: dir, Depth: 2, State: state}))
	expanded := buf.String()
	assert.Contains(t, expanded, "      c.go\n")
	_, err := os.Stat(state)
	require.NoError(t, err)

	buf.Reset()
	require.NoError(t, Print(&Config{Root: dir, Depth: 0, State: state}))
	assert.Equal(t, expanded, buf.String())
}

func TestFind(t *testing.T) {
	dir := newTempDir(t)
	buf := capture(t)
	require.NoError(t, Find(&Config{Root: dir, Depth: 3, Query: "c.go", Limit: 5}))
	assert.Contains(t, buf.String(), "sub/deep/c.go")
	assert.Error(t, Find(&Config{Root: dir}))
}

func TestOpenErrors(t *testing.T) {
	dir := newTempDir(t)
	_, err := open(&Config{Root: filepath.Join(dir, "missing")})
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = open(&Config{Root: filepath.Join(dir, "a.txt")})
	assert.Error(t, err)

	v, err := open(&Config{Root: dir})
	require.NoError(t, err)
	assert.Equal(t, dir, v.dir)
}

// runArgs runs the bonsai commands with the given command line arguments.
func runArgs(t *testing.T, args ...string) error {
	old := os.Args
	os.Args = append([]string{"bonsai"}, args...)
	t.Cleanup(func() { os.Args = old })
	opts := options()
	opts.Fatal = false
	return cli.Run(opts, &Config{}, commands()...)
}

func TestRootCommand(t *testing.T) {
	dir := newTempDir(t)
	buf := capture(t)
	require.NoError(t, runArgs(t, dir, "-d", "2"))
	out := buf.String()
	assert.Contains(t, out, "  a.txt\n")
	assert.Contains(t, out, "▾ sub\n")
	assert.Contains(t, out, "      c.go\n")

	buf.Reset()
	require.NoError(t, runArgs(t, "print", dir, "-d", "2"))
	assert.Equal(t, out, buf.String())
}

func TestFindCommand(t *testing.T) {
	dir := newTempDir(t)
	buf := capture(t)
	require.NoError(t, runArgs(t, "find", dir, "-d", "3", "-n", "c.go"))
	assert.Contains(t, buf.String(), "sub/deep/c.go")

	buf.Reset()
	require.NoError(t, runArgs(t, "find", dir, "-d", "3", "-query", "c.go"))
	assert.Contains(t, buf.String(), "sub/deep/c.go")
}
