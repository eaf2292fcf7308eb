// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bonsai prints, searches and watches directory trees,
// listing each directory only when it is expanded.
package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"github.com/mitchellh/go-homedir"
	"github.com/muesli/termenv"

	"github.com/bonsai-go/bonsai/fstree"
	"github.com/bonsai-go/bonsai/node"
	"github.com/bonsai-go/bonsai/tree"
)

//go:generate core generate -add-types

// Config is the configuration information for the bonsai cli.
type Config struct {

	// Root is the directory to show. It may start with ~.
	Root string `posarg:"0" required:"-" default:"."`

	// Self shows the root directory itself as the single top node
	// instead of its entries.
	Self bool `flag:"s,self"`

	// Depth is the number of levels of directories to expand.
	Depth int `flag:"d,depth" default:"1"`

	// Format is the output format: text or yaml.
	Format string `flag:"f,format" default:"text"`

	// State is a TOML file that the expansion and selection state is
	// restored from before output, and saved to afterwards.
	State string `flag:"state"`

	// Query is the name to search for.
	Query string `cmd:"find" flag:"n,name,query"`

	// Limit is the maximum number of search results, or 0 for all.
	Limit int `cmd:"find" default:"20"`

	// Debounce is how many milliseconds to wait for more
	// changes before printing the tree again.
	Debounce int `cmd:"watch" default:"100"`
}

// stdout is where output is written.
var stdout io.Writer = os.Stdout

func main() { //types:skip
	cli.Run(options(), &Config{}, commands()...)
}

// options returns the cli options, which load bonsai.toml by default.
func options() *cli.Options {
	opts := cli.DefaultOptions("bonsai", "Bonsai prints, searches and watches lazily expanded directory trees.")
	opts.PrintSuccess = false
	return opts
}

// commands returns the bonsai commands, with print as the root command.
func commands() []*cli.Cmd[*Config] {
	return []*cli.Cmd[*Config]{
		{Func: Print, Name: "print", Root: true,
			Doc: "Print prints the tree of the root directory, expanded to the configured depth and any saved state"},
		{Func: Find, Name: "find",
			Doc: "Find prints the nodes of the tree, expanded to the configured depth, whose names best match the query"},
		{Func: Watch, Name: "watch",
			Doc: "Watch prints the tree and prints it again whenever one of its expanded directories changes, until interrupted"},
	}
}

// Print prints the tree of the root directory, expanded to the
// configured depth and any saved state.
func Print(c *Config) error {
	v, err := open(c)
	if err != nil {
		return err
	}
	if err := v.render(stdout); err != nil {
		return err
	}
	return v.saveState()
}

// Find prints the nodes of the tree, expanded to the configured depth,
// whose names best match the query.
func Find(c *Config) error {
	if c.Query == "" {
		return errors.New("bonsai find: a query is required")
	}
	v, err := open(c)
	if err != nil {
		return err
	}
	for _, m := range v.tree.Search(c.Query, c.Limit) {
		fmt.Fprintf(stdout, "%5.2f  %s\n", m.Score, m.Node.Content())
	}
	return nil
}

// Watch prints the tree and prints it again whenever one of its
// expanded directories changes, until interrupted.
func Watch(c *Config) error {
	v, err := open(c)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	changes := make(chan string, 64)
	w, err := fstree.NewWatcher(v.dir, func(dir string) {
		select {
		case changes <- dir:
		default:
		}
	})
	if err != nil {
		return err
	}
	defer w.Close()

	var keep []string
	if !c.Self {
		keep = append(keep, ".")
	}
	out := termenv.NewOutput(stdout)
	for {
		out.ClearScreen()
		if err := v.render(stdout); err != nil {
			return err
		}
		w.Sync(v.tree.Roots, keep...)
		select {
		case <-ctx.Done():
			return v.saveState()
		case dir := <-changes:
			dirs := collect(dir, changes, time.Duration(c.Debounce)*time.Millisecond)
			logx.PrintlnDebug("bonsai: reloading", len(dirs), "directories")
			v.reload(dirs)
		}
	}
}

// collect returns the given directory and those received on
// changes before no more arrive within the debounce duration.
func collect(dir string, changes <-chan string, debounce time.Duration) map[string]bool {
	dirs := map[string]bool{dir: true}
	timer := time.NewTimer(debounce)
	defer timer.Stop()
	for {
		select {
		case d := <-changes:
			dirs[d] = true
			timer.Reset(debounce)
		case <-timer.C:
			return dirs
		}
	}
}

// view is a tree of a directory being shown by a command.
type view struct {
	cfg     *Config
	dir     string
	backend *fstree.FS
	tree    *tree.Tree[string]
}

// open returns the view of the configured root directory.
func open(c *Config) (*view, error) {
	root, err := homedir.Expand(c.Root)
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("bonsai: %s is not a directory", abs)
	}
	v := newView(c, os.DirFS(abs), filepath.Base(abs))
	v.dir = abs
	return v, nil
}

// newView returns the view of the given file system, restoring the
// configured state and expanding to the configured depth.
func newView(c *Config, fsys fs.FS, name string) *view {
	b := fstree.NewFS(fsys)
	b.RootName = name
	v := &view{cfg: c, backend: b, tree: tree.New(topNodes(b, c.Self)...)}
	if c.State != "" {
		s, err := tree.OpenState(c.State)
		switch {
		case err == nil:
			v.tree.Restore(s, contentKey)
		case !errors.Is(err, fs.ErrNotExist):
			errors.Log(err)
		}
	}
	v.tree.ExpandUntil(c.Depth)
	return v
}

// topNodes returns the top nodes of the backend.
func topNodes(b fstree.Backend, self bool) []node.Node[string] {
	return fstree.BuildNodes(b, ".", self)
}

func contentKey(p string) string { return p }

// reload lists the given changed directories again, keeping
// the expansion and selection state of the tree.
func (v *view) reload(dirs map[string]bool) {
	s := v.tree.Snapshot(contentKey)
	if dirs["."] && !v.cfg.Self {
		v.tree.Roots = topNodes(v.backend, false)
	}
	v.tree.Walk(func(n node.Node[string]) bool {
		if b, ok := node.AsBranch(n); ok && b.IsExpanded() && dirs[b.Content()] {
			b.Reload()
		}
		return node.Continue
	})
	v.tree.Restore(s, contentKey)
}

// saveState saves the state of the tree if a state file is configured.
func (v *view) saveState() error {
	if v.cfg.State == "" {
		return nil
	}
	return errors.Log(tree.SaveState(v.cfg.State, v.tree.Snapshot(contentKey)))
}
