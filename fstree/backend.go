// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fstree materializes [node.Node] trees of paths from a
// hierarchical storage backend such as a file system, lazily: the
// children of a directory are only listed when it is expanded.
package fstree

import (
	"io/fs"
	"path"

	"github.com/hack-pad/hackpadfs"
)

// Metadata is the information about a path that is needed
// to classify it in the tree.
type Metadata struct {

	// IsDir is whether the path is a directory.
	IsDir bool
}

// Backend is a hierarchical storage backend.
type Backend interface {

	// List returns the paths of the immediate entries of the given
	// directory, in the native order of the backend. It returns an
	// error if the path does not exist, is not a directory, or
	// cannot be read.
	List(dir string) ([]string, error)

	// Metadata returns the metadata of the given path.
	Metadata(name string) (Metadata, error)

	// Name returns the display name of the given path.
	Name(name string) string
}

// FS is a [Backend] for a [hackpadfs.FS], which includes any [fs.FS]
// such as [os.DirFS] and the in-memory file systems of hackpadfs.
// Paths are slash-separated and unrooted as in [fs.ValidPath],
// with "." naming the root of the file system.
type FS struct {

	// RootName is the display name of the root path ".".
	// If it is empty, "." is used.
	RootName string

	fsys hackpadfs.FS
}

// NewFS returns a new [FS] backend for the given file system.
func NewFS(fsys fs.FS) *FS {
	return &FS{fsys: fsys}
}

// FileSystem returns the underlying file system.
func (f *FS) FileSystem() fs.FS {
	return f.fsys
}

// List implements [Backend.List] using [hackpadfs.ReadDir].
func (f *FS) List(dir string) ([]string, error) {
	entries, err := hackpadfs.ReadDir(f.fsys, dir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(entries))
	for i, e := range entries {
		paths[i] = path.Join(dir, e.Name())
	}
	return paths, nil
}

// Metadata implements [Backend.Metadata] using [hackpadfs.Stat],
// which follows symbolic links.
func (f *FS) Metadata(name string) (Metadata, error) {
	info, err := hackpadfs.Stat(f.fsys, name)
	if err != nil {
		return Metadata{}, err
	}
	return Metadata{IsDir: info.IsDir()}, nil
}

// Name implements [Backend.Name] by returning the last element of the path.
func (f *FS) Name(name string) string {
	if name == "." && f.RootName != "" {
		return f.RootName
	}
	return path.Base(name)
}
