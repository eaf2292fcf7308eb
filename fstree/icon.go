// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fstree

import (
	"path"
	"strings"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/matchers"

	"github.com/bonsai-go/bonsai/node"
)

// Icon is the kind of icon that represents a file system node.
type Icon int

const (
	// IconFile is a file of no known family.
	IconFile Icon = iota

	// IconFolder is a collapsed directory.
	IconFolder

	// IconFolderOpen is an expanded directory.
	IconFolderOpen

	IconImage
	IconVideo
	IconAudio
	IconArchive
	IconDocument
)

var iconNames = [...]string{"file", "folder", "folder-open", "image", "video", "audio", "archive", "document"}

func (i Icon) String() string {
	if i < 0 || int(i) >= len(iconNames) {
		return "file"
	}
	return iconNames[i]
}

// IconOf returns the icon for the given node: a folder for a branch,
// open when it is expanded, and otherwise the icon of the file family
// of its extension.
func IconOf(n node.Node[string]) Icon {
	if b, ok := node.AsBranch(n); ok {
		if b.IsExpanded() {
			return IconFolderOpen
		}
		return IconFolder
	}
	return FileIcon(n.Content())
}

// FileIcon returns the icon of the file family of the extension
// of the given file path, as known to [filetype].
func FileIcon(name string) Icon {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(name), "."))
	if ext == "" {
		return IconFile
	}
	typ := filetype.GetType(ext)
	if typ == filetype.Unknown {
		return IconFile
	}
	switch {
	case typ.MIME.Type == "image":
		return IconImage
	case typ.MIME.Type == "video":
		return IconVideo
	case typ.MIME.Type == "audio":
		return IconAudio
	}
	if _, ok := matchers.Archive[typ]; ok {
		return IconArchive
	}
	if _, ok := matchers.Document[typ]; ok {
		return IconDocument
	}
	return IconFile
}
