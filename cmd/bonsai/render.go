// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/bonsai-go/bonsai/fstree"
	"github.com/bonsai-go/bonsai/node"
)

// render writes the visible rows of the view in the configured format.
func (v *view) render(w io.Writer) error {
	switch v.cfg.Format {
	case "", "text":
		return writeText(w, v.tree.Rows())
	case "yaml":
		return writeYAML(w, v.tree.Roots)
	}
	return fmt.Errorf("bonsai: unknown format %q", v.cfg.Format)
}

// writeText writes one indented line per row, with directories
// colored when w is a terminal and selected rows marked with *.
func writeText(w io.Writer, rows []node.Node[string]) error {
	out := termenv.NewOutput(w)
	dirColor := out.Color("12")
	for _, n := range rows {
		marker, name := "  ", n.Name()
		if b, ok := node.AsBranch(n); ok {
			marker = "▸ "
			if b.IsExpanded() {
				marker = "▾ "
			}
			name = out.String(name).Foreground(dirColor).Bold().String()
		}
		if n.Selected().Value() {
			name += " *"
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", strings.Repeat("  ", n.Level()), marker, name); err != nil {
			return err
		}
	}
	return nil
}

// yamlNode is the YAML form of a visible node.
type yamlNode struct {
	Name     string      `yaml:"name"`
	Path     string      `yaml:"path"`
	Icon     string      `yaml:"icon"`
	Selected bool        `yaml:"selected,omitempty"`
	Children []*yamlNode `yaml:"children,omitempty"`
}

func toYAML(n node.Node[string]) *yamlNode {
	yn := &yamlNode{
		Name:     n.Name(),
		Path:     n.Content(),
		Icon:     fstree.IconOf(n).String(),
		Selected: n.Selected().Value(),
	}
	if b, ok := node.AsBranch(n); ok && b.IsExpanded() {
		for _, c := range b.Children {
			yn.Children = append(yn.Children, toYAML(c))
		}
	}
	return yn
}

// writeYAML writes the visible part of the tree as a YAML list.
func writeYAML(w io.Writer, roots []node.Node[string]) error {
	list := make([]*yamlNode, len(roots))
	for i, r := range roots {
		list[i] = toYAML(r)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(list); err != nil {
		return err
	}
	return enc.Close()
}
