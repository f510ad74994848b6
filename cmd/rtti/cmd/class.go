// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"cogentcore.org/rtti/rtti"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// classDoc is the description of a class written by the class command.
type classDoc struct {
	Name         string            `yaml:"name"`
	ID           string            `yaml:"id"`
	Description  string            `yaml:"description,omitempty"`
	Base         string            `yaml:"base,omitempty"`
	Module       string            `yaml:"module"`
	Properties   map[string]string `yaml:"properties,omitempty"`
	Attributes   []attrDoc         `yaml:"attributes,omitempty"`
	Methods      []memberDoc       `yaml:"methods,omitempty"`
	Signals      []memberDoc       `yaml:"signals,omitempty"`
	Slots        []memberDoc       `yaml:"slots,omitempty"`
	Constructors []memberDoc       `yaml:"constructors,omitempty"`
}

type attrDoc struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Default     string `yaml:"default"`
	Access      string `yaml:"access"`
	Storage     string `yaml:"storage"`
	Description string `yaml:"description,omitempty"`
	Annotation  string `yaml:"annotation,omitempty"`
}

type memberDoc struct {
	Name        string `yaml:"name"`
	Signature   string `yaml:"signature"`
	Description string `yaml:"description,omitempty"`
}

func newClassDoc(c *rtti.Class) *classDoc {
	d := &classDoc{
		Name:        c.Name(),
		ID:          c.IDName(),
		Description: c.Description(),
		Base:        c.BaseName(),
		Module:      c.Module().Name,
	}
	props := c.Properties()
	for _, k := range props.Keys() {
		if d.Properties == nil {
			d.Properties = map[string]string{}
		}
		d.Properties[k] = props.String(k)
	}
	for _, m := range c.Attributes() {
		d.Attributes = append(d.Attributes, attrDoc{
			Name:        m.Name,
			Type:        m.TypeName,
			Default:     m.Default,
			Access:      m.Access.String(),
			Storage:     m.Storage.String(),
			Description: m.Description,
			Annotation:  m.Annotation,
		})
	}
	for _, m := range c.Methods() {
		d.Methods = append(d.Methods, memberDoc{m.Name, m.Signature(), m.Description})
	}
	for _, m := range c.Signals() {
		d.Signals = append(d.Signals, memberDoc{m.Name, m.Signature(), m.Description})
	}
	for _, m := range c.Slots() {
		d.Slots = append(d.Slots, memberDoc{m.Name, m.Signature(), m.Description})
	}
	for _, m := range c.Constructors() {
		d.Constructors = append(d.Constructors, memberDoc{m.Name, m.Signature(), m.Description})
	}
	return d
}

func (a *app) classCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "class NAME",
		Short: "Describe a class and its members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := rtti.ClassByNameTry(args[0])
			if err != nil {
				return err
			}
			if format == "" {
				format = a.config.Format
			}
			d := newClassDoc(c)
			w := cmd.OutOrStdout()
			switch format {
			case "yaml":
				b, err := yaml.Marshal(d)
				if err != nil {
					return err
				}
				return a.highlight(w, string(b), "yaml")
			case "text", "":
				writeClassText(w, d)
				return nil
			}
			return fmt.Errorf("unknown format %q", format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: text or yaml")
	return cmd
}

func writeClassText(w io.Writer, d *classDoc) {
	fmt.Fprintf(w, "%s %s\n", nameColor.Sprint(d.Name), faint.Sprintf("(%s)", d.Module))
	if d.Description != "" {
		fmt.Fprintf(w, "  %s\n", d.Description)
	}
	if d.Base != "" {
		fmt.Fprintf(w, "  base: %s\n", d.Base)
	}
	for _, k := range slices.Sorted(maps.Keys(d.Properties)) {
		fmt.Fprintf(w, "  %s: %s\n", k, d.Properties[k])
	}
	if len(d.Attributes) > 0 {
		fmt.Fprintln(w, "attributes:")
		for _, m := range d.Attributes {
			fmt.Fprintf(w, "  %s %s = %q %s\n", typeColor.Sprint(m.Type), m.Name, m.Default, faint.Sprintf("[%s, %s]", m.Access, m.Storage))
		}
	}
	writeMembers(w, "methods", d.Methods)
	writeMembers(w, "signals", d.Signals)
	writeMembers(w, "slots", d.Slots)
	writeMembers(w, "constructors", d.Constructors)
}

func writeMembers(w io.Writer, title string, ms []memberDoc) {
	if len(ms) == 0 {
		return
	}
	fmt.Fprintf(w, "%s:\n", title)
	for _, m := range ms {
		fmt.Fprintf(w, "  %s %s\n", m.Name, typeColor.Sprint(m.Signature))
	}
}
