// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"cogentcore.org/rtti/rtti"
	"github.com/spf13/cobra"
)

func (a *app) classesCmd() *cobra.Command {
	var (
		base      string
		module    string
		recursive bool
		abstract  bool
	)
	cmd := &cobra.Command{
		Use:   "classes",
		Short: "List the registered classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := rtti.FindOptions{Recursive: recursive, IncludeAbstract: abstract}
			if module != "" {
				m := rtti.ModuleByName(module)
				if m == nil {
					return fmt.Errorf("unknown module %q", module)
				}
				opts.Module = m.ID
			}
			if base != "" {
				if _, err := rtti.ClassByNameTry(base); err != nil {
					return err
				}
			}
			w := cmd.OutOrStdout()
			for _, c := range rtti.FindClasses(base, opts) {
				fmt.Fprintf(w, "%s %s\n", nameColor.Sprint(c.Name()), faint.Sprintf("(%s) %s", c.Module().Name, c.Description()))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&base, "base", "", "only list classes derived from this class")
	cmd.Flags().StringVar(&module, "module", "", "only list classes of this module")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "include indirectly derived classes")
	cmd.Flags().BoolVar(&abstract, "abstract", true, "include classes without constructors")
	return cmd
}

func (a *app) modulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List the modules that declare classes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, m := range rtti.Modules() {
				version := ""
				if m.Version != nil {
					version = " " + m.Version.String()
				}
				fmt.Fprintf(w, "%d %s%s %s\n", m.ID, nameColor.Sprint(m.Name), version, faint.Sprintf("%s (%s, %s)", m.Package, m.Vendor, m.License))
			}
			return nil
		},
	}
}
