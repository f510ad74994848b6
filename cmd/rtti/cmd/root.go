// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of the rtti command.
package cmd

import (
	"io"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// app holds the state shared by the commands of one invocation.
type app struct {
	configFile string
	config     *Config

	// flag values, applied over the config when set
	verbose bool
	color   bool
	style   string
}

// Root returns the root command with all subcommands.
func Root() *cobra.Command {
	a := &app{config: DefaultConfig()}
	root := &cobra.Command{
		Use:          "rtti",
		Short:        "Inspect and use reflected classes",
		Long:         "rtti lists the classes and modules linked into it, describes their members, creates objects and calls their methods.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.configure(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", DefaultConfigFile, "config file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log debug messages")
	pf.BoolVar(&a.color, "color", true, "color and highlight the output")
	pf.StringVar(&a.style, "style", "", "chroma style for highlighting")

	root.AddCommand(a.classesCmd(), a.classCmd(), a.modulesCmd(), a.createCmd(), a.callCmd())
	return root
}

// configure loads the config file and applies the flags given
// on the command line over it.
func (a *app) configure(cmd *cobra.Command) error {
	c, err := LoadConfig(a.configFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("verbose") {
		c.Verbose = a.verbose
	}
	if flags.Changed("color") {
		c.Color = a.color
	}
	if flags.Changed("style") {
		c.Style = a.style
	}
	a.config = c
	color.NoColor = !c.Color
	setLogger(cmd.ErrOrStderr(), c.Verbose)
	return nil
}

// highlight writes src in the given chroma language to w,
// highlighted if color is enabled.
func (a *app) highlight(w io.Writer, src, lang string) error {
	if !a.config.Color {
		_, err := io.WriteString(w, src)
		return err
	}
	return quick.Highlight(w, src, lang, "terminal256", a.config.Style)
}

var (
	nameColor = color.New(color.FgCyan, color.Bold)
	typeColor = color.New(color.FgYellow)
	faint     = color.New(color.Faint)
)
