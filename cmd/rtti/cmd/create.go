// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"cogentcore.org/rtti/params"
	"cogentcore.org/rtti/rtti"
	"github.com/spf13/cobra"
)

func (a *app) createCmd() *cobra.Command {
	var (
		values string
		ctor   string
		args   string
		xml    bool
	)
	cmd := &cobra.Command{
		Use:   "create CLASS",
		Short: "Create an object and print its attributes",
		Long:  "create makes an object of a class with its default constructor, or with the constructor given by --constructor and --args, sets the attributes given by --values and prints all attributes.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, pos []string) error {
			obj, err := create(pos[0], ctor, args)
			if err != nil {
				return err
			}
			if values != "" {
				obj.AsObject().SetValues(values)
			}
			w := cmd.OutOrStdout()
			if xml {
				e := params.NewElement(obj.Class().Name())
				obj.AsObject().ValuesXML(e, rtti.WithDefault)
				return a.highlight(w, e.String()+"\n", "xml")
			}
			_, err = fmt.Fprintln(w, obj.AsObject().Values(rtti.WithDefault))
			return err
		},
	}
	cmd.Flags().StringVar(&values, "values", "", "attributes to set, such as 'Name=\"Lamp\" Range=5'")
	cmd.Flags().StringVarP(&ctor, "constructor", "c", "", "name of the constructor")
	cmd.Flags().StringVar(&args, "args", "", "parameters of the constructor")
	cmd.Flags().BoolVar(&xml, "xml", false, "print the attributes as XML")
	return cmd
}

// create returns a new object of the named class made by the named
// constructor with the given parameters, or by the default constructor
// if no constructor is named.
func create(className, ctor, args string) (rtti.Object, error) {
	if ctor == "" {
		return rtti.TryCreate(className)
	}
	c, err := rtti.ClassByNameTry(className)
	if err != nil {
		return nil, err
	}
	d := c.Constructor(ctor)
	if d == nil {
		return nil, fmt.Errorf("%w: class %s has no constructor %q", rtti.ErrUnknownMember, className, ctor)
	}
	if n := len(params.Parse(args)); n != d.Func().NumParams() {
		return nil, fmt.Errorf("%w: %s takes %d parameters, got %d", rtti.ErrSignatureMismatch, d.Signature(), d.Func().NumParams(), n)
	}
	obj := d.CreateString(args)
	if obj == nil {
		return nil, fmt.Errorf("%w: %s(%s)", rtti.ErrSignatureMismatch, ctor, args)
	}
	return obj, nil
}
