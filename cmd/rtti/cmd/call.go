// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"strings"

	"cogentcore.org/rtti/params"
	"cogentcore.org/rtti/rtti"
	"github.com/spf13/cobra"
)

func (a *app) callCmd() *cobra.Command {
	var values string
	cmd := &cobra.Command{
		Use:   "call CLASS METHOD [PARAMS...]",
		Short: "Call a method of a new object and print its result",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := rtti.TryCreate(args[0])
			if err != nil {
				return err
			}
			if values != "" {
				obj.AsObject().SetValues(values)
			}
			quoted := make([]string, len(args)-2)
			for i, arg := range args[2:] {
				quoted[i] = params.Quote(arg)
			}
			res, err := call(obj, args[1], strings.Join(quoted, " "))
			if err != nil {
				return err
			}
			if res != "" {
				fmt.Fprintln(cmd.OutOrStdout(), res)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&values, "values", "", "attributes to set before the call")
	return cmd
}

// call calls the named method of obj with parameters in their
// textual form and returns its result as a string.
func call(obj rtti.Object, method, args string) (string, error) {
	m := obj.AsObject().Method(method)
	if m == nil {
		return "", fmt.Errorf("%w: class %s has no method %q", rtti.ErrUnknownMember, obj.Class().Name(), method)
	}
	if n := len(params.Parse(args)); n != m.NumParams() {
		return "", fmt.Errorf("%w: %s %s takes %d parameters, got %d", rtti.ErrSignatureMismatch, method, m.Signature(), m.NumParams(), n)
	}
	return m.CallWithReturn(args), nil
}
