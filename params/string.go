// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package params parses and formats the textual and XML forms of
// parameter lists used to call functions and to set object values
// by name.
//
// The textual form is a whitespace-separated list of tokens, each of
// which is either Name="value" or a bare value:
//
//	Param0="1.5" Param1='spot light' Name=Lamp
//	1.5 "spot light"
//
// Values that contain spaces must be quoted. The shell operators
// ;&|<> have no meaning and are kept as part of the value, so that
// flag sets like Flags=Shadows|Flicker need no quotes.
package params

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode"

	"github.com/mattn/go-shellwords"
)

// Param is one entry of a parameter list.
// Name is empty for positional values.
type Param struct {
	Name  string
	Value string
}

// List is an ordered parameter list.
type List []Param

// Parse parses the textual form of a parameter list.
// A string that cannot be tokenized yields an empty list.
func Parse(s string) List {
	tokens, err := split(s)
	if err != nil {
		slog.Debug("params.Parse: invalid parameter string", "string", s, "err", err)
		return nil
	}
	l := make(List, 0, len(tokens))
	for _, tok := range tokens {
		name, value, ok := strings.Cut(tok, "=")
		if ok && isName(name) {
			l = append(l, Param{Name: name, Value: value})
			continue
		}
		l = append(l, Param{Value: tok})
	}
	return l
}

// split splits s into shell words. The shellwords parser stops at
// the first unquoted operator and reports its rune index in Position;
// split keeps the operator as literal text and goes on after it.
func split(s string) ([]string, error) {
	var words []string
	join := false // the next word continues the last one
	add := func(w string) {
		if join && len(words) > 0 {
			words[len(words)-1] += w
		} else {
			words = append(words, w)
		}
		join = false
	}
	rs := []rune(s)
	for len(rs) > 0 {
		p := shellwords.NewParser()
		ws, err := p.Parse(string(rs))
		if err != nil {
			return nil, err
		}
		if p.Position < 0 {
			for _, w := range ws {
				add(w)
			}
			break
		}
		// Position is before the operator for a redirect like 2>x.
		op := p.Position
		for op < len(rs) && !strings.ContainsRune(operators, rs[op]) {
			op++
		}
		if op >= len(rs) {
			return nil, fmt.Errorf("no operator at position %d of %q", p.Position, string(rs))
		}
		head, err := shellwords.NewParser().Parse(string(rs[:op]))
		if err != nil {
			return nil, err
		}
		for _, w := range head {
			add(w)
		}
		if op > 0 {
			join = !unicode.IsSpace(rs[op-1])
		}
		add(string(rs[op]))
		rs = rs[op+1:]
		join = len(rs) > 0 && !unicode.IsSpace(rs[0])
	}
	return words, nil
}

// operators are the characters the shellwords parser stops at.
const operators = ";&|<>"

func isName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) || i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// ArgName returns the name under which the argument with the given
// index can be passed: Param0, Param1, and so on.
func ArgName(i int) string {
	return "Param" + strconv.Itoa(i)
}

// Value returns the value of the first parameter with the given name.
func (l List) Value(name string) (string, bool) {
	for _, p := range l {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Arg returns the value for the argument with the given index:
// the parameter named by [ArgName] if there is one, and otherwise
// the entry at that position, unless that entry is named for
// another argument.
func (l List) Arg(i int) (string, bool) {
	if v, ok := l.Value(ArgName(i)); ok {
		return v, true
	}
	if i >= 0 && i < len(l) && !isArgName(l[i].Name) {
		return l[i].Value, true
	}
	return "", false
}

// isArgName returns whether s is an [ArgName].
func isArgName(s string) bool {
	n, ok := strings.CutPrefix(s, "Param")
	if !ok || n == "" {
		return false
	}
	for _, r := range n {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Set sets the value of the named parameter, replacing the first
// one with that name or appending a new one.
func (l *List) Set(name, value string) {
	for i := range *l {
		if (*l)[i].Name == name {
			(*l)[i].Value = value
			return
		}
	}
	*l = append(*l, Param{Name: name, Value: value})
}

// String returns the textual form of the list, which [Parse]
// turns back into the same list.
func (l List) String() string {
	var b strings.Builder
	for i, p := range l {
		if i > 0 {
			b.WriteByte(' ')
		}
		if p.Name != "" {
			b.WriteString(p.Name)
			b.WriteByte('=')
		}
		b.WriteString(Quote(p.Value))
	}
	return b.String()
}

// Quote returns s in double quotes, escaping backslashes
// and double quotes.
func Quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}
