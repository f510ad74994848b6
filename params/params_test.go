// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	l := Parse(`Param0="1.5" Param1='spot light' Name=Lamp 42 "a b=c"`)
	assert.Equal(t, List{
		{Name: "Param0", Value: "1.5"},
		{Name: "Param1", Value: "spot light"},
		{Name: "Name", Value: "Lamp"},
		{Value: "42"},
		{Value: "a b=c"},
	}, l)

	v, ok := l.Value("Name")
	assert.True(t, ok)
	assert.Equal(t, "Lamp", v)
	_, ok = l.Value("Color")
	assert.False(t, ok)

	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse(`Name="unterminated`))
	assert.Equal(t, List{{Name: "Empty", Value: ""}}, Parse(`Empty=""`))
}

func TestParseOperators(t *testing.T) {
	assert.Equal(t, List{
		{Name: "Flags", Value: "Red|Blue"},
		{Name: "Name", Value: "x"},
	}, Parse("Flags=Red|Blue Name=x"))

	assert.Equal(t, List{
		{Name: "A", Value: "1;2"},
		{Value: "&"},
		{Name: "B", Value: "<x>"},
		{Value: "tail"},
	}, Parse(`A=1;2 & B=<x> tail`))

	assert.Equal(t, List{{Name: "F", Value: "a||b"}, {Value: "|c"}}, Parse(`F=a||b |c`))
	assert.Equal(t, List{{Value: "2>out"}, {Name: "N", Value: "a b|c"}}, Parse(`2>out N="a b"|c`))
	assert.Equal(t, List{{Value: "x|"}}, Parse(`x|`))
	assert.Equal(t, List{{Name: "Q", Value: "a|b"}}, Parse(`Q="a|b"`))
}

func TestArg(t *testing.T) {
	l := Parse(`Param1="second" first`)
	v, ok := l.Arg(1)
	assert.True(t, ok)
	assert.Equal(t, "second", v)
	_, ok = l.Arg(0)
	assert.False(t, ok, "an entry named for another argument is not positional")

	mixed := Parse(`Param1=5 Name=x 7`)
	_, ok = mixed.Arg(0)
	assert.False(t, ok)
	v, _ = mixed.Arg(1)
	assert.Equal(t, "5", v)
	v, _ = mixed.Arg(2)
	assert.Equal(t, "7", v)

	named := Parse(`Params=a Param=b`)
	v, _ = named.Arg(0)
	assert.Equal(t, "a", v)
	v, _ = named.Arg(1)
	assert.Equal(t, "b", v)

	pos := Parse(`1 2 3`)
	v, _ = pos.Arg(2)
	assert.Equal(t, "3", v)
	_, ok = pos.Arg(3)
	assert.False(t, ok)
	assert.Equal(t, "Param4", ArgName(4))
}

func TestString(t *testing.T) {
	var l List
	l.Set("Name", `say "hi"`)
	l.Set("Path", `C:\lights`)
	l.Set("Flags", "Shadows|Fog")
	l.Set("Name", "Lamp")
	l = append(l, Param{Value: "x y"})
	s := l.String()
	assert.Equal(t, `Name="Lamp" Path="C:\\lights" Flags="Shadows|Fog" "x y"`, s)
	assert.Equal(t, l, Parse(s))

	quoted := List{{Name: "Q", Value: `say "hi"`}}
	assert.Equal(t, quoted, Parse(quoted.String()))
}

func TestParseXML(t *testing.T) {
	src := `<?xml version="1.0" encoding="ISO-8859-1"?>
<Call Param0="3" Name="caf` + "\xe9" + `">
  <Param1>  spot light </Param1>
  <Param2/>
</Call>`
	e, err := ParseXMLString(src)
	require.NoError(t, err)
	assert.Equal(t, "Call", e.Name)
	name, ok := e.Attr("Name")
	assert.True(t, ok)
	assert.Equal(t, "café", name)
	assert.Equal(t, "spot light", e.Child("Param1").Text)
	assert.Nil(t, e.Child("Param9"))

	l := e.Params()
	assert.Equal(t, List{
		{Name: "Param0", Value: "3"},
		{Name: "Name", Value: "café"},
		{Name: "Param1", Value: "spot light"},
		{Name: "Param2", Value: ""},
	}, l)
	v, _ := l.Arg(1)
	assert.Equal(t, "spot light", v)

	_, err = ParseXMLString("<Call>")
	assert.Error(t, err)
}

func TestWriteXML(t *testing.T) {
	e := NewElement("Light")
	e.SetAttr("Color", "1 0.5 0")
	e.SetAttr("Name", "<lamp>")
	e.SetAttr("Color", "1 1 1")
	e.AddChild("Param0", "x")

	var b bytes.Buffer
	_, err := e.WriteTo(&b)
	require.NoError(t, err)
	assert.Equal(t, "<Light Color=\"1 1 1\" Name=\"&lt;lamp&gt;\">\n  <Param0>x</Param0>\n</Light>", b.String())

	back, err := ParseXMLString(e.String())
	require.NoError(t, err)
	assert.Equal(t, e, back)
}
