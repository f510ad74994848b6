// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package params

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// Attr is an XML attribute.
type Attr struct {
	Name  string
	Value string
}

// Element is a generic XML element, as used for persisted
// function calls and object values.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element

	// Text is the character data directly inside the element,
	// with surrounding white space removed.
	Text string
}

// NewElement returns a new element with the given name.
func NewElement(name string) *Element {
	return &Element{Name: name}
}

// ParseXML reads the first element from the given reader.
// Documents in any encoding known to [charset] are accepted.
func ParseXML(r io.Reader) (*Element, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	for {
		t, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		if se, ok := t.(xml.StartElement); ok {
			return readElement(decoder, se)
		}
	}
}

// ParseXMLString reads the first element from the given string.
func ParseXMLString(s string) (*Element, error) {
	return ParseXML(strings.NewReader(s))
}

func readElement(decoder *xml.Decoder, se xml.StartElement) (*Element, error) {
	e := NewElement(se.Name.Local)
	for _, a := range se.Attr {
		e.Attrs = append(e.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
	}
	var text strings.Builder
	for {
		t, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		switch tt := t.(type) {
		case xml.StartElement:
			child, err := readElement(decoder, tt)
			if err != nil {
				return nil, err
			}
			e.Children = append(e.Children, child)
		case xml.CharData:
			text.Write(tt)
		case xml.EndElement:
			e.Text = strings.TrimSpace(text.String())
			return e, nil
		}
	}
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets the value of the named attribute, keeping its position
// if it already exists.
func (e *Element) SetAttr(name, value string) {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// Child returns the first child element with the given name, or nil.
func (e *Element) Child(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// AddChild adds a new child element with the given name and text.
func (e *Element) AddChild(name, text string) *Element {
	c := &Element{Name: name, Text: text}
	e.Children = append(e.Children, c)
	return c
}

// Params returns the parameter list of the element:
// its attributes followed by its child elements, each child
// giving its name and text, in document order.
func (e *Element) Params() List {
	l := make(List, 0, len(e.Attrs)+len(e.Children))
	for _, a := range e.Attrs {
		l = append(l, Param{Name: a.Name, Value: a.Value})
	}
	for _, c := range e.Children {
		l = append(l, Param{Name: c.Name, Value: c.Text})
	}
	return l
}

// WriteTo writes the element as indented XML.
func (e *Element) WriteTo(w io.Writer) (int64, error) {
	var b bytes.Buffer
	enc := xml.NewEncoder(&b)
	enc.Indent("", "  ")
	if err := e.encode(enc); err != nil {
		return 0, err
	}
	if err := enc.Flush(); err != nil {
		return 0, err
	}
	n, err := w.Write(b.Bytes())
	return int64(n), err
}

func (e *Element) encode(enc *xml.Encoder) error {
	se := xml.StartElement{Name: xml.Name{Local: e.Name}}
	for _, a := range e.Attrs {
		se.Attr = append(se.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := enc.EncodeToken(se); err != nil {
		return err
	}
	if e.Text != "" {
		if err := enc.EncodeToken(xml.CharData(e.Text)); err != nil {
			return err
		}
	}
	for _, c := range e.Children {
		if err := c.encode(enc); err != nil {
			return err
		}
	}
	return enc.EncodeToken(se.End())
}

// String returns the element as indented XML.
func (e *Element) String() string {
	var b strings.Builder
	e.WriteTo(&b)
	return b.String()
}
