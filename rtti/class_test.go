// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rtti

import (
	"reflect"
	"testing"

	"cogentcore.org/rtti/conv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Foo struct {
	ObjectBase
	Count Attribute[int32, ReadWrite]
}

var fooClass = NewClass[Foo]("Foo", "Object with a counter", "Object")

var _ = AddAttribute(fooClass, "Count", func(f *Foo) *Attribute[int32, ReadWrite] { return &f.Count }, 0, "Counter", "")

type Bar struct {
	Foo
	Count    Attribute[int32, ReadWrite]
	Name     Attribute[string, ReadWrite]
	Scale    Attribute[float64, ReadOnly]
	Size     Attribute[int, ReadWrite]
	Changed  Event
	OnChange EventHandler

	size     int
	received []string
}

func (b *Bar) getSize() int  { return b.size }
func (b *Bar) setSize(v int) { b.size = v }

func (b *Bar) Rename(name string) {
	b.Name.Set(name)
}

func (b *Bar) Sum(x, y int32) int32 {
	return x + y + b.Count.Get()
}

func (b *Bar) onChange(s string) {
	b.received = append(b.received, s)
}

var barClass = Extends(NewClass[Bar]("Bar", "Object derived from Foo", "Foo"), fooClass, func(b *Bar) *Foo { return &b.Foo }).
	Property("Icon", "bar.svg")

var (
	_ = AddAttribute(barClass, "Count", func(b *Bar) *Attribute[int32, ReadWrite] { return &b.Count }, 10, "Counter starting at 10", "",
		ModifyAttr(func(b *Bar) *Foo { return &b.Foo }, func(f *Foo) *Attribute[int32, ReadWrite] { return &f.Count }))
	_ = AddAttribute(barClass, "Name", func(b *Bar) *Attribute[string, ReadWrite] { return &b.Name }, "bar", "Name", "Type=Text")
	_ = AddAttribute(barClass, "Scale", func(b *Bar) *Attribute[float64, ReadOnly] { return &b.Scale }, 1.5, "Scale", "")
	_ = AddAttribute(barClass, "Size", func(b *Bar) *Attribute[int, ReadWrite] { return &b.Size }, 0, "Size", "",
		GetSet((*Bar).getSize, (*Bar).setSize))

	_ = AddMethod(barClass, "Rename", (*Bar).Rename, "Renames the bar", "")
	_ = AddMethod(barClass, "Sum", (*Bar).Sum, "Adds two numbers to the counter", "")

	_ = AddSignal(barClass, "Changed", func(b *Bar) *Event { return &b.Changed }, "Emitted on changes", "", reflect.TypeFor[string]())
	_ = AddSlot(barClass, "OnChange", func(b *Bar) *EventHandler { return &b.OnChange }, (*Bar).onChange, "Records changes", "")

	_ = AddConstructor(barClass, "DefaultConstructor", func() *Bar { return &Bar{} }, "Default constructor", "")
	_ = AddConstructor(barClass, "NameConstructor", func(name string) *Bar {
		b := barClass.New()
		b.Name.Set(name)
		return b
	}, "Constructor with a name", "")
)

type Baz struct {
	ObjectBase
}

func TestFoo(t *testing.T) {
	f := fooClass.New()
	assert.Equal(t, int32(0), f.Count.Get())
	assert.True(t, f.Count.IsDefault())

	a := f.Attribute("Count")
	require.NotNil(t, a)
	a.SetInt32(42)
	assert.Equal(t, int32(42), a.Int32())
	assert.Equal(t, "42", a.String())
	assert.False(t, a.IsDefault())

	a.SetDefault()
	assert.Equal(t, int32(0), f.Count.Get())
	assert.Same(t, f, f.Count.Owner())
	assert.Equal(t, "Count", f.Count.Desc().Name)
}

func TestCreateByName(t *testing.T) {
	cls := ClassByName("Bar")
	require.NotNil(t, cls)
	d := cls.Constructor("DefaultConstructor")
	require.NotNil(t, d)
	assert.True(t, d.IsDefault())
	assert.Equal(t, "Object()", d.Signature())

	obj := d.Create(d.NewParams())
	require.NotNil(t, obj)
	b, ok := obj.(*Bar)
	require.True(t, ok)
	assert.Same(t, cls, b.Class())
	assert.Equal(t, "bar", b.Name.Get())
	assert.Equal(t, int32(10), b.Foo.Count.Get())

	assert.IsType(t, &Bar{}, Create("Bar"))
	assert.Nil(t, Create("Foo"))
	assert.Nil(t, Create("NoSuchClass"))

	obj = cls.CreateString("NameConstructor", `"my bar"`)
	require.NotNil(t, obj)
	assert.Equal(t, "my bar", obj.(*Bar).Name.Get())

	obj = cls.CreateParams(NewParams[Object]("lamp"))
	require.NotNil(t, obj)
	assert.Equal(t, "lamp", obj.(*Bar).Name.Get())
	assert.Nil(t, cls.CreateNamed("NameConstructor", NewParams[Object](3)))

	_, err := TryCreate("Bat")
	assert.ErrorIs(t, err, ErrUnknownClass)
	assert.ErrorContains(t, err, `"Bar"`)
}

func TestInheritance(t *testing.T) {
	cls := barClass.Get()
	assert.Same(t, fooClass.Get(), cls.Base())
	assert.Same(t, ObjectClass.Get(), cls.Base().Base())
	assert.True(t, cls.IsDerivedFrom("Foo"))
	assert.True(t, cls.IsDerivedFrom("Object"))
	assert.False(t, cls.IsDerivedFrom("Bar"))
	assert.Equal(t, "bar.svg", cls.Property("Icon"))
	assert.Equal(t, "bar", cls.IDName())

	var names []string
	for _, d := range cls.Attributes() {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"Count", "Name", "Scale", "Size"}, names)

	count := cls.Attribute("Count")
	assert.Equal(t, StorageModifyAttr, count.Storage)
	assert.Equal(t, "10", count.Default)
	assert.Same(t, cls, count.Class())
	assert.Equal(t, StorageDirect, fooClass.Get().Attribute("Count").Storage)
	assert.Equal(t, StorageGetSet, cls.Attribute("Size").Storage)
	assert.Equal(t, AccessReadOnly, cls.Attribute("Scale").Access)
	assert.Equal(t, conv.TypeFloat64, cls.Attribute("Scale").TypeID)

	assert.Len(t, cls.Constructors(), 2)
	assert.Empty(t, fooClass.Get().Constructors())
	assert.True(t, cls.HasDefaultConstructor())
	assert.False(t, fooClass.Get().HasConstructor())

	b := barClass.New()
	assert.True(t, b.IsInstanceOf("Foo"))
	assert.True(t, b.IsInstanceOf("Bar"))
	assert.False(t, b.IsInstanceOf("Baz"))

	b.Attribute("Count").SetInt(3)
	assert.Equal(t, int32(3), b.Foo.Count.Get())
	assert.Equal(t, int32(3), b.Count.Get())

	// the base descriptor reaches the embedded base attribute
	assert.Equal(t, int32(3), fooClass.Get().Attribute("Count").Attribute(b).Int32())
}

func TestStorageAccess(t *testing.T) {
	b := barClass.New()
	for range 3 {
		b.Attribute("Scale").SetFloat64(9)
		b.SetAttribute("Scale", "8")
	}
	assert.Equal(t, 1.5, b.Scale.Get())

	b.SetAttribute("Size", "12")
	assert.Equal(t, 12, b.size)
	b.size = 4
	assert.Equal(t, "4", b.Attribute("Size").String())
}

func TestDefaultFidelityClass(t *testing.T) {
	for _, d := range barClass.Get().Attributes() {
		b := barClass.New()
		a := d.Attribute(b)
		require.NotNil(t, a, d.Name)
		a.SetString(d.Default)
		assert.True(t, a.IsDefault(), d.Name)
	}
}

func TestMethods(t *testing.T) {
	b := barClass.New()
	cls := b.Class()
	assert.Equal(t, "void(string)", cls.Method("Rename").Signature())
	assert.Equal(t, "int32(int32,int32)", cls.Method("Sum").Signature())

	b.CallMethodString("Rename", "lamp")
	assert.Equal(t, "lamp", b.Name.Get())

	b.CallMethod("Rename", NewParams[conv.Void](5))
	assert.Equal(t, "lamp", b.Name.Get())
	assert.ErrorIs(t, b.TryCallMethod("Rename", NewParams[conv.Void](5)), ErrSignatureMismatch)
	assert.ErrorIs(t, b.TryCallMethod("Nope", nil), ErrUnknownMember)

	assert.Equal(t, "13", b.CallMethodWithReturn("Sum", "1 2"))
	p := NewParams[int32](int32(2), int32(2))
	b.CallMethod("Sum", p)
	assert.Equal(t, int32(14), Return[int32](p))

	assert.Nil(t, b.Method("Nope"))
	assert.Nil(t, cls.Method("Sum").Method(fooClass.New()))
}

func TestSignalsSlots(t *testing.T) {
	b := barClass.New()
	other := barClass.New()

	cls := b.Class()
	assert.Equal(t, "void(string)", cls.Signal("Changed").Signature())
	assert.Equal(t, "void(string)", cls.Slot("OnChange").Signature())

	ev := b.Signal("Changed")
	require.NotNil(t, ev)
	ev.Connect(other.Slot("OnChange"))
	ev.Connect(other.Slot("OnChange"))
	ev.Connect(b.Slot("OnChange"))
	assert.Equal(t, 2, ev.NumConnections())

	ev.Emit("a")
	ev.EmitString(`"b c"`)
	ev.Emit(3)
	assert.Equal(t, []string{"a", "b c"}, other.received)
	assert.Equal(t, []string{"a", "b c"}, b.received)

	ev.Disconnect(b.Slot("OnChange"))
	ev.Emit("d")
	assert.Equal(t, []string{"a", "b c", "d"}, other.received)
	assert.Len(t, b.received, 2)

	h := NewEventHandler(func(int) {})
	assert.ErrorIs(t, ev.TryConnect(h), ErrSignatureMismatch)
	ev.DisconnectAll()
	assert.Equal(t, 0, ev.NumConnections())
}

func TestValues(t *testing.T) {
	b := barClass.New()
	assert.Equal(t, `Count="10" Name="bar" Scale="1.5" Size="0"`, b.Values(WithDefault))
	assert.Equal(t, "", b.Values(NoDefault))

	b.SetValues(`Name="big lamp" Count=2 Unknown=1 positional`)
	assert.Equal(t, "big lamp", b.Name.Get())
	assert.Equal(t, `Count="2" Name="big lamp"`, b.ToString())

	e := b.ToXML()
	assert.Equal(t, "Bar", e.Name)
	c := barClass.New()
	c.FromXML(e)
	assert.Equal(t, b.ToString(), c.ToString())

	c.SetDefaultValues()
	assert.Equal(t, "", c.ToString())
	c.FromString(`Name=x`)
	assert.Equal(t, "x", c.Name.Get())

	assert.NotPanics(t, func() { c.ValuesXML(nil, WithDefault) })
}

func TestSingleton(t *testing.T) {
	def := NewClass[Baz]("Baz", "Short-lived class", "Object")
	c := def.Get()
	require.NotNil(t, c)
	for range 3 {
		assert.Same(t, c, def.Get())
	}
	assert.Same(t, c, ClassByName("Baz"))

	var unloaded []string
	h := OnClassUnloaded(func(c *Class) { unloaded = append(unloaded, c.Name()) })
	defer ClassUnloaded.Disconnect(h)

	def.Shutdown()
	assert.Equal(t, []string{"Baz"}, unloaded)
	for range 3 {
		assert.Nil(t, def.Get())
	}
	assert.Nil(t, ClassByName("Baz"))
}

func TestInternal(t *testing.T) {
	drain()
	var loaded []string
	h := OnClassLoaded(func(c *Class) { loaded = append(loaded, c.Name()) })
	defer ClassLoaded.Disconnect(h)

	hidden := NewClass[Baz]("HiddenBaz", "", "Object").Internal()
	shown := NewClass[Baz]("ShownBaz", "", "Object")
	assert.NotNil(t, hidden.Get())
	assert.Nil(t, ClassByName("HiddenBaz"))
	assert.Same(t, shown.Get(), ClassByName("ShownBaz"))
	assert.Equal(t, []string{"ShownBaz"}, loaded)
}

func TestFindClasses(t *testing.T) {
	names := func(cs []*Class) []string {
		var res []string
		for _, c := range cs {
			res = append(res, c.Name())
		}
		return res
	}
	assert.Equal(t, []string{"Bar"}, names(FindClasses("Foo", FindOptions{})))
	direct := names(FindClasses("Object", FindOptions{IncludeAbstract: true, Module: fooClass.Get().Module().ID}))
	assert.Contains(t, direct, "Foo")
	assert.NotContains(t, direct, "Bar")
	assert.NotContains(t, direct, "Object")
	assert.Equal(t, []string{"Bar"}, names(FindClasses("Object", FindOptions{Recursive: true, Module: fooClass.Get().Module().ID})))
	assert.Contains(t, names(FindClasses("Foo", FindOptions{IncludeBase: true, IncludeAbstract: true})), "Foo")
	assert.Contains(t, Suggest("Baa", 3), "Bar")
}

func TestModules(t *testing.T) {
	m := fooClass.Get().Module()
	assert.Same(t, m, barClass.Get().Module())
	assert.Same(t, m, ObjectClass.Get().Module())
	assert.Equal(t, "cogentcore.org/rtti/rtti", m.Package)
	assert.GreaterOrEqual(t, m.ID, 10000)
	assert.Same(t, m, ModuleByID(m.ID))
	assert.Same(t, m, ModuleByName("rtti"))
	assert.Contains(t, Modules(), m)

	m.SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", m.Version.String())
	m.SetVersion("not a version")
	assert.Equal(t, "1.2.3", m.Version.String())
	assert.Contains(t, m.Classes(), barClass.Get())
}

func TestHandles(t *testing.T) {
	b := barClass.New()
	assert.Same(t, b, ObjectByHandle(b.Handle()))
	assert.Equal(t, b.Handle().String(), conv.For[Object]().ToString(b))

	v := NewVar[Object, ReadWrite](nil)
	assert.True(t, v.IsDefault())
	assert.Equal(t, conv.TypeObject, v.TypeID())
	v.SetString(b.Handle().String())
	assert.Same(t, b, v.Get())
	assert.Equal(t, "", NewVar[Object, ReadWrite](nil).String())

	v.SetString("not a handle")
	assert.Nil(t, v.Get())
}
