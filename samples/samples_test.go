// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package samples

import (
	"testing"

	"cogentcore.org/rtti/conv"
	"cogentcore.org/rtti/rtti"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModule(t *testing.T) {
	assert.Equal(t, "samples", Module.Name)
	assert.Equal(t, "cogentcore.org/rtti/samples", Module.Package)
	require.NotNil(t, Module.Version)
	assert.Equal(t, "0.1.0", Module.Version.String())
	assert.Same(t, Module, LightClass.Get().Module())

	var names []string
	for _, c := range Module.Classes() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"Light", "SpotLight", "Counter"}, names)
}

func TestLightKind(t *testing.T) {
	assert.Equal(t, conv.TypeEnum, LightKindType.TypeID())
	assert.Equal(t, "Spot", LightKindType.ToString(KindSpot))
	assert.Equal(t, KindPoint, LightKindType.FromString("Omni"))
	assert.Equal(t, "Point", LightKindType.ToString(LightKindType.FromString("Omni")))
	assert.Equal(t, "7", LightKindType.ToString(7))

	l := NewLight("lamp", KindDirectional)
	assert.Equal(t, "Directional", l.Attribute("Kind").String())
	l.SetAttribute("Kind", "Omni")
	assert.Equal(t, KindPoint, l.Kind.Get())
}

func TestLightFlags(t *testing.T) {
	l := LightClass.New()
	a := l.Attribute("Flags")
	require.NotNil(t, a)
	assert.Equal(t, conv.TypeFlag, a.TypeID())
	assert.Equal(t, "samples.LightFlags", a.TypeName())

	var f LightFlags
	f.SetFlag(true, CastShadows, Flicker)
	l.Flags.Set(f)
	assert.Equal(t, "CastShadows|Flicker", a.String())

	a.SetString("Volumetric")
	assert.True(t, l.Flags.Get().HasFlag(Volumetric))
	assert.False(t, l.Flags.Get().HasFlag(CastShadows))
}

func TestLight(t *testing.T) {
	l := LightClass.New()
	assert.Equal(t, "light", l.Name.Get())
	assert.Equal(t, 10.0, l.Range.Get())
	assert.True(t, l.IsInstanceOf("Object"))

	l.Intensity.Set(-3)
	assert.Equal(t, float32(0), l.Intensity.Get())
	l.Intensity.Set(4)
	assert.Equal(t, rtti.StorageGetSet, l.Intensity.Storage())

	assert.Equal(t, 0.0, l.Brightness(1))
	l.Toggle()
	assert.True(t, l.IsOn())
	assert.Equal(t, 1.0, l.Brightness(2))
	assert.Equal(t, 0.0, l.Brightness(11))

	l.SetValues(`Name="Lamp" Intensity="2.5"`)
	assert.Equal(t, `Name="Lamp" Intensity="2.5"`, l.ToString())
	l.SetDefaultValues()
	assert.Equal(t, "", l.ToString())
}

func TestLightReflection(t *testing.T) {
	obj := rtti.Create("Light")
	require.NotNil(t, obj)
	l, ok := obj.(*Light)
	require.True(t, ok)

	m := l.Method("Brightness")
	require.NotNil(t, m)
	assert.Equal(t, "float64(float64)", m.Signature())
	l.CallMethodString("SetOn", "true")
	assert.True(t, l.IsOn())
	l.Intensity.Set(8)
	assert.Equal(t, "2", l.CallMethodWithReturn("Brightness", "2"))

	d := LightClass.Get().Constructor("NameConstructor")
	require.NotNil(t, d)
	assert.Equal(t, "Object(string,LightKind)", d.Signature())
	obj = LightClass.Get().CreateString("NameConstructor", `"Desk" Spot`)
	require.NotNil(t, obj)
	assert.Equal(t, "Desk", obj.(*Light).Name.Get())
	assert.Equal(t, KindSpot, obj.(*Light).Kind.Get())

	assert.Equal(t, "lightbulb", LightClass.Get().Property("Icon"))
	assert.Equal(t, "Lights", LightClass.Get().Property("Category"))
}

func TestSpotLight(t *testing.T) {
	s := SpotLightClass.New()
	assert.True(t, s.IsInstanceOf("Light"))
	assert.True(t, SpotLightClass.Get().IsDerivedFrom("Object"))

	assert.Equal(t, KindSpot, s.Kind.Get())
	assert.Equal(t, KindSpot, s.Light.Kind.Get())
	assert.Equal(t, rtti.StorageModifyAttr, s.Kind.Storage())
	assert.Equal(t, rtti.AccessReadOnly, SpotLightClass.Get().Attribute("Kind").Access)
	s.SetAttribute("Kind", "Directional")
	assert.Equal(t, KindSpot, s.Light.Kind.Get())

	var names []string
	for _, d := range SpotLightClass.Get().Attributes() {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"Name", "Kind", "Flags", "Intensity", "Range", "Angle", "Target"}, names)

	s.Angle.Set(90)
	assert.InDelta(t, 2.0, s.ConeRadius(2), 1e-9)
	assert.NotNil(t, s.Method("Toggle"))
	assert.Nil(t, SpotLightClass.Get().Constructor("NameConstructor"))
	assert.Equal(t, "highlight", SpotLightClass.Get().Property("Icon"))
}

func TestSpotLightTarget(t *testing.T) {
	s := SpotLightClass.New()
	l := LightClass.New()
	assert.Equal(t, "", s.Attribute("Target").String())
	assert.True(t, s.Attribute("Target").IsDefault())

	s.Target.Set(l)
	assert.Equal(t, l.Handle().String(), s.Attribute("Target").String())

	other := SpotLightClass.New()
	other.SetAttribute("Target", l.Handle().String())
	assert.Same(t, l, other.Target.Get())
	other.SetAttribute("Target", "")
	assert.Nil(t, other.Target.Get())
}

func TestCounter(t *testing.T) {
	c := CounterClass.New()
	c.Count.Set(5)
	assert.Equal(t, int64(0), c.Count.Get())
	c.Step.Set(2)
	assert.Equal(t, int64(2), c.Increment())
	assert.Equal(t, "4", c.CallMethodWithReturn("Increment", ""))
	c.CallMethodString("Reset", "")
	assert.Equal(t, int64(0), c.Count.Get())
}

func TestSwitchedSignal(t *testing.T) {
	l := LightClass.New()
	s := SpotLightClass.New()
	c := CounterClass.New()

	l.Switched.Connect(&c.SwitchedOn)
	s.Signal("Switched").Connect(c.Slot("SwitchedOn"))
	s.Switched.Connect(&l.Follow)

	l.SetOn(true)
	l.SetOn(true)
	assert.Equal(t, int64(1), c.Count.Get())

	s.SetOn(true)
	assert.Equal(t, int64(2), c.Count.Get())
	s.SetOn(false)
	assert.False(t, l.IsOn())
	s.SetOn(true)
	assert.True(t, l.IsOn())
	assert.Equal(t, int64(4), c.Count.Get())

	l.Switched.Disconnect(&c.SwitchedOn)
	l.Toggle()
	l.Toggle()
	assert.Equal(t, int64(4), c.Count.Get())
}
