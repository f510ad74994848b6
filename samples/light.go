// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package samples

import (
	"math"
	"reflect"

	"cogentcore.org/rtti/conv"
	"cogentcore.org/rtti/enums"
	"cogentcore.org/rtti/rtti"
)

// LightKind is the kind of a light.
type LightKind int32

const (
	KindPoint LightKind = iota
	KindSpot
	KindDirectional
)

// lightKinds are the names of the light kinds. Omni is another
// name of a point light, so point lights are written as Point.
var lightKinds = enums.NewTable[LightKind]().
	Add("Point", KindPoint, "Light shining in all directions").
	Add("Spot", KindSpot, "Light shining in a cone").
	Add("Omni", KindPoint, "Light shining in all directions").
	Add("Directional", KindDirectional, "Light with parallel rays")

// LightKindType converts light kinds to and from their names.
// It is registered before the classes below are declared.
var LightKindType = registerLightKind()

func registerLightKind() *conv.EnumType[LightKind] {
	t := conv.Enum("LightKind", lightKinds)
	conv.Register[LightKind](t)
	return t
}

// Light is a light source that can be switched on and off.
type Light struct {
	rtti.ObjectBase

	Name      rtti.Attribute[string, rtti.ReadWrite]
	Kind      rtti.Attribute[LightKind, rtti.ReadWrite]
	Flags     rtti.Attribute[LightFlags, rtti.ReadWrite]
	Intensity rtti.Attribute[float32, rtti.ReadWrite]
	Range     rtti.Attribute[float64, rtti.ReadWrite]

	// Switched is emitted with the new state when the light
	// is switched on or off.
	Switched rtti.Event

	// Follow switches the light like the light it is connected to.
	Follow rtti.EventHandler

	on    bool
	power float32
}

// LightClass is the class of [Light].
var LightClass = rtti.NewClass[Light]("Light", "Light source", "Object").
	Property("Icon", "lightbulb").
	Property("Category", "Lights")

var (
	_ = rtti.AddAttribute(LightClass, "Name", func(l *Light) *rtti.Attribute[string, rtti.ReadWrite] { return &l.Name },
		"light", "Name of the light", "")
	_ = rtti.AddAttribute(LightClass, "Kind", func(l *Light) *rtti.Attribute[LightKind, rtti.ReadWrite] { return &l.Kind },
		KindPoint, "Kind of light", "")
	_ = rtti.AddAttribute(LightClass, "Flags", func(l *Light) *rtti.Attribute[LightFlags, rtti.ReadWrite] { return &l.Flags },
		0, "Light options", "")
	_ = rtti.AddAttribute(LightClass, "Intensity", func(l *Light) *rtti.Attribute[float32, rtti.ReadWrite] { return &l.Intensity },
		0, "Intensity of the light, never negative", "Min=0",
		rtti.GetSet((*Light).intensity, (*Light).setIntensity))
	_ = rtti.AddAttribute(LightClass, "Range", func(l *Light) *rtti.Attribute[float64, rtti.ReadWrite] { return &l.Range },
		10, "Distance beyond which the light has no effect", "Min=0")

	_ = rtti.AddMethod(LightClass, "SetOn", (*Light).SetOn, "Switches the light on or off", "")
	_ = rtti.AddMethod(LightClass, "IsOn", (*Light).IsOn, "Returns whether the light is on", "")
	_ = rtti.AddMethod(LightClass, "Toggle", (*Light).Toggle, "Switches the light", "")
	_ = rtti.AddMethod(LightClass, "Brightness", (*Light).Brightness, "Returns the brightness at a distance", "")
	_ = rtti.AddMethod(LightClass, "Label", (*Light).Label, "Returns the name of the light in a room", "")

	_ = rtti.AddSignal(LightClass, "Switched", func(l *Light) *rtti.Event { return &l.Switched },
		"Emitted when the light is switched", "", reflect.TypeFor[bool]())
	_ = rtti.AddSlot(LightClass, "Follow", func(l *Light) *rtti.EventHandler { return &l.Follow }, (*Light).SetOn,
		"Switches the light like another one", "")

	_ = rtti.AddConstructor(LightClass, "DefaultConstructor", func() *Light { return LightClass.New() },
		"Default constructor", "")
	_ = rtti.AddConstructor(LightClass, "NameConstructor", NewLight,
		"Constructor with a name and kind", "")
)

// NewLight returns a new light with the given name and kind.
func NewLight(name string, kind LightKind) *Light {
	l := LightClass.New()
	l.Name.Set(name)
	l.Kind.Set(kind)
	return l
}

func (l *Light) intensity() float32 {
	return l.power
}

func (l *Light) setIntensity(v float32) {
	l.power = max(v, 0)
}

// SetOn switches the light on or off, emitting [Light.Switched]
// if that changes its state.
func (l *Light) SetOn(on bool) {
	if l.on == on {
		return
	}
	l.on = on
	l.Switched.Emit(on)
}

// IsOn returns whether the light is on.
func (l *Light) IsOn() bool {
	return l.on
}

// Toggle switches the light.
func (l *Light) Toggle() {
	l.SetOn(!l.on)
}

// Brightness returns the brightness of the light at the given
// distance, which falls off with the square of the distance and
// is zero when the light is off or beyond its range.
func (l *Light) Brightness(distance float64) float64 {
	if !l.on || distance > l.Range.Get() {
		return 0
	}
	if l.Kind.Get() == KindDirectional {
		return float64(l.Intensity.Get())
	}
	return float64(l.Intensity.Get()) / math.Max(distance*distance, 1)
}

// Label returns the name of the light prefixed with the given room,
// such as "living room/lamp".
func (l *Light) Label(room string) string {
	if room == "" {
		return l.Name.Get()
	}
	return room + "/" + l.Name.Get()
}
