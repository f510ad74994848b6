// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package samples

import (
	"math"

	"cogentcore.org/rtti/rtti"
)

// SpotLight is a light shining in a cone towards a target.
type SpotLight struct {
	Light

	// Kind is always [KindSpot].
	Kind   rtti.Attribute[LightKind, rtti.ReadOnly]
	Angle  rtti.Attribute[float32, rtti.ReadWrite]
	Target rtti.Attribute[rtti.Object, rtti.ReadWrite]
}

// SpotLightClass is the class of [SpotLight].
var SpotLightClass = rtti.Extends(rtti.NewClass[SpotLight]("SpotLight", "Light shining in a cone", "Light"),
	LightClass, func(s *SpotLight) *Light { return &s.Light }).
	Property("Icon", "highlight")

var (
	_ = rtti.AddAttribute(SpotLightClass, "Kind", func(s *SpotLight) *rtti.Attribute[LightKind, rtti.ReadOnly] { return &s.Kind },
		KindSpot, "Kind of light, always Spot", "",
		rtti.ModifyAttr(func(s *SpotLight) *Light { return &s.Light }, func(l *Light) *rtti.Attribute[LightKind, rtti.ReadWrite] { return &l.Kind }))
	_ = rtti.AddAttribute(SpotLightClass, "Angle", func(s *SpotLight) *rtti.Attribute[float32, rtti.ReadWrite] { return &s.Angle },
		45, "Opening angle of the cone in degrees", "Min=0 Max=180")
	_ = rtti.AddAttribute(SpotLightClass, "Target", func(s *SpotLight) *rtti.Attribute[rtti.Object, rtti.ReadWrite] { return &s.Target },
		nil, "Object the light points at", "")

	_ = rtti.AddMethod(SpotLightClass, "ConeRadius", (*SpotLight).ConeRadius, "Returns the radius of the cone at a distance", "")

	_ = rtti.AddConstructor(SpotLightClass, "DefaultConstructor", func() *SpotLight { return SpotLightClass.New() },
		"Default constructor", "")
)

// ConeRadius returns the radius of the cone of light
// at the given distance.
func (s *SpotLight) ConeRadius(distance float64) float64 {
	half := float64(s.Angle.Get()) / 2 * math.Pi / 180
	return distance * math.Tan(half)
}
