// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package samples

// LightFlags are the options of a light.
type LightFlags int64 //enums:bitflag

const (
	// CastShadows lights cast shadows.
	CastShadows LightFlags = iota

	// Volumetric lights are visible in fog.
	Volumetric

	// Flicker lights change their intensity randomly.
	Flicker
)
