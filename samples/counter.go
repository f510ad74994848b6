// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package samples

import (
	"cogentcore.org/rtti/rtti"
)

// Counter counts how often the lights it is connected to
// are switched on.
type Counter struct {
	rtti.ObjectBase

	Count rtti.Attribute[int64, rtti.ReadOnly]
	Step  rtti.Attribute[int64, rtti.ReadWrite]

	// SwitchedOn increments the count when it receives true.
	SwitchedOn rtti.EventHandler
}

// CounterClass is the class of [Counter].
var CounterClass = rtti.NewClass[Counter]("Counter", "Counts switch-ons", "Object")

var (
	_ = rtti.AddAttribute(CounterClass, "Count", func(c *Counter) *rtti.Attribute[int64, rtti.ReadOnly] { return &c.Count },
		0, "Current count", "")
	_ = rtti.AddAttribute(CounterClass, "Step", func(c *Counter) *rtti.Attribute[int64, rtti.ReadWrite] { return &c.Step },
		1, "Amount added per increment", "")

	_ = rtti.AddMethod(CounterClass, "Increment", (*Counter).Increment, "Adds the step to the count", "")
	_ = rtti.AddMethod(CounterClass, "Reset", (*Counter).Reset, "Sets the count to zero", "")

	_ = rtti.AddSlot(CounterClass, "SwitchedOn", func(c *Counter) *rtti.EventHandler { return &c.SwitchedOn }, (*Counter).switched,
		"Increments on switch-ons", "")

	_ = rtti.AddConstructor(CounterClass, "DefaultConstructor", func() *Counter { return CounterClass.New() },
		"Default constructor", "")
)

// Increment adds the step to the count and returns the new count.
func (c *Counter) Increment() int64 {
	c.Count.Store(c.Count.Get() + c.Step.Get())
	return c.Count.Get()
}

// Reset sets the count to zero.
func (c *Counter) Reset() {
	c.Count.Store(0)
}

func (c *Counter) switched(on bool) {
	if on {
		c.Increment()
	}
}
