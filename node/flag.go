// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package node

// Flag is an observable boolean used for the UI state of a node.
// Any value is accepted by [Flag.Set]; functions registered with
// [Flag.OnChange] are called in registration order whenever the
// value actually changes. A Flag is not safe for concurrent use.
type Flag struct {
	value     bool
	observers []func(v bool)
}

// Value returns the current value of the flag.
func (f *Flag) Value() bool {
	return f.value
}

// Set sets the value of the flag and notifies the observers
// if it changed. It returns whether the value changed.
func (f *Flag) Set(v bool) bool {
	if f.value == v {
		return false
	}
	f.value = v
	for _, fun := range f.observers {
		fun(v)
	}
	return true
}

// Toggle inverts the value of the flag.
func (f *Flag) Toggle() {
	f.Set(!f.value)
}

// OnChange adds a function to call with the new value
// whenever the value of the flag changes.
func (f *Flag) OnChange(fun func(v bool)) {
	f.observers = append(f.observers, fun)
}
