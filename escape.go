// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package escape

import (
	"sync/atomic"

	"github.com/moznion/go-optional"
)

// Target lifecycle states. A target moves strictly forward:
// active → escaping (BreakWith won the one-shot) → done (Deploy exited).
const (
	targetActive uint32 = iota
	targetEscaping
	targetDone
)

// Target represents one deployment of the escape mechanism, parameterized
// over the type of value it can deliver. A Target is created by [Deploy],
// passed by reference to the body, and is valid only until that Deploy call
// returns. It must not be shared across goroutines.
type Target[T any] struct {
	state atomic.Uint32
	m     *marker
	slot  optional.Option[T]
}

// breakSignal is the value an escape unwinds with. It carries only the
// identity marker of its target; the payload stays in the target's slot so
// the signal type is uniform across all payload types.
type breakSignal struct {
	m *marker
}

// String makes an unmatched signal legible in a goroutine crash dump.
// A signal can only outrun every Deploy frame through misuse: a target
// reference sent to another goroutine, or foreign code re-raising a
// recovered signal outside its deployment.
func (breakSignal) String() string {
	return "escape: break signal unwound past its deployment"
}

// Deploy establishes an escape target and runs body with a reference to it.
//
// If body returns normally, Deploy returns body's value. If body — at any
// call depth — invokes the target's [Target.BreakWith], Deploy returns the
// value given to BreakWith instead, exactly as if body had returned it.
// Escapes aimed at enclosing targets and unrelated panics propagate through
// untouched; Deploy never swallows what is not its own.
func Deploy[T any](body func(*Target[T]) T) (v T) {
	t := &Target[T]{m: acquireMarker()}
	defer func() {
		t.state.Store(targetDone)
		r := recover()
		if r == nil {
			releaseMarker(t.m)
			return
		}
		sig, ok := r.(breakSignal)
		if !ok || sig.m != t.m {
			releaseMarker(t.m)
			panic(r)
		}
		releaseMarker(t.m)
		val, err := t.slot.Take()
		if err != nil {
			panic("escape: matched break signal with an empty payload slot")
		}
		v = val
	}()
	return body(t)
}

// BreakWith transfers control back to this target's Deploy call, which
// returns v. Code after the BreakWith call never runs, and no intervening
// frame returns normally — only their deferred functions run.
//
// BreakWith does not return. It panics with a descriptive message instead of
// escaping when the target is no longer active: the owning Deploy already
// returned, or another escape on this target is already in flight.
func (t *Target[T]) BreakWith(v T) {
	if !t.state.CompareAndSwap(targetActive, targetEscaping) {
		panic("escape: break target is not active")
	}
	t.slot = optional.Some(v)
	panic(breakSignal{m: t.m})
}

// TryBreakWith is the non-panicking variant of [Target.BreakWith].
// When the target is still active it escapes and never returns. When the
// target is no longer active it returns false and has no other effect.
// Consequently TryBreakWith never returns true.
func (t *Target[T]) TryBreakWith(v T) bool {
	if !t.state.CompareAndSwap(targetActive, targetEscaping) {
		return false
	}
	t.slot = optional.Some(v)
	panic(breakSignal{m: t.m})
}
