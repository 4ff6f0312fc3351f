// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package escape provides a scoped, one-shot non-local exit primitive.
//
// [Deploy] establishes an escape target at the current stack frame and runs a
// body function with a reference to it. At any call depth inside the body —
// including inside Deploy calls for other targets — [Target.BreakWith]
// transfers control and a value straight back to the matching Deploy call,
// skipping the normal return paths of every intervening frame. If the body
// returns normally, Deploy produces the body's value instead.
//
//	result := escape.Deploy(func(t *escape.Target[int]) int {
//	    walk(tree, func(n *node) {
//	        if n.found {
//	            t.BreakWith(n.depth)
//	        }
//	    })
//	    return -1
//	})
//
// # Disambiguation
//
// Each live target owns a unique identity marker. An escape unwinds the stack
// carrying only that marker; the payload stays typed inside the target. Every
// Deploy frame the escape passes through compares markers by pointer identity:
// a match consumes the escape, anything else — an escape aimed at an enclosing
// target, or an unrelated panic — is re-raised untouched. Two targets carrying
// equal-looking payloads are never confused, and unrelated panics are never
// swallowed or wrapped.
//
// # Important Notes
//
// Escapes ride the panic/recover mechanism. Deferred functions in unwound
// frames run in the usual reverse order, so resources released via defer (or
// [Bracket]) are cleaned up exactly as on any other abrupt exit. A mutex that
// is locked without a deferred unlock in an unwound frame stays locked
// forever; callers must treat data guarded by such a mutex as suspect.
//
// A target reference is valid only for the duration of its Deploy call and
// only on the deploying goroutine. BreakWith after Deploy has returned panics
// loudly. BreakWith on a different goroutine raises a signal with no matching
// frame below it, which is fatal to that goroutine — never a silent fallback
// to some other control flow.
package escape
