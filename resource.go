// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package escape

import (
	"github.com/JustinKnueppel/go-result"
)

// Resource safety helpers for frames that an escape may unwind through.
// Release rides defer, so cleanup runs on every exit path in reverse
// acquisition order: normal return, escape, or unrelated panic.

// Bracket acquires a resource, runs use with it, and releases it on every
// exit path. An escape (or unrelated panic) raised inside use still releases
// the resource before continuing to unwind.
func Bracket[R, T any](acquire func() R, release func(R), use func(R) T) T {
	r := acquire()
	defer release(r)
	return use(r)
}

// BracketResult is [Bracket] for acquisitions that can fail. An acquisition
// error is returned as Err without running use or release; otherwise the
// result of use is returned as Ok.
func BracketResult[R, T any](acquire func() (R, error), release func(R), use func(R) T) result.Result[T] {
	r, err := acquire()
	if err != nil {
		return result.Err[T](err)
	}
	defer release(r)
	return result.Ok(use(r))
}

// OnEscape runs cleanup only when the surrounding frame is being unwound by
// an escape, then resumes the unwinding. Normal returns and unrelated panics
// do not trigger cleanup; unrelated panics continue to propagate untouched.
//
// OnEscape must be invoked directly by a defer statement:
//
//	defer escape.OnEscape(func() { tx.Rollback() })
func OnEscape(cleanup func()) {
	r := recover()
	if r == nil {
		return
	}
	if _, ok := r.(breakSignal); ok {
		cleanup()
	}
	panic(r)
}
