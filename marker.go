// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package escape

import "sync"

var markerPool = sync.Pool{
	New: func() any { return new(marker) },
}

// marker is the identity token of a live target. Break signals carry a
// *marker and Deploy frames match it against their own by pointer equality.
//
// The struct must not be zero-sized: the runtime gives every zero-size
// allocation the same address, which would collapse the identity of all
// live targets into one.
type marker struct {
	_ byte
}

// acquireMarker returns a marker that no live target holds.
func acquireMarker() *marker {
	return markerPool.Get().(*marker)
}

// releaseMarker returns a marker to the pool. Callers release only at a
// Deploy exit, where no signal naming the marker can still be in flight:
// a matching signal has already been consumed there, and a non-matching
// one names some other target's marker.
func releaseMarker(m *marker) {
	markerPool.Put(m)
}
