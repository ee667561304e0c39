package props

import "sync/atomic"

var trustHomogeneousOrigin atomic.Bool

// SetTrustHomogeneousOrigin enables or disables the source-match fallback
// for callback equivalence. It is meant to be set once at process start.
//
// With the fallback on, two callbacks compiled from the same function are
// reported equivalent even when bound to different receivers.
func SetTrustHomogeneousOrigin(trust bool) {
	trustHomogeneousOrigin.Store(trust)
}

// TrustHomogeneousOrigin reports whether the source-match fallback is on.
func TrustHomogeneousOrigin() bool {
	return trustHomogeneousOrigin.Load()
}
