// Package recommend turns accumulated behavior into ranked product lists.
//
// The Engine combines an identity's behavior summary with catalog attributes
// into a scored ranking, memoized per identity in a TTL cache: a fresh entry
// is returned unchanged (identical ordering), an expired one is lazily
// recomputed and overwritten on read. There is no background sweep.
//
// Trending is the identity-independent counterpart: a pure function of the
// catalog snapshot with no caching at all.
//
// The scoring weights are intentionally unnormalized across differently
// scaled inputs (0-5 ratings vs. thousands of reviews); they are preserved
// for behavioral compatibility and must not be corrected.
package recommend
