// Package session owns per-identity onboarding state and bounded conversation
// history. States live in a process-local map scoped to the process lifetime;
// nothing survives a restart unless mirrored through a core.UserStore by the
// caller.
//
// The store's RWMutex protects map integrity only. Operations for the same
// identity are not internally serialized: the design assumes a single active
// conversation per identity, enforced by the caller, not an internal lock.
package session
