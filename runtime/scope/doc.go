// Package scope holds the per-target performer registry.
//
// A TargetScope owns the performers created for one target, at most one per
// performer class, and routes named plan removals to the performers that
// received plans under that name. Scopes are created lazily by a Registry
// keyed by target identity.
package scope
