// Package progress keeps aggregated dispatch counters (plans delivered,
// performers created, tokens generated and terminated, …) for a runtime and
// lets callers observe them as they change.
package progress
