// Package token tracks units of continuous work performed on behalf of
// performers. A Pool holds every active token of a runtime; its emptiness
// defines whether the runtime is idle or active.
package token
