package domain

// UpdateScope tags a model notification with how much of the UI must be
// rebuilt in response.
type UpdateScope string

const (
	// ScopePatch is a single-field change (e.g. a favorite toggle) that
	// needs no refilter or resort — only the one item re-renders.
	ScopePatch UpdateScope = "patch"
	// ScopeMinor is a full point change: the list must be re-projected,
	// but the current filter and sort selection stay.
	ScopeMinor UpdateScope = "minor"
	// ScopeMajor means the filter or sort criteria themselves changed.
	ScopeMajor UpdateScope = "major"
	// ScopeInit signals the initial load finished.
	ScopeInit UpdateScope = "init"
	// ScopeError signals the initial load failed.
	ScopeError UpdateScope = "error"
)

// UserAction names a mutation intent dispatched from a presenter to the
// point collection model.
type UserAction string

const (
	ActionCreate UserAction = "create"
	ActionUpdate UserAction = "update"
	ActionDelete UserAction = "delete"
)
