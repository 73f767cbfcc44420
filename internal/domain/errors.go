package domain

import "errors"

// ErrLoad is wrapped by gateway and model functions when reference or
// collection data fails to load. The UI degrades to an empty dataset with a
// persistent error placeholder; there is no automatic retry.
var ErrLoad = errors.New("load failed")

// ErrWrite is wrapped when the remote service rejects a create, update, or
// delete. The originating presenter reverts to its pre-attempt state and
// flags the control that triggered the write.
var ErrWrite = errors.New("write rejected")

// ErrPrecondition is returned when an operation violates a programming
// contract, e.g. updating a point the collection does not hold. Presenters
// are expected to prevent these proactively; it is not a user-facing error.
var ErrPrecondition = errors.New("precondition violation")

// ErrNotFound is returned by the stub service when the requested resource
// does not exist. The real remote service reports the same condition as a
// plain HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when form input fails a business rule
// (e.g. a point referencing an unknown destination).
var ErrValidation = errors.New("validation error")
