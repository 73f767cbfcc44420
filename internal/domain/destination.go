package domain

// Destination is a named place a point can reference by id.
// Destinations are loaded once from the remote service and never created or
// edited by this client.
type Destination struct {
	ID          string
	Name        string
	Description string
	Pictures    []Picture
}

// Picture is a single photo attached to a destination.
type Picture struct {
	Src         string
	Description string
}
