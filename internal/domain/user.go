package domain

// User represents a single entry in the user directory.
//
// Users are seed/reference data: they are created out-of-band (see cmd/seed)
// and are never mutated or deleted by this system. The ID is an opaque
// string chosen by whoever seeded the row.
//
// The address fields (Street, City, State, Zipcode) are optional in storage
// and may be NULL or carry surrounding whitespace there; the store layer
// normalizes them to trimmed, non-null strings on read, so consumers of this
// struct always see plain strings.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zipcode  string `json:"zipcode"`
}
