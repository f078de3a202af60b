package model

// Role identifies the business role of the user a report is generated
// for. The role drives item visibility and annotation rules.
//
// Design decision: We use a typed string rather than an int enum
// because roles arrive as strings from the data store and the exact
// spelling ("ADMIN", "USER") is part of the business contract.
type Role string

const (
	// RoleAdmin sees every item; items above the priority threshold are
	// flagged for visual emphasis.
	RoleAdmin Role = "ADMIN"

	// RoleUser sees only items at or below the value limit, with no
	// priority annotation.
	RoleUser Role = "USER"
)

// Known reports whether the role is one the business rules recognize.
// Unknown roles are not an error: they produce an empty report.
func (r Role) Known() bool {
	return r == RoleAdmin || r == RoleUser
}

// String returns the role as stored, e.g. "ADMIN".
func (r Role) String() string {
	return string(r)
}

// User is the person a report is generated for. Immutable input;
// no component mutates a User after construction.
type User struct {
	// ID is the user's unique identifier in the data store.
	ID int64 `json:"id"`

	// Name is the user's display name. The CSV format repeats it on
	// every row; the HTML format shows it once in the heading.
	Name string `json:"name"`

	// Role selects the visibility rule applied to the user's items.
	Role Role `json:"role"`
}
