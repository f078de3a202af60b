package model

// Item is a single report line as supplied by the data store.
// Immutable input; processing derives new values and never writes back.
type Item struct {
	// ID is the item's unique identifier.
	ID int64 `json:"id"`

	// Name is the item's display name.
	Name string `json:"name"`

	// Value is the item's monetary value. Business thresholds
	// (user value limit, admin priority threshold) compare against it.
	Value float64 `json:"value"`
}

// ProcessedItem is an Item after the role rule has been applied.
// It is always a fresh value, never an alias of the source Item.
type ProcessedItem struct {
	Item

	// Priority marks an item whose value exceeds the admin priority
	// threshold. It is only meaningful on the admin path; the user path
	// never sets it.
	Priority bool `json:"priority,omitempty"`
}
