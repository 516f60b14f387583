package domain

// GroupValue is one entry of an aggregate sequence.
type GroupValue struct {
	Key   string
	Value float64
}

// Order controls how an aggregate sequence is arranged.
type Order int

const (
	// OrderFirstSeen keeps groups in the order they first appear in the view.
	OrderFirstSeen Order = iota
	// OrderKeyAsc sorts by key; keys that are all integers compare numerically.
	OrderKeyAsc
	// OrderValueDesc sorts by value descending, ties broken by key ascending.
	OrderValueDesc
)
