package domain

import "time"

// DateRange is a half-open travel window; nil ends mean unset.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// SearchCriteria is the transient search/filter state. It lives only in the
// application store and is never persisted.
type SearchCriteria struct {
	Query               string
	SelectedDestination DestinationID
	Dates               DateRange
	Guests              int
}
