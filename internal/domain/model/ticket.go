package model

import "strings"

// Ticket is one record from the ticket-listing endpoint. ID is the
// stringified, trimmed "idx" field; Raw keeps the untouched record for
// downstream payloads.
type Ticket struct {
	ID    string
	Title string
	Raw   map[string]any
}

// KnownIDSet holds ticket IDs that were already seen and should not
// trigger notifications. It is built once at startup and never mutated.
type KnownIDSet map[string]struct{}

// NewKnownIDSet builds a set from raw ID strings, trimming whitespace and
// dropping empty entries.
func NewKnownIDSet(ids []string) KnownIDSet {
	set := make(KnownIDSet, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether the ID is already known.
func (s KnownIDSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of known IDs.
func (s KnownIDSet) Len() int {
	return len(s)
}
