package model

import "time"

// Item is the domain model for a list entry.
// ID and CreatedAt are set once by the store and never change afterwards.
type Item struct {
	ID        string    `json:"id" yaml:"id"`
	Title     string    `json:"title" yaml:"title"`
	Subtitle  string    `json:"subtitle" yaml:"subtitle"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

// Newest returns a copy of items in reverse insertion order.
func Newest(items []Item) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		out[len(items)-1-i] = it
	}
	return out
}
