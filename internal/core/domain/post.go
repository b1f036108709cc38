package domain

import (
	"errors"
	"time"
)

var ErrPostNotFound = errors.New("post not found")

// ErrStoreFailure marks any persistence error that is not a known domain
// condition. Repositories wrap the driver error alongside it.
var ErrStoreFailure = errors.New("store failure")

// Post is a single blog entry. Posts carry no author attribution.
type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// PostOrder selects how a post listing is ordered.
type PostOrder int

const (
	// OrderNatural leaves the order to the store.
	OrderNatural PostOrder = iota
	// OrderNewestFirst sorts by CreatedAt descending.
	OrderNewestFirst
)
