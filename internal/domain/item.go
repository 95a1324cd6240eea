package domain

import "time"

type ItemType string

const (
	ItemTypeCourse ItemType = "COURSE"
	ItemTypeTest   ItemType = "TEST"
)

// Item is a purchasable catalog entry: a course or a timed test with a
// bounded application window [StartAt, EndAt].
type Item struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Type      ItemType   `json:"item_type"`
	StartAt   time.Time  `json:"start_at"`
	EndAt     time.Time  `json:"end_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// AvailableAt reports whether t falls inside the application window.
func (i *Item) AvailableAt(t time.Time) bool {
	return !i.StartAt.After(t) && !i.EndAt.Before(t)
}

// ItemWithStats decorates an item with per-caller catalog info.
type ItemWithStats struct {
	Item
	RegistrationCount int  `json:"registration_count"`
	IsRegistered      bool `json:"is_registered"`
}

type ItemStatusFilter string

const (
	ItemStatusAvailable ItemStatusFilter = "AVAILABLE"
)

type ItemSort string

const (
	ItemSortCreated ItemSort = "CREATED"
	ItemSortPopular ItemSort = "POPULAR"
)

type ItemListParams struct {
	UserID int64
	Type   ItemType
	Page   int
	Size   int
	Status ItemStatusFilter
	Sort   ItemSort
}
