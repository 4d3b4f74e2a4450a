package domain

import "time"

// Story is a slot-rotated promotional record with an admin-controlled
// lifecycle. SlotNumber is nil for stories created outside a slot.
type Story struct {
	ID         int
	FileID     string
	Caption    *string
	SlotNumber *int
	OrderNum   int
	CreatedAt  time.Time
	IsActive   bool
}

type StoryView struct {
	ID         int       `json:"id"`
	FileID     string    `json:"file_id"`
	PhotoURL   string    `json:"photo_url"`
	Caption    *string   `json:"caption"`
	SlotNumber *int      `json:"slot_number,omitempty"`
	OrderNum   int       `json:"order_num"`
	CreatedAt  time.Time `json:"created_at"`
	IsActive   bool      `json:"is_active"`
}

// StoryPatch is a set of independently-optional assignments. Nil
// fields are left untouched by an update.
type StoryPatch struct {
	Caption  *string `json:"caption"`
	OrderNum *int    `json:"order_num"`
	IsActive *bool   `json:"is_active"`
}

func (p StoryPatch) IsEmpty() bool {
	return p.Caption == nil && p.OrderNum == nil && p.IsActive == nil
}
