package entity

import "time"

// Tag — метка сделки, имя уникально.
type Tag struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (t Tag) String() string {
	return t.Name
}
