package entity

import "time"

type Company struct {
	ID        int64
	Name      string
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c Company) String() string {
	return c.Name
}
