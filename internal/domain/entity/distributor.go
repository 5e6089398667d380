package entity

import "time"

type Distributor struct {
	ID           int64
	Name         string
	ContactEmail string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (d Distributor) String() string {
	return d.Name
}
