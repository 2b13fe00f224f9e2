package entity

import "time"

// Floor representa un piso del hotel. Number es único.
type Floor struct {
	ID          string
	Number      int
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
