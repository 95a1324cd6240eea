package domain

import "time"

type User struct {
	ID             int64      `json:"id"`
	Email          string     `json:"email"`
	HashedPassword string     `json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`
}

type SignupInput struct {
	Email    string
	Password string
}
