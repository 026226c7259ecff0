package models

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type Address struct {
	FullName      string `json:"full_name" binding:"required,min=3"`
	StreetAddress string `json:"street_address" binding:"required,min=5"`
	City          string `json:"city" binding:"required,min=2"`
	State         string `json:"state" binding:"required,min=2"`
	PostalCode    string `json:"postal_code" binding:"required,min=5"`
	Country       string `json:"country" binding:"required,min=2"`
}

// SessionUser is the signed-in identity kept in a session's auth snapshot.
type SessionUser struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	IsAuthenticated bool   `json:"is_authenticated"`
}

// AuthSnapshot is the persisted auth state of one session.
type AuthSnapshot struct {
	User      *SessionUser `json:"user"`
	Addresses []Address    `json:"addresses"`
}
