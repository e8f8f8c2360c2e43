package users

import "time"

// User is the directory entry. It is passed around by value; nothing in this
// package mutates a User once it has been returned.
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
