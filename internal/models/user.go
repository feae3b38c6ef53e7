package models

// UserDB represents a user record in the database
type UserDB struct {
	ID           int64  `json:"id" db:"id"`             // Primary key
	Email        string `json:"email" db:"email"`       // Unique login email
	Username     string `json:"username" db:"username"` // Display name
	PasswordHash string `json:"-" db:"password_hash"`   // Bcrypt hash, never serialized
}
