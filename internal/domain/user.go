// File: internal/domain/user.go
package domain

import (
	"errors"
	"strings"
	"time"
)

// User is a chat user profile. The identifier is caller-supplied (or a
// generated UUID); there are no credentials. Profiles are created on first
// contact and never deleted.
type User struct {
	ID           string    `gorm:"primarykey" json:"id"`
	Name         string    `json:"name"`
	CreatedAt    time.Time `json:"created_at"`
	LastActiveAt time.Time `json:"last_active_at"`
}

func (User) TableName() string { return "usuarios" }

func (u *User) IsValid() error {
	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id is required")
	}
	return nil
}
