package models

import "time"

type User struct {
	ID       int    `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Nickname string `gorm:"size:50;uniqueIndex;not null" json:"nickname"`
	// Stored and compared as plain text to keep the seeded accounts'
	// login contract intact. Known defect, documented in DESIGN.md.
	Password  string    `gorm:"size:255;not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse is the public profile shape. The password field is
// structurally absent, not just tagged out of serialization.
type UserResponse struct {
	ID       int    `json:"id"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Nickname: u.Nickname,
		Email:    u.Email,
	}
}
