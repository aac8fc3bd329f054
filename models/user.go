package models

import (
	"time"
)

// User types stored in users.user_type.
const (
	UserTypeAuthor   = "author"
	UserTypeReviewer = "reviewer"
	UserTypeEditor   = "editor"
)

type User struct {
	UserID      int       `gorm:"primaryKey;column:user_id" json:"user_id"`
	FirstName   string    `gorm:"column:first_name" json:"first_name"`
	LastName    string    `gorm:"column:last_name" json:"last_name"`
	Email       string    `gorm:"column:email;unique" json:"email"`
	Password    string    `gorm:"column:password" json:"-"`
	UserType    string    `gorm:"column:user_type" json:"user_type"`
	Institution string    `gorm:"column:institution" json:"institution"`
	Department  *string   `gorm:"column:department" json:"department,omitempty"`
	Title       *string   `gorm:"column:title" json:"title,omitempty"`
	Expertise   []string  `gorm:"column:expertise;serializer:json" json:"expertise,omitempty"`
	CreateAt    time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
}

// TableName overrides
func (User) TableName() string {
	return "users"
}

// HasExpertise reports whether the user lists the given field as an
// expertise tag. Matching is exact; no fuzzy or prefix matching.
func (u *User) HasExpertise(field string) bool {
	for _, tag := range u.Expertise {
		if tag == field {
			return true
		}
	}
	return false
}

// IsReviewer reports whether the user can be assigned papers to review.
func (u *User) IsReviewer() bool {
	return u.UserType == UserTypeReviewer
}
