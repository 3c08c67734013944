package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username     string `json:"username" gorm:"unique;not null"`
	FirstName    string `json:"first_name" gorm:"default:''"`
	LastName     string `json:"last_name" gorm:"default:''"`
	Email        string `json:"email" gorm:"unique;not null"`
	Password     string `json:"-" gorm:"not null"`
	Role         Role   `json:"role" gorm:"type:varchar(20);default:'student'"`
	Bio          string `json:"bio" gorm:"default:''"`
	ProfileImage string `json:"profile_image" gorm:"default:''"`
	PhoneNumber  string `json:"phone_number" gorm:"default:''"`
	Country      string `json:"country" gorm:"default:''"`

	IsVerified  bool       `json:"is_verified" gorm:"default:false"`
	LastLogin   *time.Time `json:"last_login"`
	LastLoginIP string     `json:"-" gorm:"default:''"`
	IsDeleted   bool       `json:"-" gorm:"default:false"`
}

// FullName returns first and last name joined, falling back to the username.
// Certificate snapshots depend on this fallback.
func (u *User) FullName() string {
	full := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if full == "" {
		return u.Username
	}
	return full
}
