package models

import (
	"regexp"
	"time"
	"unicode"
)

// Roles a user can register with
const (
	RoleUser   = "user"
	RoleFarmer = "farmer"
	RoleBroker = "broker"
	RoleAdmin  = "admin"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\d{10}$`)
)

// User represents the user domain entity
type User struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	Name         string     `gorm:"not null" json:"name"`
	Email        string     `gorm:"uniqueIndex;not null" json:"email"`
	Phone        string     `gorm:"size:10;not null" json:"phone"`
	Role         string     `gorm:"not null;default:user" json:"role"`
	PasswordHash string     `gorm:"not null" json:"-"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	IsDeleted    bool       `gorm:"not null;default:false;index" json:"-"`
	DeletedAt    *time.Time `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Role-specific profiles, at most one each
	Farmer *Farmer `gorm:"foreignKey:UserID" json:"farmer,omitempty"`
	Broker *Broker `gorm:"foreignKey:UserID" json:"broker,omitempty"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}

func (u *User) IsFarmer() bool {
	return u.Role == RoleFarmer
}

func (u *User) IsBroker() bool {
	return u.Role == RoleBroker
}

// SoftDelete marks the user as deleted without removing the row
func (u *User) SoftDelete() {
	now := time.Now().UTC()
	u.IsDeleted = true
	u.DeletedAt = &now
	u.IsActive = false
}

// Restore reverses a soft delete
func (u *User) Restore() {
	u.IsDeleted = false
	u.DeletedAt = nil
	u.IsActive = true
}

// IsValidRole reports whether role is one of the accepted roles
func IsValidRole(role string) bool {
	switch role {
	case RoleUser, RoleFarmer, RoleBroker, RoleAdmin:
		return true
	}
	return false
}

// IsValidPassword requires at least 8 characters with at least one
// uppercase letter, one lowercase letter and one digit
func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasUpper && hasLower && hasDigit
}

// IsValidEmail performs basic email format validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidPhone requires exactly 10 digits
func IsValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}
