package models

import "time"

// Farmer is the role-specific profile linked 1:1 to a User
type Farmer struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	UserID       uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	FarmName     string     `gorm:"not null;index" json:"farm_name"`
	FarmLocation string     `json:"farm_location"`
	IsActive     bool       `gorm:"not null;default:true" json:"is_active"`
	IsDeleted    bool       `gorm:"not null;default:false;index" json:"-"`
	DeletedAt    *time.Time `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
}

// TableName overrides the table name
func (Farmer) TableName() string {
	return "farmers"
}

// SoftDelete marks the farmer profile as deleted
func (f *Farmer) SoftDelete() {
	now := time.Now().UTC()
	f.IsDeleted = true
	f.DeletedAt = &now
	f.IsActive = false
}

// Restore reverses a soft delete
func (f *Farmer) Restore() {
	f.IsDeleted = false
	f.DeletedAt = nil
	f.IsActive = true
}
