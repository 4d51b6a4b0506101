package models

import "time"

// Livestock is a marketplace listing owned by a User
type Livestock struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	Breed       string     `gorm:"not null" json:"breed"`
	Age         string     `gorm:"not null" json:"age"`
	Weight      string     `gorm:"not null" json:"weight"`
	Price       float64    `gorm:"not null" json:"price"`
	Location    string     `gorm:"not null" json:"location"`
	Image       string     `json:"image"`
	Description string     `json:"description"`
	OwnerID     uint       `gorm:"not null;index" json:"owner_id"`
	IsActive    bool       `gorm:"not null;default:true" json:"is_active"`
	IsDeleted   bool       `gorm:"not null;default:false;index" json:"-"`
	DeletedAt   *time.Time `json:"-"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`

	Owner User `gorm:"foreignKey:OwnerID" json:"-"`
}

// TableName overrides the table name
func (Livestock) TableName() string {
	return "livestock"
}

// SoftDelete marks the listing as deleted without removing the row
func (l *Livestock) SoftDelete() {
	now := time.Now().UTC()
	l.IsDeleted = true
	l.DeletedAt = &now
	l.IsActive = false
}

// Restore reverses a soft delete
func (l *Livestock) Restore() {
	l.IsDeleted = false
	l.DeletedAt = nil
	l.IsActive = true
}
