package models

import "time"

// Broker is the role-specific profile linked 1:1 to a User
type Broker struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	UserID      uint       `gorm:"uniqueIndex;not null" json:"user_id"`
	CompanyName string     `gorm:"not null;index" json:"company_name"`
	Address     string     `json:"address"`
	IsActive    bool       `gorm:"not null;default:true" json:"is_active"`
	IsDeleted   bool       `gorm:"not null;default:false;index" json:"-"`
	DeletedAt   *time.Time `json:"-"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TableName overrides the table name
func (Broker) TableName() string {
	return "brokers"
}

// SoftDelete marks the broker profile as deleted
func (b *Broker) SoftDelete() {
	now := time.Now().UTC()
	b.IsDeleted = true
	b.DeletedAt = &now
	b.IsActive = false
}

// Restore reverses a soft delete
func (b *Broker) Restore() {
	b.IsDeleted = false
	b.DeletedAt = nil
	b.IsActive = true
}
