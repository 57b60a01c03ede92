package model

import (
	"time"
)

// EmailQueueModel is the GORM-specific struct for the 'email_queue' table.
// The unique index over the dedup columns is what keeps concurrent writers
// from queuing the same notification twice.
type EmailQueueModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	UserID        int64  `gorm:"not null;uniqueIndex:uniq_email_queue_dedup,priority:1"`
	AddressID     int64  `gorm:"not null;uniqueIndex:uniq_email_queue_dedup,priority:2"`
	OldAddress    string `gorm:"type:text;not null"`
	NewAddress    string `gorm:"type:text;not null"`
	OldAddressKey string `gorm:"type:text;not null;uniqueIndex:uniq_email_queue_dedup,priority:3"`
	NewAddressKey string `gorm:"type:text;not null;uniqueIndex:uniq_email_queue_dedup,priority:4"`
	Status        int8   `gorm:"type:smallint;not null;default:0"`
	IsEmailSent   bool   `gorm:"not null;default:false"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (EmailQueueModel) TableName() string {
	return "email_queue"
}
