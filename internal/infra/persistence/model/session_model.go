package model

import (
	"time"
)

// SessionModel mirrors the 'sessions' table. Only the SHA-256 hash of the
// session token is stored; expired rows linger until swept or deleted.
type SessionModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	UserID    int64  `gorm:"not null;index"`
	TokenHash string `gorm:"type:varchar(64);unique;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
