package model

import (
	"time"
)

// FavoriteModel mirrors the 'user_favorites' table. The composite primary key
// (user_id, movie_id) is the invariant that makes duplicate adds impossible,
// including under concurrent writers.
type FavoriteModel struct {
	UserID     int64   `gorm:"primaryKey;autoIncrement:false"`
	MovieID    int64   `gorm:"primaryKey;autoIncrement:false"`
	MovieTitle string  `gorm:"type:varchar(255);not null"`
	PosterPath *string `gorm:"type:varchar(255)"`
	AddedAt    time.Time `gorm:"autoCreateTime;index"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "user_favorites"
}
