package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ChatSession is the single collection of the system: one row per session,
// with the full message history embedded as a JSONB array. This mirrors a
// document store's update-with-array-push layout instead of a separate
// messages table.
type ChatSession struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        string         `gorm:"type:varchar(64);not null;index"` // User ownership for data isolation
	Title         string         `gorm:"type:text;not null"`
	Language      string         `gorm:"type:varchar(8);not null"`
	Messages      datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	IsActive      bool           `gorm:"not null;default:true;index"`
	TotalMessages int            `gorm:"not null;default:0"`
	LastActivity  time.Time      `gorm:"not null"`
	Category      string         `gorm:"type:text"`
	Tags          datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
