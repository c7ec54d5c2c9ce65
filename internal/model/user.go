package model

import (
	"strconv"
	"time"
)

// User stores Telegram user metadata and the latest message seen from them.
type User struct {
	ID              int64 `gorm:"column:user_id;primaryKey;autoIncrement:false"`
	Username        string
	LastMessage     *string
	LastMessageTime time.Time `gorm:"default:CURRENT_TIMESTAMP"`
}

// Display returns the @handle, or the numeric id when the handle is unknown.
func (u User) Display() string {
	if u.Username != "" {
		return "@" + u.Username
	}
	return "ID:" + strconv.FormatInt(u.ID, 10)
}
