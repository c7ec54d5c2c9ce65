package model

// Word is a normalized token learned from user messages.
type Word struct {
	Word string `gorm:"primaryKey"`
}
