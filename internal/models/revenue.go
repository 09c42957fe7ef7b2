package models

type Revenue struct {
	Month   string `gorm:"primaryKey;size:4"`
	Revenue int64  // cents
}
