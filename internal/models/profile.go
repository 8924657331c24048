package models

import (
	"time"
)

type Profile struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Nickname  string    `gorm:"type:varchar(20);not null" json:"nickname"`
	UserID    uint64    `gorm:"uniqueIndex;not null" json:"user_id"`
	CreatedOn time.Time `gorm:"autoCreateTime;<-:create" json:"created_on"`
	Img       *string   `gorm:"type:varchar(255)" json:"img"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
