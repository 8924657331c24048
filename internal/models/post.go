package models

import (
	"time"
)

type Post struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"type:varchar(100);not null" json:"title"`
	UserID    uint64    `gorm:"not null" json:"user_id"`
	CreatedOn time.Time `gorm:"autoCreateTime;<-:create" json:"created_on"`
	Img       *string   `gorm:"type:varchar(255)" json:"img"`

	// Relations
	User  User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Liked []User `gorm:"many2many:post_likes;constraint:OnDelete:CASCADE" json:"liked,omitempty"`
}
