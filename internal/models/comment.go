package models

type Comment struct {
	ID     uint64 `gorm:"primarykey" json:"id"`
	Text   string `gorm:"type:varchar(100);not null" json:"text"`
	UserID uint64 `gorm:"not null" json:"user_id"`
	PostID uint64 `gorm:"not null" json:"post_id"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Post Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"post,omitempty"`
}
