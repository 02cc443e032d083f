package models

type Feedback struct {
	ID       uint   `gorm:"primaryKey"`
	Title    string `gorm:"size:100;not null"`
	Content  string `gorm:"type:text;not null"`
	Username string `gorm:"size:20;not null;index"`

	// Relationships
	User User `gorm:"foreignKey:Username;references:Username;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
