package model

// Monster represents a game monster. Name is unique among non-null values.
type Monster struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        *string `gorm:"type:varchar(255);unique" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	Icon        *string `gorm:"type:varchar(255)" json:"icon"`
}
