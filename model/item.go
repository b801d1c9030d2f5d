package model

// Item represents a game item. Every column except the primary key is
// nullable, so nullable columns are pointer fields and JSON null round-trips.
type Item struct {
	ID               uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title            *string  `gorm:"type:varchar(255)" json:"title"`
	ShortDescription *string  `gorm:"type:varchar(255)" json:"short_description"`
	Quality          *int     `json:"quality"`
	Description      *string  `gorm:"type:text" json:"description"`
	Type             *string  `gorm:"type:varchar(255)" json:"type"`
	Icon             *string  `gorm:"type:varchar(255)" json:"icon"`
	ItemPool         []string `gorm:"serializer:json" json:"item_pool"`
}
