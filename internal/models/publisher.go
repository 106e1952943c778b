package models

type Publisher struct {
	BaseModel

	Name    string `gorm:"size:100;not null;index" json:"name"`
	Address string `gorm:"size:150" json:"address"`
	Phone   string `gorm:"size:20" json:"phone"`

	// Books keep their rows when a publisher goes away; only the reference
	// is cleared.
	Books []Book `gorm:"foreignKey:PublisherID;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"-"`
}
