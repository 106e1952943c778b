package models

// Role is an ordinal, but authorization is decided by exact set membership
// per operation, never by >= comparisons.
type Role int

const (
	RoleUser Role = iota
	RoleEditor
	RoleModerator
)

type User struct {
	BaseModel

	FirstName    string `gorm:"size:100;not null" json:"first_name"`
	LastName     string `gorm:"size:100;not null;index" json:"last_name"`
	Email        string `gorm:"size:150;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:100;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`
	Role         Role   `gorm:"not null;default:0" json:"role"`
	// No default tag: gorm drops zero-valued fields carrying a default on
	// Create, which would silently store blocked users as active. Every
	// create site sets IsActive explicitly.
	IsActive bool `gorm:"not null" json:"is_active"`

	// Relationships
	Tokens   []Token   `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Comments []Comment `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Reports  []Report  `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
