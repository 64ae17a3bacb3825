package models

// User is a registered account. The password hash is never serialized.
type User struct {
	ID           int64  `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Email        string `json:"email" db:"email" gorm:"type:text;not null;unique"`
	Name         string `json:"name" db:"name" gorm:"type:text;not null"`
	PasswordHash string `json:"-" db:"password_hash" gorm:"type:text;not null"`
	RoleID       int64  `json:"role_id" db:"role_id" gorm:"not null;index"`

	Role *Role `json:"role,omitempty" gorm:"foreignKey:RoleID;references:ID"`
}
