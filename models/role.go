package models

// Role names known at migration time.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Role is a named group of users carrying a permission set.
type Role struct {
	ID   int64  `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name string `json:"name" db:"name" gorm:"type:text;not null;unique"`

	Users []User `json:"users,omitempty" gorm:"foreignKey:RoleID;references:ID"`
}
