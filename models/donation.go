package models

// Donation is a single contribution to a project. Amount is in minor units
// and must be positive.
type Donation struct {
	ID        int64 `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	ProjectID int64 `json:"project_id" db:"project_id" gorm:"not null;index"`
	UserID    int64 `json:"user_id" db:"user_id" gorm:"not null;index"`
	Amount    int64 `json:"amount" db:"amount" gorm:"not null"`

	Project *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
}
