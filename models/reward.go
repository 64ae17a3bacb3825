package models

// Reward is a perk offered by a project. ProjectID is optional: a reward can
// be drafted before it is attached to a project.
type Reward struct {
	ID               int64  `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	ProjectID        *int64 `json:"project_id,omitempty" db:"project_id" gorm:"index"`
	Title            string `json:"title" db:"title" gorm:"type:text;not null"`
	Description      string `json:"description" db:"description" gorm:"type:text;not null"`
	RequiredQuantity int64  `json:"required_quantity" db:"required_quantity" gorm:"not null;default:0"`

	Project *Project `json:"project,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
}
