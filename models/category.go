package models

// Category groups projects by theme
type Category struct {
	ID   int64  `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	Name string `json:"name" db:"name" gorm:"type:text;not null;unique"`

	Projects []Project `json:"projects,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
}
