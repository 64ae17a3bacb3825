package models

// Project represents a crowdfunding campaign. Monetary amounts are stored as
// integer minor units (cents); dates are unix seconds.
type Project struct {
	ID              int64  `json:"id" db:"id" gorm:"primaryKey;autoIncrement;not null"`
	CreatorID       int64  `json:"creator_id" db:"creator_id" gorm:"not null;index"`
	Title           string `json:"title" db:"title" gorm:"type:text;not null"`
	Description     string `json:"description" db:"description" gorm:"type:text;not null"`
	TargetAmount    int64  `json:"target_amount" db:"target_amount" gorm:"not null"`
	CollectedAmount int64  `json:"collected_amount" db:"collected_amount" gorm:"not null;default:0"`
	CategoryID      int64  `json:"category_id" db:"category_id" gorm:"not null;index"`
	IsActive        bool   `json:"is_active" db:"is_active" gorm:"not null;default:true"`
	DateStart       int64  `json:"date_start" db:"date_start" gorm:"not null"`
	DateEnd         int64  `json:"date_end" db:"date_end" gorm:"not null"`

	Creator   *User      `json:"creator,omitempty" gorm:"foreignKey:CreatorID;references:ID"`
	Category  *Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
	Donations []Donation `json:"donations,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
	Rewards   []Reward   `json:"rewards,omitempty" gorm:"foreignKey:ProjectID;references:ID"`
}
