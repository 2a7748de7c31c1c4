package models

type Skill struct {
	ID         uint   `gorm:"column:id;primaryKey" json:"id"`
	ProfileID  uint   `gorm:"column:profile_id;index;not null" json:"profile_id" validate:"required"`
	Name       string `gorm:"column:name;size:100" json:"name" validate:"required,max=100"`
	Percentage int    `gorm:"column:percentage;not null" json:"percentage" validate:"gte=0,lte=100"`
	Order      int    `gorm:"column:sort_order;not null;default:0" json:"order" validate:"gte=0"`
}

func (Skill) TableName() string { return "skills" }
