package models

type Experience struct {
	ID          uint   `gorm:"column:id;primaryKey" json:"id"`
	ProfileID   uint   `gorm:"column:profile_id;index;not null" json:"profile_id" validate:"required"`
	Name        string `gorm:"column:name;size:200" json:"name" validate:"required,max=200"`       // qualification or job title
	Company     string `gorm:"column:company;size:200" json:"company" validate:"required,max=200"` // institution or company
	Description string `gorm:"column:description;type:text" json:"description"`
	Order       int    `gorm:"column:sort_order;not null;default:0" json:"order" validate:"gte=0"`
}

func (Experience) TableName() string { return "experiences" }
