package models

type Tool struct {
	ID        uint   `gorm:"column:id;primaryKey" json:"id"`
	ProfileID uint   `gorm:"column:profile_id;index;not null" json:"profile_id" validate:"required"`
	Name      string `gorm:"column:name;size:100" json:"name" validate:"required,max=100"`
	Image     string `gorm:"column:image;type:text" json:"image" validate:"required,fileext=svg png jpg jpeg"`
	Order     int    `gorm:"column:sort_order;not null;default:0" json:"order" validate:"gte=0"`
}

func (Tool) TableName() string { return "tools" }

func (t *Tool) FileFields() []FileField {
	if t == nil {
		return nil
	}
	return []FileField{{Name: "image", Path: t.Image}}
}
