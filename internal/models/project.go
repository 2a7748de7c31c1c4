package models

type Technology struct {
	ID   uint   `gorm:"column:id;primaryKey" json:"id"`
	Name string `gorm:"column:name;size:100;uniqueIndex;not null" json:"name" validate:"required,max=100"`
}

func (Technology) TableName() string { return "technologies" }

type Project struct {
	ID          uint   `gorm:"column:id;primaryKey" json:"id"`
	ProfileID   uint   `gorm:"column:profile_id;index;not null" json:"profile_id" validate:"required"`
	Name        string `gorm:"column:name;size:200" json:"name" validate:"required,max=200"`
	Description string `gorm:"column:description;type:text" json:"description" validate:"required"`
	Image       string `gorm:"column:image;type:text" json:"image" validate:"required"`
	LiveLink    string `gorm:"column:live_link;type:text" json:"live_link" validate:"omitempty,url"`
	GitHubLink  string `gorm:"column:github_link;type:text" json:"github_link" validate:"omitempty,url"`
	Order       int    `gorm:"column:sort_order;not null;default:0" json:"order" validate:"gte=0"`

	Technologies []ProjectTechnology `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"technologies,omitempty" validate:"-"`
}

func (Project) TableName() string { return "projects" }

func (p *Project) FileFields() []FileField {
	if p == nil {
		return nil
	}
	return []FileField{{Name: "image", Path: p.Image}}
}

// ProjectTechnology attaches a technology to a project with its own badge order.
type ProjectTechnology struct {
	ID           uint `gorm:"column:id;primaryKey" json:"id"`
	ProjectID    uint `gorm:"column:project_id;not null;uniqueIndex:uniq_project_technology" json:"project_id" validate:"required"`
	TechnologyID uint `gorm:"column:technology_id;not null;uniqueIndex:uniq_project_technology" json:"technology_id" validate:"required"`
	Order        int  `gorm:"column:sort_order;not null;default:0" json:"order" validate:"gte=0"`

	Technology *Technology `gorm:"foreignKey:TechnologyID;constraint:OnDelete:CASCADE" json:"technology,omitempty" validate:"-"`
}

func (ProjectTechnology) TableName() string { return "project_technologies" }
