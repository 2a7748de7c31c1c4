package models

import "time"

type Profile struct {
	ID                 uint   `gorm:"column:id;primaryKey" json:"id"`
	AccountID          uint   `gorm:"column:account_id;uniqueIndex;not null" json:"account_id" validate:"required"`
	Designation        string `gorm:"column:designation;size:100" json:"designation" validate:"required,max=100"`
	Description        string `gorm:"column:description;type:text" json:"description" validate:"required"`
	AboutMe            string `gorm:"column:about_me;type:text" json:"about_me" validate:"required"`
	ContactDescription string `gorm:"column:contact_description;type:text" json:"contact_description"`
	Phone              string `gorm:"column:phone;size:20" json:"phone" validate:"max=20"`
	Experience         string `gorm:"column:experience;size:50" json:"experience" validate:"required,max=50"`
	Location           string `gorm:"column:location;size:100" json:"location" validate:"required,max=100"`
	GitHub             string `gorm:"column:github;type:text" json:"github" validate:"omitempty,url"`
	LinkedIn           string `gorm:"column:linkedin;type:text" json:"linkedin" validate:"omitempty,url"`
	Instagram          string `gorm:"column:instagram;type:text" json:"instagram" validate:"omitempty,url"`
	Facebook           string `gorm:"column:facebook;type:text" json:"facebook" validate:"omitempty,url"`

	// Storage keys; image1 is the hero image, image2 the about image.
	Image1 string `gorm:"column:image1;type:text" json:"image1" validate:"required"`
	Image2 string `gorm:"column:image2;type:text" json:"image2" validate:"required"`
	CV     string `gorm:"column:cv;type:text" json:"cv" validate:"required"`

	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Account     *Account     `gorm:"foreignKey:AccountID" json:"account,omitempty" validate:"-"`
	Experiences []Experience `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"experiences,omitempty" validate:"-"`
	Skills      []Skill      `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"skills,omitempty" validate:"-"`
	Tools       []Tool       `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"tools,omitempty" validate:"-"`
	Projects    []Project    `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"projects,omitempty" validate:"-"`
	Contacts    []Contact    `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE" json:"-" validate:"-"`
}

func (Profile) TableName() string { return "profiles" }

func (p *Profile) FileFields() []FileField {
	if p == nil {
		return nil
	}
	return []FileField{
		{Name: "image1", Path: p.Image1},
		{Name: "image2", Path: p.Image2},
		{Name: "cv", Path: p.CV},
	}
}
