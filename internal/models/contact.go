package models

import (
	"time"

	"gorm.io/datatypes"
)

// Contact is a message left through the public form. Rows are never updated.
type Contact struct {
	ID        uint           `gorm:"column:id;primaryKey" json:"id"`
	ProfileID uint           `gorm:"column:profile_id;index;not null" json:"profile_id" validate:"required"`
	Name      string         `gorm:"column:name;size:100" json:"name" validate:"required,max=100"`
	Email     string         `gorm:"column:email;size:254" json:"email" validate:"required,email,max=254"`
	Subject   string         `gorm:"column:subject;size:200" json:"subject" validate:"required,max=200"`
	Message   string         `gorm:"column:message;type:text" json:"message" validate:"required"`
	Meta      datatypes.JSON `gorm:"column:meta" json:"meta,omitempty"` // client ip, user agent
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime;index" json:"created_at"`
}

func (Contact) TableName() string { return "contacts" }

// ContactMeta is stored in Contact.Meta.
type ContactMeta struct {
	ClientIP  string `json:"client_ip,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}

// All lists every model in migration order.
func All() []any {
	return []any{
		&Account{}, &Profile{}, &Experience{}, &Skill{}, &Tool{},
		&Technology{}, &Project{}, &ProjectTechnology{}, &Contact{},
	}
}
