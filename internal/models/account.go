package models

import "time"

type Account struct {
	ID           uint      `gorm:"column:id;primaryKey" json:"id"`
	Username     string    `gorm:"column:username;size:150;uniqueIndex;not null" json:"username" validate:"required,max=150"`
	Email        string    `gorm:"column:email;size:254" json:"email" validate:"omitempty,email,max=254"`
	FirstName    string    `gorm:"column:first_name;size:150" json:"first_name" validate:"max=150"`
	LastName     string    `gorm:"column:last_name;size:150" json:"last_name" validate:"max=150"`
	PasswordHash string    `gorm:"column:password_hash;type:text" json:"-"`
	IsStaff      bool      `gorm:"column:is_staff" json:"is_staff"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`

	Profile *Profile `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE" json:"profile,omitempty" validate:"-"`
}

func (Account) TableName() string { return "accounts" }

// Role is the claim carried by admin tokens.
func (a *Account) Role() string {
	if a.IsStaff {
		return RoleAdmin
	}
	return RoleUser
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
