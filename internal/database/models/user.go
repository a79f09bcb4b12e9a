package models

// User is a registered account. Identity issuance happens outside this service;
// the row holds the profile that recipes, memberships and subscriptions point at.
type User struct {
	BaseModel
	Email     string `json:"email" gorm:"uniqueIndex;not null;size:254" validate:"required,email,max=254"`
	Username  string `json:"username" gorm:"uniqueIndex;not null;size:150" validate:"required,max=150"`
	FirstName string `json:"first_name" gorm:"not null;size:150" validate:"required,max=150"`
	LastName  string `json:"last_name" gorm:"not null;size:150" validate:"required,max=150"`
	IsAdmin   bool   `json:"is_admin" gorm:"not null;default:false"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
