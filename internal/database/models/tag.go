package models

type Tag struct {
	BaseModel
	Name  string `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Color string `json:"color" gorm:"not null;size:7" validate:"required,hexcolor"`
	Slug  string `json:"slug" gorm:"uniqueIndex;not null;size:50" validate:"required,max=50"`
}

// TableName returns the table name for Tag
func (Tag) TableName() string {
	return "tags"
}
