package models

// Ingredient is catalog reference data: a name paired with its measurement unit.
// The (name, measurement_unit) index is not unique on purpose.
type Ingredient struct {
	BaseModel
	Name            string `json:"name" gorm:"not null;size:200;index:idx_ingredients_name_unit" validate:"required,max=200"`
	MeasurementUnit string `json:"measurement_unit" gorm:"not null;size:200;index:idx_ingredients_name_unit" validate:"required,max=200"`
}

// TableName returns the table name for Ingredient
func (Ingredient) TableName() string {
	return "ingredients"
}
