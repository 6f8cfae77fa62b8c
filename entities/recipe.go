package entities

import (
	"time"
)

type Recipe struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description"`
	PrepTime    *int      `json:"prep_time"`
	CookTime    *int      `json:"cook_time"`
	Servings    *int      `json:"servings"`
	Difficulty  *string   `gorm:"size:16" json:"difficulty"`
	Category    *string   `json:"category"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Ingredients  []Ingredient  `gorm:"constraint:OnDelete:CASCADE" json:"ingredients,omitempty"`
	Instructions []Instruction `gorm:"constraint:OnDelete:CASCADE" json:"instructions,omitempty"`
}

type Ingredient struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	RecipeID  uint    `gorm:"not null;index" json:"recipe_id"`
	Name      string  `gorm:"not null" json:"name"`
	Amount    string  `gorm:"not null" json:"amount"`
	Unit      *string `json:"unit"`
	SortOrder int     `gorm:"not null;default:0" json:"sort_order"`
}

type Instruction struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	RecipeID    uint   `gorm:"not null;index" json:"recipe_id"`
	StepNumber  int    `gorm:"not null" json:"step_number"`
	Instruction string `gorm:"type:text;not null" json:"instruction"`
}
