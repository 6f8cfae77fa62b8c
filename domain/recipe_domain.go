package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessUpdateRecipe    = "recipe updated successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessSearchRecipes   = "success search recipes"
	MessageSuccessGetCategories   = "success get categories"
	MessageSuccessUploadImage     = "image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedUpdateRecipe    = "failed to update recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedSearchRecipes   = "failed to search recipes"
	MessageFailedGetCategories   = "failed to get categories"
	MessageFailedUploadImage     = "failed to upload image"

	ErrRecipeNotFound       = errors.New("recipe not found")
	ErrUnsupportedMediaType = errors.New("invalid file type, allowed types: JPEG, PNG, WebP")
	ErrFileTooLarge         = errors.New("file size exceeds 5MB limit")
)

type (
	RecipeFilters struct {
		Category   string `json:"category,omitempty"`
		Difficulty string `json:"difficulty,omitempty" validate:"omitempty,oneof=easy medium hard"`
	}

	IngredientInput struct {
		Name   string  `json:"name" validate:"required,min=1"`
		Amount string  `json:"amount" validate:"required,min=1"`
		Unit   *string `json:"unit"`
	}

	CreateRecipeRequest struct {
		Title        string            `json:"title" validate:"required,min=1,max=200"`
		Description  *string           `json:"description"`
		PrepTime     *int              `json:"prep_time" validate:"omitempty,gt=0"`
		CookTime     *int              `json:"cook_time" validate:"omitempty,gt=0"`
		Servings     *int              `json:"servings" validate:"omitempty,gt=0"`
		Difficulty   *string           `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
		Category     *string           `json:"category"`
		ImageURL     *string           `json:"image_url" validate:"omitempty,url"`
		Ingredients  []IngredientInput `json:"ingredients" validate:"required,min=1,dive"`
		Instructions []string          `json:"instructions" validate:"required,min=1,dive,min=1"`
	}

	// UpdateRecipeRequest carries tri-state scalar fields: an absent key
	// leaves the stored column untouched, an explicit null clears it.
	// A non-nil Ingredients/Instructions slice (including an empty one)
	// replaces the whole child collection; nil leaves it alone.
	UpdateRecipeRequest struct {
		Title        Optional[string]   `json:"title"`
		Description  Optional[string]   `json:"description"`
		PrepTime     Optional[int]      `json:"prep_time"`
		CookTime     Optional[int]      `json:"cook_time"`
		Servings     Optional[int]      `json:"servings"`
		Difficulty   Optional[string]   `json:"difficulty"`
		Category     Optional[string]   `json:"category"`
		ImageURL     Optional[string]   `json:"image_url"`
		Ingredients  *[]IngredientInput `json:"ingredients"`
		Instructions *[]string          `json:"instructions"`
	}

	RecipeResponse struct {
		ID          uint      `json:"id"`
		Title       string    `json:"title"`
		Description *string   `json:"description"`
		PrepTime    *int      `json:"prep_time"`
		CookTime    *int      `json:"cook_time"`
		Servings    *int      `json:"servings"`
		Difficulty  *string   `json:"difficulty"`
		Category    *string   `json:"category"`
		ImageURL    *string   `json:"image_url"`
		CreatedAt   time.Time `json:"created_at"`
		UpdatedAt   time.Time `json:"updated_at"`
	}

	IngredientResponse struct {
		ID        uint    `json:"id"`
		RecipeID  uint    `json:"recipe_id"`
		Name      string  `json:"name"`
		Amount    string  `json:"amount"`
		Unit      *string `json:"unit"`
		SortOrder int     `json:"sort_order"`
	}

	InstructionResponse struct {
		ID          uint   `json:"id"`
		RecipeID    uint   `json:"recipe_id"`
		StepNumber  int    `json:"step_number"`
		Instruction string `json:"instruction"`
	}

	RecipeDetailResponse struct {
		RecipeResponse
		Ingredients  []IngredientResponse  `json:"ingredients"`
		Instructions []InstructionResponse `json:"instructions"`
	}

	CreateRecipeResponse struct {
		ID uint `json:"recipe_id"`
	}

	UploadImageRequest struct {
		RecipeName string                `json:"recipe_name" form:"recipe_name" validate:"required"`
		File       *multipart.FileHeader `json:"file" form:"file" validate:"required"`
	}

	UploadImageResponse struct {
		ImageURL string `json:"image_url"`
	}
)
