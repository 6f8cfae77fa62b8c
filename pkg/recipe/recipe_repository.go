package recipe

import (
	"context"
	"errors"
	"recipe-box-backend/domain"
	"recipe-box-backend/entities"
	"strings"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		GetRecipes(ctx context.Context, filters domain.RecipeFilters) ([]*entities.Recipe, error)
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		GetRecipeWithDetails(ctx context.Context, id uint) (*entities.Recipe, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (uint, error)
		UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest) error
		DeleteRecipe(ctx context.Context, id uint) error
		SearchRecipes(ctx context.Context, query string, filters domain.RecipeFilters) ([]*entities.Recipe, error)
		SearchRecipesByIngredients(ctx context.Context, query string) ([]*entities.Recipe, error)
		SearchRecipesByInstructions(ctx context.Context, query string) ([]*entities.Recipe, error)
		GetCategories(ctx context.Context) ([]string, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func applyFilters(query *gorm.DB, filters domain.RecipeFilters) *gorm.DB {
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Difficulty != "" {
		query = query.Where("difficulty = ?", filters.Difficulty)
	}
	return query
}

func (r *recipeRepository) GetRecipes(ctx context.Context, filters domain.RecipeFilters) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe

	query := applyFilters(r.db.WithContext(ctx), filters)
	if err := query.Order("created_at desc").Find(&recipes).Error; err != nil {
		return nil, err
	}

	return recipes, nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipeWithDetails(ctx context.Context, id uint) (*entities.Recipe, error) {
	recipe, err := r.GetRecipeByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", id).
		Order("sort_order").
		Find(&recipe.Ingredients).Error; err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", id).
		Order("step_number").
		Find(&recipe.Instructions).Error; err != nil {
		return nil, err
	}

	return recipe, nil
}

// CreateRecipe inserts the recipe row and both child collections as one
// transaction. Sort order and step numbers are derived from array position,
// never taken from the caller.
func (r *recipeRepository) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (uint, error) {
	var recipeID uint

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		recipe := entities.Recipe{
			Title:       req.Title,
			Description: req.Description,
			PrepTime:    req.PrepTime,
			CookTime:    req.CookTime,
			Servings:    req.Servings,
			Difficulty:  req.Difficulty,
			Category:    req.Category,
			ImageURL:    req.ImageURL,
		}
		if err := tx.Create(&recipe).Error; err != nil {
			return err
		}
		recipeID = recipe.ID

		if len(req.Ingredients) > 0 {
			ingredients := buildIngredients(recipe.ID, req.Ingredients)
			if err := tx.Create(&ingredients).Error; err != nil {
				return err
			}
		}

		if len(req.Instructions) > 0 {
			instructions := buildInstructions(recipe.ID, req.Instructions)
			if err := tx.Create(&instructions).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return recipeID, nil
}

// UpdateRecipe patches only the scalar columns present in the request and
// replaces a child collection only when its slice is non-nil. An empty
// non-nil slice clears the collection. The whole sequence is one transaction.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{}
		putScalar(updates, "title", req.Title)
		putScalar(updates, "description", req.Description)
		putScalar(updates, "prep_time", req.PrepTime)
		putScalar(updates, "cook_time", req.CookTime)
		putScalar(updates, "servings", req.Servings)
		putScalar(updates, "difficulty", req.Difficulty)
		putScalar(updates, "category", req.Category)
		putScalar(updates, "image_url", req.ImageURL)

		if len(updates) > 0 {
			if err := tx.Model(&entities.Recipe{}).Where("id = ?", id).Updates(updates).Error; err != nil {
				return err
			}
		}

		if req.Ingredients != nil {
			if err := tx.Where("recipe_id = ?", id).Delete(&entities.Ingredient{}).Error; err != nil {
				return err
			}
			if len(*req.Ingredients) > 0 {
				ingredients := buildIngredients(id, *req.Ingredients)
				if err := tx.Create(&ingredients).Error; err != nil {
					return err
				}
			}
		}

		if req.Instructions != nil {
			if err := tx.Where("recipe_id = ?", id).Delete(&entities.Instruction{}).Error; err != nil {
				return err
			}
			if len(*req.Instructions) > 0 {
				instructions := buildInstructions(id, *req.Instructions)
				if err := tx.Create(&instructions).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
}

// DeleteRecipe is idempotent; child rows go away through the cascade rule.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Recipe{}).Error
}

func (r *recipeRepository) SearchRecipes(ctx context.Context, query string, filters domain.RecipeFilters) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe

	q := applyFilters(r.db.WithContext(ctx), filters)
	if query != "" {
		pattern := likePattern(query)
		q = q.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(category) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	if err := q.Order("created_at desc").Find(&recipes).Error; err != nil {
		return nil, err
	}

	return recipes, nil
}

func (r *recipeRepository) SearchRecipesByIngredients(ctx context.Context, query string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe

	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Distinct("recipes.*").
		Joins("JOIN ingredients ON ingredients.recipe_id = recipes.id").
		Where("LOWER(ingredients.name) LIKE ?", likePattern(query)).
		Order("recipes.created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}

	return recipes, nil
}

func (r *recipeRepository) SearchRecipesByInstructions(ctx context.Context, query string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe

	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Distinct("recipes.*").
		Joins("JOIN instructions ON instructions.recipe_id = recipes.id").
		Where("LOWER(instructions.instruction) LIKE ?", likePattern(query)).
		Order("recipes.created_at desc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}

	return recipes, nil
}

func (r *recipeRepository) GetCategories(ctx context.Context) ([]string, error) {
	var categories []string

	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Distinct().
		Where("category IS NOT NULL AND category <> ''").
		Order("category").
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}

	return categories, nil
}

func buildIngredients(recipeID uint, inputs []domain.IngredientInput) []entities.Ingredient {
	rows := make([]entities.Ingredient, 0, len(inputs))
	for i, ing := range inputs {
		rows = append(rows, entities.Ingredient{
			RecipeID:  recipeID,
			Name:      ing.Name,
			Amount:    ing.Amount,
			Unit:      ing.Unit,
			SortOrder: i,
		})
	}
	return rows
}

func buildInstructions(recipeID uint, inputs []string) []entities.Instruction {
	rows := make([]entities.Instruction, 0, len(inputs))
	for i, inst := range inputs {
		rows = append(rows, entities.Instruction{
			RecipeID:    recipeID,
			StepNumber:  i + 1,
			Instruction: inst,
		})
	}
	return rows
}

func putScalar[T any](updates map[string]interface{}, column string, field domain.Optional[T]) {
	if !field.Present {
		return
	}
	if field.Value == nil {
		updates[column] = nil
		return
	}
	updates[column] = *field.Value
}

func likePattern(query string) string {
	return "%" + strings.ToLower(query) + "%"
}

// IsNotFound reports whether err is the storage layer's record-miss error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
