package recipe

import (
	"context"
	"recipe-box-backend/domain"
	"recipe-box-backend/entities"
	"recipe-box-backend/internal/utils/storage"

	"github.com/gofiber/fiber/v2/log"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, filters domain.RecipeFilters) ([]domain.RecipeResponse, error)
		GetRecipe(ctx context.Context, id uint) (domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, id uint) (domain.RecipeDetailResponse, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.CreateRecipeResponse, error)
		UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest) error
		DeleteRecipe(ctx context.Context, id uint) error
		SearchRecipes(ctx context.Context, query string, filters domain.RecipeFilters) ([]domain.RecipeResponse, error)
		SearchByIngredients(ctx context.Context, query string) ([]domain.RecipeResponse, error)
		SearchByInstructions(ctx context.Context, query string) ([]domain.RecipeResponse, error)
		GetCategories(ctx context.Context) ([]string, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		s3               storage.AwsS3
	}
)

func NewRecipeService(recipeRepository RecipeRepository, s3 storage.AwsS3) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		s3:               s3,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, filters domain.RecipeFilters) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, filters)
	if err != nil {
		return nil, err
	}
	return toRecipeResponses(recipes), nil
}

func (s *recipeService) GetRecipe(ctx context.Context, id uint) (domain.RecipeResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if IsNotFound(err) {
			return domain.RecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id uint) (domain.RecipeDetailResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeWithDetails(ctx, id)
	if err != nil {
		if IsNotFound(err) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	ingredients := make([]domain.IngredientResponse, 0, len(recipe.Ingredients))
	for _, ing := range recipe.Ingredients {
		ingredients = append(ingredients, domain.IngredientResponse{
			ID:        ing.ID,
			RecipeID:  ing.RecipeID,
			Name:      ing.Name,
			Amount:    ing.Amount,
			Unit:      ing.Unit,
			SortOrder: ing.SortOrder,
		})
	}

	instructions := make([]domain.InstructionResponse, 0, len(recipe.Instructions))
	for _, inst := range recipe.Instructions {
		instructions = append(instructions, domain.InstructionResponse{
			ID:          inst.ID,
			RecipeID:    inst.RecipeID,
			StepNumber:  inst.StepNumber,
			Instruction: inst.Instruction,
		})
	}

	return domain.RecipeDetailResponse{
		RecipeResponse: toRecipeResponse(recipe),
		Ingredients:    ingredients,
		Instructions:   instructions,
	}, nil
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.CreateRecipeResponse, error) {
	id, err := s.recipeRepository.CreateRecipe(ctx, req)
	if err != nil {
		return domain.CreateRecipeResponse{}, err
	}
	return domain.CreateRecipeResponse{ID: id}, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id uint, req domain.UpdateRecipeRequest) error {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, id); err != nil {
		if IsNotFound(err) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	return s.recipeRepository.UpdateRecipe(ctx, id, req)
}

// DeleteRecipe removes the recipe row (children go with it) and then
// best-effort deletes the stored image. The object store is not part of the
// row transaction, so an image-delete failure is logged, never propagated.
func (s *recipeService) DeleteRecipe(ctx context.Context, id uint) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if IsNotFound(err) {
			// deleting a recipe that is already gone is a success
			return nil
		}
		return err
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, id); err != nil {
		return err
	}

	if recipe.ImageURL != nil && *recipe.ImageURL != "" {
		if err := s.s3.DeleteImage(ctx, *recipe.ImageURL); err != nil {
			log.Warnf("failed to delete image for recipe %d: %v", id, err)
		}
	}

	return nil
}

func (s *recipeService) SearchRecipes(ctx context.Context, query string, filters domain.RecipeFilters) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.SearchRecipes(ctx, query, filters)
	if err != nil {
		return nil, err
	}
	return toRecipeResponses(recipes), nil
}

func (s *recipeService) SearchByIngredients(ctx context.Context, query string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.SearchRecipesByIngredients(ctx, query)
	if err != nil {
		return nil, err
	}
	return toRecipeResponses(recipes), nil
}

func (s *recipeService) SearchByInstructions(ctx context.Context, query string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.SearchRecipesByInstructions(ctx, query)
	if err != nil {
		return nil, err
	}
	return toRecipeResponses(recipes), nil
}

func (s *recipeService) GetCategories(ctx context.Context) ([]string, error) {
	return s.recipeRepository.GetCategories(ctx)
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	return domain.RecipeResponse{
		ID:          recipe.ID,
		Title:       recipe.Title,
		Description: recipe.Description,
		PrepTime:    recipe.PrepTime,
		CookTime:    recipe.CookTime,
		Servings:    recipe.Servings,
		Difficulty:  recipe.Difficulty,
		Category:    recipe.Category,
		ImageURL:    recipe.ImageURL,
		CreatedAt:   recipe.CreatedAt,
		UpdatedAt:   recipe.UpdatedAt,
	}
}

func toRecipeResponses(recipes []*entities.Recipe) []domain.RecipeResponse {
	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, toRecipeResponse(recipe))
	}
	return result
}
