package handlers

import (
	"errors"
	"io"
	"strconv"

	"recipe-box-backend/domain"
	"recipe-box-backend/internal/api/presenters"
	"recipe-box-backend/internal/utils/storage"
	"recipe-box-backend/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		ListRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		SearchRecipes(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
		UploadImage(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		s3            storage.AwsS3
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, s3 storage.AwsS3, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		s3:            s3,
		validator:     validator,
	}
}

func (h *recipeHandler) ListRecipes(c *fiber.Ctx) error {
	filters := domain.RecipeFilters{
		Category:   c.Query("category", ""),
		Difficulty: c.Query("difficulty", ""),
	}

	recipes, err := h.recipeService.GetRecipes(c.Context(), filters)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"recipes": recipes,
		"count":   len(recipes),
	}, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	id, err := parseRecipeID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipeDetail, err)
	}

	res, err := h.recipeService.GetRecipeDetail(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	id, err := parseRecipeID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	req := new(domain.UpdateRecipeRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := validateUpdateRequest(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateRecipe, err)
	}

	if err := h.recipeService.UpdateRecipe(c.Context(), id, *req); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUpdateRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	id, err := parseRecipeID(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteRecipe, err)
	}

	if err := h.recipeService.DeleteRecipe(c.Context(), id); err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}

func (h *recipeHandler) SearchRecipes(c *fiber.Ctx) error {
	query := c.Query("q", "")
	searchType := c.Query("type", "all")
	filters := domain.RecipeFilters{
		Category:   c.Query("category", ""),
		Difficulty: c.Query("difficulty", ""),
	}

	var (
		recipes []domain.RecipeResponse
		err     error
	)
	switch searchType {
	case "ingredients":
		recipes, err = h.recipeService.SearchByIngredients(c.Context(), query)
	case "instructions":
		recipes, err = h.recipeService.SearchByInstructions(c.Context(), query)
	default:
		recipes, err = h.recipeService.SearchRecipes(c.Context(), query, filters)
	}
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedSearchRecipes, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"recipes": recipes,
		"count":   len(recipes),
	}, fiber.StatusOK, domain.MessageSuccessSearchRecipes)
}

func (h *recipeHandler) GetCategories(c *fiber.Ctx) error {
	categories, err := h.recipeService.GetCategories(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedGetCategories, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"categories": categories,
	}, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *recipeHandler) UploadImage(c *fiber.Ctx) error {
	req := new(domain.UploadImageRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	req.File = fileHeader

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	file, err := req.File.Open()
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadImage, err)
	}

	imageURL, err := h.s3.UploadImage(
		c.Context(),
		data,
		req.File.Header.Get("Content-Type"),
		req.File.Size,
		req.RecipeName,
	)
	if err != nil {
		return presenters.ErrorResponse(c, statusForError(err), domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, domain.UploadImageResponse{
		ImageURL: imageURL,
	}, fiber.StatusOK, domain.MessageSuccessUploadImage)
}

func parseRecipeID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, domain.ErrParseRecipeID
	}
	return uint(id), nil
}

func validateUpdateRequest(req *domain.UpdateRecipeRequest) error {
	if req.Title.Present && (req.Title.Value == nil || *req.Title.Value == "" || len(*req.Title.Value) > 200) {
		return errors.New("title must be between 1 and 200 characters")
	}
	for _, field := range []struct {
		name  string
		value domain.Optional[int]
	}{
		{"prep_time", req.PrepTime},
		{"cook_time", req.CookTime},
		{"servings", req.Servings},
	} {
		if field.value.Present && field.value.Value != nil && *field.value.Value <= 0 {
			return errors.New(field.name + " must be a positive integer")
		}
	}
	if req.Difficulty.Present && req.Difficulty.Value != nil {
		switch *req.Difficulty.Value {
		case "easy", "medium", "hard":
		default:
			return errors.New("difficulty must be one of easy, medium, hard")
		}
	}
	if req.Ingredients != nil {
		for _, ing := range *req.Ingredients {
			if ing.Name == "" || ing.Amount == "" {
				return errors.New("ingredient name and amount are required")
			}
		}
	}
	if req.Instructions != nil {
		for _, inst := range *req.Instructions {
			if inst == "" {
				return errors.New("instructions must not be empty")
			}
		}
	}
	return nil
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrRecipeNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrFileTooLarge):
		return fiber.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrUnsupportedMediaType):
		return fiber.StatusUnsupportedMediaType
	case errors.Is(err, domain.ErrStorageUnavailable):
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
