package recipe

import (
	"context"
	"errors"
	"testing"

	"recipe-box-backend/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	uploaded []string
	deleted  []string
	failNext error
}

func (f *fakeS3) UploadImage(_ context.Context, _ []byte, _ string, _ int64, recipeName string) (string, error) {
	if f.failNext != nil {
		return "", f.failNext
	}
	f.uploaded = append(f.uploaded, recipeName)
	return "https://recipes.example.com/" + recipeName + ".png", nil
}

func (f *fakeS3) DeleteImage(_ context.Context, imageURL string) error {
	if f.failNext != nil {
		return f.failNext
	}
	f.deleted = append(f.deleted, imageURL)
	return nil
}

func newTestService(t *testing.T) (RecipeService, *fakeS3) {
	t.Helper()
	s3 := &fakeS3{}
	repo := NewRecipeRepository(newTestDB(t))
	return NewRecipeService(repo, s3), s3
}

func TestServiceCreateAndGetDetail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateRecipe(ctx, sampleCreateRequest("Service Recipe"))
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	plain, err := svc.GetRecipe(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Service Recipe", plain.Title)

	detail, err := svc.GetRecipeDetail(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Service Recipe", detail.Title)
	assert.Len(t, detail.Ingredients, 2)
	assert.Len(t, detail.Instructions, 2)
	assert.Equal(t, 1, detail.Instructions[0].StepNumber)
}

func TestServiceGetDetailNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetRecipeDetail(context.Background(), 9999)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestServiceUpdateNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.UpdateRecipe(context.Background(), 9999, domain.UpdateRecipeRequest{
		Title: domain.Set("anything"),
	})
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestServiceDeleteRemovesStoredImage(t *testing.T) {
	svc, s3 := newTestService(t)
	ctx := context.Background()

	req := sampleCreateRequest("Pictured Recipe")
	req.ImageURL = ptr("https://recipes.example.com/pictured-recipe-123.png")
	created, err := svc.CreateRecipe(ctx, req)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRecipe(ctx, created.ID))
	require.Len(t, s3.deleted, 1)
	assert.Equal(t, *req.ImageURL, s3.deleted[0])
}

func TestServiceDeleteMissingRecipeSucceedsWithoutImageCall(t *testing.T) {
	svc, s3 := newTestService(t)

	require.NoError(t, svc.DeleteRecipe(context.Background(), 9999))
	assert.Empty(t, s3.deleted)
}

func TestServiceDeleteSucceedsWhenImageDeleteFails(t *testing.T) {
	svc, s3 := newTestService(t)
	ctx := context.Background()

	req := sampleCreateRequest("Sticky Image")
	req.ImageURL = ptr("https://recipes.example.com/sticky-image-1.png")
	created, err := svc.CreateRecipe(ctx, req)
	require.NoError(t, err)

	s3.failNext = errors.New("bucket unreachable")
	require.NoError(t, svc.DeleteRecipe(ctx, created.ID))

	_, err = svc.GetRecipeDetail(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestServiceSearchPassThrough(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateRecipe(ctx, sampleCreateRequest("Kung Pao Chicken"))
	require.NoError(t, err)

	found, err := svc.SearchRecipes(ctx, "kung", domain.RecipeFilters{})
	require.NoError(t, err)
	require.Len(t, found, 1)

	byIngredient, err := svc.SearchByIngredients(ctx, "peanut")
	require.NoError(t, err)
	assert.Len(t, byIngredient, 1)

	byInstruction, err := svc.SearchByInstructions(ctx, "fry")
	require.NoError(t, err)
	assert.Len(t, byInstruction, 1)

	categories, err := svc.GetCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"dinner"}, categories)
}
