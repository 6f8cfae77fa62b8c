package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateRecipeRequestDistinguishesAbsentAndNull(t *testing.T) {
	var req UpdateRecipeRequest
	payload := `{"title":"New Title","category":null,"prep_time":15}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	assert.True(t, req.Title.Present)
	require.NotNil(t, req.Title.Value)
	assert.Equal(t, "New Title", *req.Title.Value)

	assert.True(t, req.Category.Present)
	assert.Nil(t, req.Category.Value)

	assert.True(t, req.PrepTime.Present)
	require.NotNil(t, req.PrepTime.Value)
	assert.Equal(t, 15, *req.PrepTime.Value)

	assert.False(t, req.Description.Present)
	assert.Nil(t, req.Ingredients)
	assert.Nil(t, req.Instructions)
}

func TestUpdateRecipeRequestEmptyChildArrays(t *testing.T) {
	var req UpdateRecipeRequest
	payload := `{"ingredients":[],"instructions":["stir"]}`
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	require.NotNil(t, req.Ingredients)
	assert.Empty(t, *req.Ingredients)

	require.NotNil(t, req.Instructions)
	assert.Equal(t, []string{"stir"}, *req.Instructions)
}
