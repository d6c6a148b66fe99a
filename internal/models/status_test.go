package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRecipeStatus(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		fallback string
		expected string
	}{
		{
			name:     "точное совпадение",
			input:    "approved",
			fallback: RecipeStatusPending,
			expected: RecipeStatusApproved,
		},
		{
			name:     "верхний регистр",
			input:    "REJECTED",
			fallback: RecipeStatusApproved,
			expected: RecipeStatusRejected,
		},
		{
			name:     "смешанный регистр с пробелами",
			input:    "  Pending ",
			fallback: RecipeStatusApproved,
			expected: RecipeStatusPending,
		},
		{
			name:     "неизвестный статус даёт fallback",
			input:    "archived",
			fallback: RecipeStatusApproved,
			expected: RecipeStatusApproved,
		},
		{
			name:     "пустой статус даёт fallback",
			input:    "",
			fallback: RecipeStatusPending,
			expected: RecipeStatusPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeRecipeStatus(tt.input, tt.fallback))
		})
	}
}

func TestNormalizeStoryStatus(t *testing.T) {
	assert.Equal(t, StoryStatusPublished, NormalizeStoryStatus("Published", StoryStatusDraft))
	assert.Equal(t, StoryStatusDraft, NormalizeStoryStatus("DRAFT", StoryStatusPublished))
	assert.Equal(t, StoryStatusDraft, NormalizeStoryStatus("pending", StoryStatusDraft))
	assert.Equal(t, StoryStatusPublished, NormalizeStoryStatus("", StoryStatusPublished))
}

func TestIsValidRecipeStatus(t *testing.T) {
	assert.True(t, IsValidRecipeStatus("pending"))
	assert.True(t, IsValidRecipeStatus("Approved"))
	assert.True(t, IsValidRecipeStatus(" REJECTED "))
	assert.False(t, IsValidRecipeStatus("archived"))
	assert.False(t, IsValidRecipeStatus(""))
	assert.False(t, IsValidRecipeStatus("draft"))
}

func TestIsValidStoryStatus(t *testing.T) {
	assert.True(t, IsValidStoryStatus("draft"))
	assert.True(t, IsValidStoryStatus("PUBLISHED"))
	assert.False(t, IsValidStoryStatus("approved"))
	assert.False(t, IsValidStoryStatus(""))
}
