package models

import "strings"

// Recipe moderation statuses.
const (
	RecipeStatusPending  = "pending"
	RecipeStatusApproved = "approved"
	RecipeStatusRejected = "rejected"
)

// Family story statuses.
const (
	StoryStatusDraft     = "draft"
	StoryStatusPublished = "published"
)

var recipeStatuses = []string{RecipeStatusPending, RecipeStatusApproved, RecipeStatusRejected}

var storyStatuses = []string{StoryStatusDraft, StoryStatusPublished}

func IsValidRecipeStatus(status string) bool {
	return contains(recipeStatuses, canonical(status))
}

func IsValidStoryStatus(status string) bool {
	return contains(storyStatuses, canonical(status))
}

// NormalizeRecipeStatus matches the input case-insensitively against the
// recipe enum; anything that does not match becomes the fallback.
func NormalizeRecipeStatus(status, fallback string) string {
	if s := canonical(status); contains(recipeStatuses, s) {
		return s
	}
	return fallback
}

func NormalizeStoryStatus(status, fallback string) string {
	if s := canonical(status); contains(storyStatuses, s) {
		return s
	}
	return fallback
}

func canonical(status string) string {
	return strings.ToLower(strings.TrimSpace(status))
}

func contains(valid []string, status string) bool {
	for _, v := range valid {
		if v == status {
			return true
		}
	}
	return false
}
