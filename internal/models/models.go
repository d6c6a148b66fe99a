package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type Recipe struct {
	RecipeID       string     `json:"id" db:"recipe_id"`
	Title          string     `json:"title" db:"title"`
	Description    string     `json:"description" db:"description"`
	CookTime       string     `json:"cookTime" db:"cook_time"`
	Servings       string     `json:"servings" db:"servings"`
	Ingredients    StringList `json:"ingredients" db:"ingredients"`
	Instructions   StringList `json:"instructions" db:"instructions"`
	ImageURL       string     `json:"imageUrl" db:"image_url"`
	Status         string     `json:"status" db:"status"`
	SubmitterName  string     `json:"submitterName" db:"submitter_name"`
	SubmitterEmail string     `json:"submitterEmail" db:"submitter_email"`
	SubmitterNotes string     `json:"submitterNotes" db:"submitter_notes"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`
}

type FamilyStory struct {
	StoryID     string    `json:"id" db:"story_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	VideoURL    string    `json:"videoUrl" db:"video_url"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// StringList - канонический тип для ingredients/instructions.
// On input it accepts either a JSON array of strings or a single
// newline-separated string; every item is trimmed and blanks are dropped.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		*l = StringList{}
		return nil
	}

	// array form
	if len(data) > 0 && data[0] == '[' {
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("ошибка разбора списка строк: %w", err)
		}
		*l = cleanItems(items)
		return nil
	}

	// single multiline string form
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("ошибка разбора списка строк: %w", err)
	}
	*l = SplitLines(raw)
	return nil
}

func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// Value stores the list as newline-joined TEXT.
func (l StringList) Value() (driver.Value, error) {
	return strings.Join(cleanItems(l), "\n"), nil
}

func (l *StringList) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*l = StringList{}
	case string:
		*l = SplitLines(v)
	case []byte:
		*l = SplitLines(string(v))
	default:
		return fmt.Errorf("неподдерживаемый тип для StringList: %T", src)
	}
	return nil
}

// SplitLines converts a multiline string into a clean ordered list.
func SplitLines(value string) StringList {
	return cleanItems(strings.Split(strings.ReplaceAll(value, "\r\n", "\n"), "\n"))
}

func cleanItems(items []string) StringList {
	cleaned := StringList{}
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		cleaned = append(cleaned, item)
	}
	return cleaned
}
