package assist

import (
	"fmt"
	"testing"

	"bistro/models"

	"github.com/stretchr/testify/assert"
)

func sampleMenu() []models.MenuItem {
	return []models.MenuItem{
		{ID: 1, Name: "Spicy Arrabbiata", Description: "Fiery tomato pasta", Price: 14.50, Category: "Main", DietaryTags: models.StringList{"vegetarian"}},
		{ID: 2, Name: "Garden Salad", Description: "Fresh greens with vinaigrette", Price: 9.00, Category: "Appetizers", DietaryTags: models.StringList{"vegan", "gluten-free"}},
		{ID: 3, Name: "Ribeye Steak", Description: "Chargrilled 300g ribeye", Price: 32.00, Category: "Main"},
		{ID: 4, Name: "Chocolate Cake", Description: "Rich dessert with ganache", Price: 8.50, Category: "Desserts", DietaryTags: models.StringList{"vegetarian"}},
	}
}

func TestRecommend_PreferenceMatch(t *testing.T) {
	s := New("")
	got := s.Recommend(sampleMenu(), []string{"spicy"}, 0, nil)
	if assert.Len(t, got, 1) {
		assert.Equal(t, uint(1), got[0].ID)
	}
}

func TestRecommend_BudgetFilter(t *testing.T) {
	s := New("")
	got := s.Recommend(sampleMenu(), nil, 10.0, nil)
	for _, item := range got {
		assert.LessOrEqual(t, item.Price, 10.0)
	}
	assert.Len(t, got, 2) // salad and cake
}

func TestRecommend_DietaryRestrictionsAreHardFilters(t *testing.T) {
	s := New("")
	got := s.Recommend(sampleMenu(), nil, 0, []string{"vegan", "gluten-free"})
	if assert.Len(t, got, 1) {
		assert.Equal(t, uint(2), got[0].ID)
	}
}

func TestRecommend_EmptyPreferencesMatchEverything(t *testing.T) {
	s := New("")
	got := s.Recommend(sampleMenu(), nil, 0, nil)
	assert.Len(t, got, len(sampleMenu()))
}

func TestRecommend_CapsResults(t *testing.T) {
	s := New("")
	var items []models.MenuItem
	for i := 0; i < 25; i++ {
		items = append(items, models.MenuItem{ID: uint(i + 1), Name: fmt.Sprintf("Dish %d", i), Price: 10})
	}
	got := s.Recommend(items, nil, 0, nil)
	assert.Len(t, got, maxRecommendations)
}

func TestSearch(t *testing.T) {
	s := New("")

	got := s.Search(sampleMenu(), "PASTA")
	if assert.Len(t, got, 1) {
		assert.Equal(t, uint(1), got[0].ID)
	}

	// category text is searchable too
	got = s.Search(sampleMenu(), "desserts")
	if assert.Len(t, got, 1) {
		assert.Equal(t, uint(4), got[0].ID)
	}

	assert.Empty(t, s.Search(sampleMenu(), "sushi"))
}
