package assist

import (
	"strings"

	"bistro/models"
)

const maxRecommendations = 10

// Recommend filters menu items by budget, dietary restrictions and
// free-text preferences. Restrictions are hard filters (every restriction
// must appear in the item's tags); preferences match against name and
// description, and an empty preference list matches everything.
func (s *Service) Recommend(items []models.MenuItem, preferences []string, budget float64, restrictions []string) []models.MenuItem {
	var out []models.MenuItem
	for _, item := range items {
		if budget > 0 && item.Price > budget {
			continue
		}
		if !hasAllTags(item.DietaryTags, restrictions) {
			continue
		}
		text := strings.ToLower(item.Name + " " + item.Description)
		matched := len(preferences) == 0
		for _, pref := range preferences {
			if strings.Contains(text, strings.ToLower(pref)) {
				matched = true
				break
			}
		}
		if matched {
			out = append(out, item)
		}
		if len(out) == maxRecommendations {
			break
		}
	}
	return out
}

func hasAllTags(tags models.StringList, wanted []string) bool {
	for _, w := range wanted {
		found := false
		for _, t := range tags {
			if strings.EqualFold(t, w) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

const maxSearchResults = 20

// Search does a case-insensitive substring match over name, description and
// category.
func (s *Service) Search(items []models.MenuItem, query string) []models.MenuItem {
	query = strings.ToLower(query)
	var out []models.MenuItem
	for _, item := range items {
		text := strings.ToLower(item.Name + " " + item.Description + " " + item.Category)
		if strings.Contains(text, query) {
			out = append(out, item)
			if len(out) == maxSearchResults {
				break
			}
		}
	}
	return out
}
