package usecase

import (
	"strings"

	"github.com/nutritrack/backend/internal/domain"
)

// SearchCatalog returns the records whose name contains query, ignoring case.
// Catalog order is kept. A blank query matches nothing.
func SearchCatalog(catalog []domain.FoodRecord, query string) []domain.FoodRecord {
	results := []domain.FoodRecord{}
	if strings.TrimSpace(query) == "" {
		return results
	}

	needle := strings.ToLower(query)
	for _, record := range catalog {
		if strings.Contains(strings.ToLower(record.Name), needle) {
			results = append(results, record)
		}
	}
	return results
}

// FindFood returns the first record whose name equals name, ignoring case.
func FindFood(catalog []domain.FoodRecord, name string) (domain.FoodRecord, bool) {
	name = strings.TrimSpace(name)
	for _, record := range catalog {
		if strings.EqualFold(record.Name, name) {
			return record, true
		}
	}
	return domain.FoodRecord{}, false
}
