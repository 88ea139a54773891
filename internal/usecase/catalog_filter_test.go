package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutritrack/backend/internal/domain"
)

func testCatalog() []domain.FoodRecord {
	return []domain.FoodRecord{
		{Name: "Pomme", Calories: 52},
		{Name: "Banane", Calories: 89},
		{Name: "Pomme de terre", Calories: 77},
		{Name: "Compote de pommes", Calories: 68},
		{Name: "Pomme", Calories: 50},
		{Name: "Riz blanc cuit", Calories: 130},
	}
}

func names(records []domain.FoodRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}

func TestSearchCatalog(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "case-insensitive substring in catalog order",
			query: "POM",
			want:  []string{"Pomme", "Pomme de terre", "Compote de pommes", "Pomme"},
		},
		{
			name:  "match in the middle of a name",
			query: "de t",
			want:  []string{"Pomme de terre"},
		},
		{
			name:  "no match",
			query: "chocolat",
			want:  []string{},
		},
		{
			name:  "empty query",
			query: "",
			want:  []string{},
		},
		{
			name:  "whitespace query",
			query: "   ",
			want:  []string{},
		},
		{
			name:  "uppercase query",
			query: "RIZ",
			want:  []string{"Riz blanc cuit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchCatalog(testCatalog(), tt.query)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestSearchCatalog_KeepsDuplicates(t *testing.T) {
	got := SearchCatalog(testCatalog(), "pomme")
	require.Len(t, got, 4)
	assert.Equal(t, 52.0, got[0].Calories)
	assert.Equal(t, 50.0, got[3].Calories)
}

func TestSearchCatalog_EmptyCatalog(t *testing.T) {
	assert.Empty(t, SearchCatalog(nil, "pomme"))
}

func TestFindFood(t *testing.T) {
	record, ok := FindFood(testCatalog(), " pomme ")
	require.True(t, ok)
	assert.Equal(t, 52.0, record.Calories, "first record wins when names repeat")

	_, ok = FindFood(testCatalog(), "pom")
	assert.False(t, ok, "only whole names match")
}
