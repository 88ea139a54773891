package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutritrack/backend/internal/domain"
)

func TestLoad_Default(t *testing.T) {
	foods, err := Load("")
	require.NoError(t, err)
	require.NotEmpty(t, foods)

	apple := foods[0]
	assert.Equal(t, "Pomme", apple.Name)
	assert.Equal(t, "100g", apple.Portion)
	assert.Equal(t, 52.0, apple.Calories)
	assert.Equal(t, 0.3, apple.Protein)
	assert.Equal(t, 1.0, apple.SodiumMg)
	require.NotNil(t, apple.WaterMl)
	assert.Equal(t, 85.6, *apple.WaterMl)

	for _, food := range foods {
		assert.NotEmpty(t, food.Name)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foods.yaml")
	content := `
foods:
  - name: Kiwi
    portion: 100g
    calories: 61
    protein: 1.1
    carbs: 14.7
    fats: 0.5
    fibres: 3
    sodium_mg: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	foods, err := Load(path)
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "Kiwi", foods[0].Name)
	assert.Nil(t, foods[0].WaterMl)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantLen int
		wantErr bool
	}{
		{
			name:    "empty document",
			content: "",
			wantLen: 0,
		},
		{
			name:    "malformed yaml",
			content: "foods: [name: {",
			wantErr: true,
		},
		{
			name: "missing name",
			content: `
foods:
  - portion: 100g
    calories: 10
`,
			wantErr: true,
		},
		{
			name: "negative nutrient",
			content: `
foods:
  - name: Bad
    calories: -1
`,
			wantErr: true,
		},
		{
			name: "negative water",
			content: `
foods:
  - name: Bad
    water_ml: -3
`,
			wantErr: true,
		},
		{
			name: "duplicate names are kept",
			content: `
foods:
  - name: Pomme
    calories: 52
  - name: Pomme
    calories: 50
`,
			wantLen: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			foods, err := Parse([]byte(tt.content))
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, foods)
			assert.Len(t, foods, tt.wantLen)
		})
	}
}
