package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(value string) time.Time {
	parsed, _ := time.Parse("2006-01-02", value)
	return parsed
}

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, date("2024-01-15"), *parsed)

	_, err = ParseDate("15/01/2024")
	assert.Error(t, err)
}

func TestSplitDateRange(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		maxDays  int
		expected [][2]string
	}{
		{
			name:     "Período dentro do limite vira um único intervalo",
			start:    "2024-01-01",
			end:      "2024-01-07",
			maxDays:  90,
			expected: [][2]string{{"2024-01-01", "2024-01-07"}},
		},
		{
			name:    "Período longo é dividido em intervalos consecutivos",
			start:   "2024-01-01",
			end:     "2024-04-30",
			maxDays: 90,
			expected: [][2]string{
				{"2024-01-01", "2024-03-30"},
				{"2024-03-31", "2024-04-30"},
			},
		},
		{
			name:     "Um único dia",
			start:    "2024-01-01",
			end:      "2024-01-01",
			maxDays:  90,
			expected: [][2]string{{"2024-01-01", "2024-01-01"}},
		},
		{
			name:     "Fim antes do início devolve vazio",
			start:    "2024-01-07",
			end:      "2024-01-01",
			maxDays:  90,
			expected: [][2]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranges := SplitDateRange(date(tt.start), date(tt.end), tt.maxDays)

			require.Len(t, ranges, len(tt.expected))
			for i, expected := range tt.expected {
				assert.Equal(t, date(expected[0]), ranges[i][0])
				assert.Equal(t, date(expected[1]), ranges[i][1])
			}
		})
	}
}
