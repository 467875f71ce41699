package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "ແກ່ເຄື່ອງ", CategoryLabel(CategoryMoving))
	assert.Equal(t, "ທຳຄວາມສະອາດ", CategoryLabel(1))
	assert.Equal(t, CategoryLabelFallback, CategoryLabel(0))
	assert.Equal(t, CategoryLabelFallback, CategoryLabel(999))
	assert.Equal(t, CategoryLabelFallback, CategoryLabel(-1))
}

func TestKnownCategories(t *testing.T) {
	categories := KnownCategories()
	assert.Len(t, categories, 7)
	for i, cat := range categories {
		assert.Equal(t, i+1, cat.ID)
		assert.NotEmpty(t, cat.Name)
	}
}

func TestRequiresCar(t *testing.T) {
	assert.True(t, RequiresCar(5))
	assert.False(t, RequiresCar(1))
	assert.False(t, RequiresCar(0))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name  string
		value string
		zero  bool
	}{
		{"RFC 3339", "2023-01-09T08:30:00Z", false},
		{"SQL timestamp", "2023-01-09 08:30:00", false},
		{"Date only", "2023-01-09", false},
		{"Empty", "", true},
		{"Garbage", "not-a-date", true},
		{"Partial", "2023-01", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := ParseDate(tt.value)
			assert.Equal(t, tt.zero, parsed.IsZero())
			if !tt.zero {
				assert.Equal(t, 2023, parsed.Year())
				assert.Equal(t, time.January, parsed.Month())
			}
		})
	}
}

func TestMonthLabelAndKey(t *testing.T) {
	date := time.Date(2023, 2, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "ກຸມພາ 2023", MonthLabel(date))
	assert.Equal(t, "2023-02", MonthKey(date))
}

func TestStatusColor(t *testing.T) {
	assert.Equal(t, "green", StatusColor(PaymentPaid))
	assert.Equal(t, "green", StatusColor(StatusActive))
	assert.Equal(t, "orange", StatusColor(PaymentPending))
	assert.Equal(t, "red", StatusColor(PaymentFailed))
	assert.Equal(t, "red", StatusColor(StatusInactive))
	assert.Equal(t, "grey", StatusColor("unknown"))
}

func TestRatingText(t *testing.T) {
	assert.Equal(t, "ດີຫຼາຍ", RatingText(5))
	assert.Equal(t, "ຕ້ອງປັບປຸງຫຼາຍ", RatingText(1))
	// Out-of-range ratings use the default rating's text
	assert.Equal(t, RatingText(DefaultRating), RatingText(0))
	assert.Equal(t, RatingText(DefaultRating), RatingText(6))
}
