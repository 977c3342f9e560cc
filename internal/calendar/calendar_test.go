package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
)

func date(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	require.NoError(t, err)
	return &d
}

func TestAggregate_SameDateAcrossLanguages(t *testing.T) {
	items := []domain.ContentItem{
		{ID: "1", PublishedEs: true, PublishedDateEs: date(t, "2024-03-01")},
		{ID: "2", PublishedEn: true, PublishedEnDate: date(t, "2024-03-01")},
	}

	cal := Aggregate(items, 2024)

	assert.Equal(t, 2, cal.Count("2024-03-01"))
	assert.Equal(t, 2, cal.Total)
	require.Len(t, cal.Days, 1)
	assert.Equal(t, Day{Date: "2024-03-01", Count: 2, Level: MaxLevel}, cal.Days[0])
}

func TestAggregate_ExcludesOtherYears(t *testing.T) {
	items := []domain.ContentItem{
		{ID: "1", PublishedEs: true, PublishedDateEs: date(t, "2023-12-31")},
		{ID: "2", PublishedEs: true, PublishedEn: true, PublishedDateEs: date(t, "2024-06-01"), PublishedDateEn: date(t, "2025-01-01")},
	}

	cal := Aggregate(items, 2024)

	assert.Equal(t, 1, cal.Total)
	assert.Equal(t, 1, cal.Count("2024-06-01"))
	assert.Equal(t, 0, cal.Count("2023-12-31"))
}

func TestAggregate_BothLanguagesDifferentDates(t *testing.T) {
	item := domain.NewContentItem("1", "t", time.Now())
	item.SetStatus(domain.LangEs, domain.StatusPublished, *date(t, "2024-02-01"))
	item.SetStatus(domain.LangEn, domain.StatusPublished, *date(t, "2024-02-03"))

	cal := Aggregate([]domain.ContentItem{*item}, 2024)

	assert.Equal(t, 2, cal.Total)
	assert.Equal(t, 1, cal.Count("2024-02-01"))
	assert.Equal(t, 1, cal.Count("2024-02-03"))
	assert.Equal(t, "2024-02-01", cal.Days[0].Date)
}

func TestAggregate_SkipsUnpublishedAndUndated(t *testing.T) {
	created := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	items := []domain.ContentItem{
		{ID: "no-date", PublishedEs: true, CreatedAt: created},
		{ID: "unpublished", StatusEs: domain.StatusInProgress, PublishedDateEs: date(t, "2024-01-05")},
		{ID: "shared", PublishedEn: true, PublishedDate: date(t, "2024-01-07")},
	}

	cal := Aggregate(items, 2024)

	assert.Equal(t, 1, cal.Total)
	assert.Equal(t, 0, cal.Count("2024-01-05"))
	assert.Equal(t, 1, cal.Count("2024-01-07"))
}

func TestLevel(t *testing.T) {
	tests := []struct {
		count, max, want int
	}{
		{0, 10, 0},
		{1, 10, 0},
		{3, 10, 1},
		{5, 10, 2},
		{8, 10, 3},
		{10, 10, 4},
		{12, 10, 4},
		{1, 1, 4},
		{1, 0, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Level(tt.count, tt.max), "Level(%d, %d)", tt.count, tt.max)
	}
}
