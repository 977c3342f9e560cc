// Package calendar buckets publication events into a contribution calendar.
package calendar

import (
	"sort"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
)

// DateLayout is the ISO calendar date format used as bucket key.
const DateLayout = "2006-01-02"

// MaxLevel is the top intensity level; levels run from 0 to MaxLevel.
const MaxLevel = 4

// Day is one non-empty date of the calendar.
type Day struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
	Level int    `json:"level"`
}

// Calendar is the aggregation of one year.
type Calendar struct {
	Year  int   `json:"year"`
	Total int   `json:"total"`
	Max   int   `json:"max"`
	Days  []Day `json:"days"`

	counts map[string]int
}

// Count returns the number of events on an ISO date.
func (c *Calendar) Count(date string) int {
	return c.counts[date]
}

// Aggregate counts one event per published language per item whose
// effective publish date falls in year. Dates are bucketed in UTC.
func Aggregate(items []domain.ContentItem, year int) *Calendar {
	cal := &Calendar{Year: year, counts: make(map[string]int)}

	for i := range items {
		item := &items[i]
		for _, lang := range domain.Langs {
			if item.EffectiveStatus(lang) != domain.StatusPublished {
				continue
			}
			date := item.EffectivePublishDate(lang)
			if date == nil {
				continue
			}
			d := date.UTC()
			if d.Year() != year {
				continue
			}
			cal.counts[d.Format(DateLayout)]++
			cal.Total++
		}
	}

	for _, n := range cal.counts {
		if n > cal.Max {
			cal.Max = n
		}
	}

	cal.Days = make([]Day, 0, len(cal.counts))
	for date, n := range cal.counts {
		cal.Days = append(cal.Days, Day{Date: date, Count: n, Level: Level(n, cal.Max)})
	}
	sort.Slice(cal.Days, func(i, j int) bool { return cal.Days[i].Date < cal.Days[j].Date })

	return cal
}

// Level scales count linearly against max, rounds down and caps at MaxLevel.
func Level(count, max int) int {
	if count <= 0 || max <= 0 {
		return 0
	}
	level := count * MaxLevel / max
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}
