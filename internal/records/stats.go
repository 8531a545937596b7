package records

import (
	"context"
	"sort"
	"time"

	"github.com/pgrowth/tppgUtil/internal/creator"
)

// addedTimeField is the audit field Creator stamps on every record.
const addedTimeField = "Added_Time"

// addedTimeLayouts covers the date-time formats Creator serves depending
// on the application's display settings.
var addedTimeLayouts = []string{
	"02-Jan-2006 15:04:05",
	"02-Jan-2006",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Stats summarises how many records a report gained per day.
type Stats struct {
	// Total counts every matched record, including those whose added
	// time could not be parsed.
	Total int

	// Days holds per-day counts ordered oldest first.
	Days []DayCount
}

// DayCount is the number of records added on a single day.
type DayCount struct {
	Day   string // YYYY-MM-DD
	Count int
}

// StatsByDay fetches every record matching the criteria and buckets them
// by the day they were added.
func (s *Service) StatsByDay(ctx context.Context, report, criteria string) (Stats, error) {
	recs, err := s.ListAll(ctx, report, criteria)
	if err != nil {
		return Stats{}, err
	}

	counts := make(map[string]int)
	for _, rec := range recs {
		if day, ok := addedDay(rec); ok {
			counts[day]++
		}
	}

	days := make([]DayCount, 0, len(counts))
	for day, n := range counts {
		days = append(days, DayCount{Day: day, Count: n})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Day < days[j].Day })

	return Stats{Total: len(recs), Days: days}, nil
}

// addedDay extracts the YYYY-MM-DD day a record was added, trying each
// known layout in turn.
func addedDay(rec creator.Record) (string, bool) {
	raw := rec.Field(addedTimeField)
	if raw == "" {
		return "", false
	}
	for _, layout := range addedTimeLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}
