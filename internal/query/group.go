package query

import (
	"fmt"
	"sort"
	"time"

	"github.com/smymedia/mediavault/internal/domain"
)

// GroupPeriod selects the calendar granularity of time buckets.
type GroupPeriod string

const (
	GroupByMonth   GroupPeriod = "month"
	GroupByQuarter GroupPeriod = "quarter"
	GroupByYear    GroupPeriod = "year"
)

// Group is one time bucket: a display key plus its members, in input order.
type Group struct {
	Key   string
	Items []domain.MediaItem
}

// GroupByPeriod partitions items into buckets keyed by AddedAt at the given
// granularity. Every item lands in exactly one bucket; buckets are returned
// newest-first. Key formats: month "January 2006", quarter "Q1 2006",
// year "2006".
func GroupByPeriod(items []domain.MediaItem, period GroupPeriod) []Group {
	type bucket struct {
		group Group
		when  time.Time // Start of the period, for ordering
	}

	index := make(map[string]int)
	var buckets []bucket

	for _, item := range items {
		added := item.AddedTime()
		key, start := bucketKey(added, period)

		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, bucket{group: Group{Key: key}, when: start})
		}
		buckets[i].group.Items = append(buckets[i].group.Items, item)
	}

	// Newest bucket first. Quarter keys order by year then quarter number,
	// which the period start time already encodes.
	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].when.After(buckets[j].when)
	})

	groups := make([]Group, len(buckets))
	for i, b := range buckets {
		groups[i] = b.group
	}
	return groups
}

func bucketKey(t time.Time, period GroupPeriod) (string, time.Time) {
	switch period {
	case GroupByQuarter:
		q := (int(t.Month())-1)/3 + 1
		start := time.Date(t.Year(), time.Month((q-1)*3+1), 1, 0, 0, 0, 0, time.UTC)
		return fmt.Sprintf("Q%d %d", q, t.Year()), start
	case GroupByYear:
		return fmt.Sprintf("%d", t.Year()), time.Date(t.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	default: // month
		return t.Format("January 2006"), time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	}
}
