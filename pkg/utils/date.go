package utils

import "time"

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// SplitDateRange divide um período em sub-períodos consecutivos de no máximo
// maxDays dias cada, preservando a ordem cronológica
func SplitDateRange(start, end time.Time, maxDays int) [][2]time.Time {
	ranges := make([][2]time.Time, 0, 1)

	if end.Before(start) || maxDays <= 0 {
		return ranges
	}

	chunkStart := start
	for !chunkStart.After(end) {
		chunkEnd := chunkStart.AddDate(0, 0, maxDays-1)
		if chunkEnd.After(end) {
			chunkEnd = end
		}

		ranges = append(ranges, [2]time.Time{chunkStart, chunkEnd})
		chunkStart = chunkEnd.AddDate(0, 0, 1)
	}

	return ranges
}
