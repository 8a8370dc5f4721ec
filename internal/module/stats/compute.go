package stats

import (
	"anvaya-club/internal/repository"
	"cmp"
	"slices"
)

// WingCount is one row of the statistics table.
type WingCount struct {
	WingID        uint   `json:"wing_id" excel:"Wing ID"`
	WingName      string `json:"wing_name" excel:"Wing"`
	WingSlug      string `json:"wing_slug" excel:"Slug"`
	ActivityCount int    `json:"activity_count" excel:"Activities"`
}

type Result struct {
	Statistics     []WingCount `json:"statistics"`
	AvailableYears []int       `json:"available_years"`
	FilteredYear   *int        `json:"filtered_year"`
}

// Compute counts activities per wing, busiest wing first with ties broken by wing id.
// Wings without activities in the selected year are left out. AvailableYears always
// covers every activity so clients can offer the full year picker.
func Compute(rows []repository.ActivityWithWing, year *int) Result {
	counts := make(map[uint]*WingCount)
	years := make(map[int]struct{})

	for _, row := range rows {
		y := row.Activity.ActivityDate.Year()
		years[y] = struct{}{}
		if year != nil && y != *year {
			continue
		}
		wc, ok := counts[row.Wing.ID]
		if !ok {
			wc = &WingCount{WingID: row.Wing.ID, WingName: row.Wing.Name, WingSlug: row.Wing.Slug}
			counts[row.Wing.ID] = wc
		}
		wc.ActivityCount++
	}

	stats := make([]WingCount, 0, len(counts))
	for _, wc := range counts {
		stats = append(stats, *wc)
	}
	slices.SortFunc(stats, func(a, b WingCount) int {
		if a.ActivityCount != b.ActivityCount {
			return cmp.Compare(b.ActivityCount, a.ActivityCount)
		}
		return cmp.Compare(a.WingID, b.WingID)
	})

	available := make([]int, 0, len(years))
	for y := range years {
		available = append(available, y)
	}
	slices.SortFunc(available, func(a, b int) int { return cmp.Compare(b, a) })

	return Result{Statistics: stats, AvailableYears: available, FilteredYear: year}
}
