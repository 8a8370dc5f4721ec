package repository

import (
	"anvaya-club/internal/model"
	"context"
)

// ActivityWithWing pairs an activity with the wing it belongs to.
type ActivityWithWing struct {
	Activity model.Activity
	Wing     model.Wing
}

type activityWingRow struct {
	model.Activity
	WingName string
	WingSlug string
}

// GetAllActivitiesWithWings joins every activity to its wing. Activities whose wing is
// gone are left out.
func (r *Repository) GetAllActivitiesWithWings(ctx context.Context) ([]ActivityWithWing, error) {
	var rows []activityWingRow
	err := r.conn(ctx).
		Table("activities").
		Select("activities.*, wings.name AS wing_name, wings.slug AS wing_slug").
		Joins("JOIN wings ON wings.id = activities.wing_id").
		Order("activities.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, storage(err, "load activities with wings")
	}

	out := make([]ActivityWithWing, 0, len(rows))
	for _, row := range rows {
		out = append(out, ActivityWithWing{
			Activity: row.Activity,
			Wing: model.Wing{
				ID:   row.WingID,
				Name: row.WingName,
				Slug: row.WingSlug,
			},
		})
	}
	return out, nil
}
