package wing

import (
	"anvaya-club/internal/global/response"
	"anvaya-club/internal/model"
	"anvaya-club/internal/repository"
	"anvaya-club/test"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListWings(t *testing.T) {
	env := test.NewEnv(t)
	test.CreateWing(t, env.DB, "codezero", "CodeZero")
	test.CreateWing(t, env.DB, "udbhava", "Udbhava")
	r := test.NewEngine(env.App, &ModuleWing{})

	w := test.Get(t, r, "/api/wings")
	test.NoError(t, w)
	wings := test.Decode[[]model.Wing](t, w)
	require.Len(t, wings, 2)
	assert.Equal(t, "codezero", wings[0].Slug)
	assert.Equal(t, "udbhava", wings[1].Slug)
}

func TestListWingsEmpty(t *testing.T) {
	env := test.NewEnv(t)
	r := test.NewEngine(env.App, &ModuleWing{})

	w := test.Get(t, r, "/api/wings")
	test.NoError(t, w)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetWingWithRelations(t *testing.T) {
	env := test.NewEnv(t)
	wing := test.CreateWing(t, env.DB, "codezero", "CodeZero")
	for _, d := range []model.Date{model.NewDate(2023, 5, 1), model.NewDate(2024, 2, 1), model.NewDate(2023, 12, 31)} {
		require.NoError(t, env.DB.Create(&model.Activity{WingID: wing.ID, Title: "T " + d.String(), Description: "d", ActivityDate: d}).Error)
	}
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, env.DB.Create(&model.Photo{WingID: wing.ID, URL: fmt.Sprintf("u%d", i), CloudinaryID: fmt.Sprintf("c%d", i), UploadedAt: base.Add(time.Duration(i) * time.Hour)}).Error)
	}
	r := test.NewEngine(env.App, &ModuleWing{})

	w := test.Get(t, r, "/api/wings/codezero")
	test.NoError(t, w)
	got := test.Decode[repository.WingWithRelations](t, w)
	assert.Equal(t, "CodeZero", got.Name)
	require.Len(t, got.Activities, 3)
	assert.Equal(t, "2024-02-01", got.Activities[0].ActivityDate.String())
	assert.Equal(t, "2023-12-31", got.Activities[1].ActivityDate.String())
	assert.Equal(t, "2023-05-01", got.Activities[2].ActivityDate.String())
	require.Len(t, got.Photos, 3)
	assert.Equal(t, "u2", got.Photos[0].URL)
	assert.Equal(t, "u0", got.Photos[2].URL)
}

func TestGetWingUnknownSlug(t *testing.T) {
	env := test.NewEnv(t)
	r := test.NewEngine(env.App, &ModuleWing{})

	w := test.Get(t, r, "/api/wings/nope")
	body := test.ErrorEqual(t, response.ErrNotFound, w)
	assert.Equal(t, "Wing with identifier 'nope' not found", body.Detail)

	test.ErrorEqual(t, response.ErrNotFound, test.Get(t, r, "/api/wings/nope/photos"))
	test.ErrorEqual(t, response.ErrNotFound, test.Get(t, r, "/api/wings/nope/activities"))
}

func TestListWingPhotosPaging(t *testing.T) {
	env := test.NewEnv(t)
	wing := test.CreateWing(t, env.DB, "shespark", "SheSpark")
	other := test.CreateWing(t, env.DB, "ugrs", "UGRS")
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, env.DB.Create(&model.Photo{WingID: wing.ID, URL: fmt.Sprintf("p%d", i), CloudinaryID: "c", UploadedAt: base.Add(time.Duration(i) * time.Minute)}).Error)
	}
	require.NoError(t, env.DB.Create(&model.Photo{WingID: other.ID, URL: "other", CloudinaryID: "c"}).Error)
	r := test.NewEngine(env.App, &ModuleWing{})

	w := test.Get(t, r, "/api/wings/shespark/photos?limit=2&offset=1")
	test.NoError(t, w)
	photos := test.Decode[[]model.Photo](t, w)
	require.Len(t, photos, 2)
	assert.Equal(t, "p3", photos[0].URL)
	assert.Equal(t, "p2", photos[1].URL)

	test.ErrorEqual(t, response.ErrValidation, test.Get(t, r, "/api/wings/shespark/photos?limit=0"))
	test.ErrorEqual(t, response.ErrValidation, test.Get(t, r, "/api/wings/shespark/photos?limit=501"))
	test.ErrorEqual(t, response.ErrValidation, test.Get(t, r, "/api/wings/shespark/photos?offset=-1"))
}

func TestListWingActivities(t *testing.T) {
	env := test.NewEnv(t)
	wing := test.CreateWing(t, env.DB, "kalavaibhava", "Kalavaibhava")
	require.NoError(t, env.DB.Create(&model.Activity{WingID: wing.ID, Title: "Old", Description: "d", ActivityDate: model.NewDate(2022, 1, 1)}).Error)
	require.NoError(t, env.DB.Create(&model.Activity{WingID: wing.ID, Title: "New", Description: "d", ActivityDate: model.NewDate(2024, 1, 1)}).Error)
	r := test.NewEngine(env.App, &ModuleWing{})

	w := test.Get(t, r, "/api/wings/kalavaibhava/activities")
	test.NoError(t, w)
	activities := test.Decode[[]model.Activity](t, w)
	require.Len(t, activities, 2)
	assert.Equal(t, "New", activities[0].Title)
	assert.Nil(t, activities[0].FacultyCoordinator)
}
