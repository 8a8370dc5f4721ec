// Package app bundles the long-lived dependencies the feature modules share.
package app

import (
	"anvaya-club/internal/global/cache"
	"anvaya-club/internal/global/jwt"
	"anvaya-club/internal/global/pictureBed"
	"anvaya-club/internal/repository"
	"path"
)

type App struct {
	Repo      *repository.Repository
	Auth      *jwt.Service
	Media     pictureBed.Bed
	Cache     cache.Cache
	MediaRoot string // top-level media folder, e.g. "anvaya"
}

// WingFolder is where a wing's photos live.
func (a *App) WingFolder(slug string) string {
	return path.Join(a.MediaRoot, slug)
}

// ReportFolder is where a wing's activity reports live.
func (a *App) ReportFolder(slug string) string {
	return path.Join(a.MediaRoot, slug, "reports")
}
