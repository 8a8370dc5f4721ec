package pictureBed

import (
	"anvaya-club/internal/global/errs"
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Local saves files under a directory served by the HTTP server. For development.
type Local struct {
	SaveDir string // root directory for every folder
	BaseURL string // public URL of SaveDir
	now     func() time.Time
}

func NewLocal(saveDir, baseURL string) *Local {
	return &Local{
		SaveDir: saveDir,
		BaseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

func (l *Local) Upload(_ context.Context, in UploadInput) (*Object, error) {
	rel := cleanFolder(in.Folder)
	if rel != "" {
		rel += "/"
	}
	rel += objectName(in.Filename, l.now())

	target := filepath.Join(l.SaveDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(target), os.ModePerm); err != nil {
		return nil, errs.Wrap(errs.ErrExternalService, err, "Storage error: cannot create folder")
	}
	if err := os.WriteFile(target, in.Data, 0o644); err != nil {
		return nil, errs.Wrap(errs.ErrExternalService, err, "Storage error: cannot write file")
	}

	return &Object{
		URL:      l.BaseURL + "/" + rel,
		RemoteID: rel,
	}, nil
}

func (l *Local) Delete(_ context.Context, remoteID string, _ Kind) error {
	rel := cleanFolder(remoteID)
	if rel == "" {
		return errs.New(errs.ErrExternalService, "Storage error: empty object id")
	}
	err := os.Remove(filepath.Join(l.SaveDir, filepath.FromSlash(rel)))
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return errs.Wrap(errs.ErrExternalService, err, "Storage error: cannot delete file")
}
