// Package pictureBed stores uploaded images and report documents with a media host and
// hands back their public URL and remote id.
package pictureBed

import (
	"anvaya-club/config"
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

type Kind string

const (
	KindImage    Kind = "image"
	KindDocument Kind = "document"
)

// Object is a stored media object.
type Object struct {
	URL      string
	RemoteID string
}

type UploadInput struct {
	Data     []byte
	Filename string // original name, used for the extension and as a name hint
	Folder   string // e.g. anvaya/codezero or anvaya/codezero/reports
	Kind     Kind
}

// Bed is implemented by every media backend.
type Bed interface {
	Upload(ctx context.Context, in UploadInput) (*Object, error)
	// Delete removes a stored object. An id that no longer exists is not an error.
	Delete(ctx context.Context, remoteID string, kind Kind) error
}

// New builds the backend selected by cfg.Media.Driver.
func New(ctx context.Context, cfg *config.Config, client *resty.Client) (Bed, error) {
	switch cfg.Media.Driver {
	case "cloudinary":
		return NewCloudinary(cfg.Cloudinary, client), nil
	case "s3":
		return NewS3(ctx, cfg.S3)
	case "local":
		return NewLocal(cfg.Storage.Home, cfg.Storage.BaseURL), nil
	}
	return nil, errors.Errorf("unsupported media driver %q", cfg.Media.Driver)
}

// objectName returns a collision free file name that keeps the original extension.
func objectName(filename string, now time.Time) string {
	return fmt.Sprintf("%d%s", now.UnixNano(), strings.ToLower(path.Ext(filename)))
}

// cleanFolder turns a folder into a relative slash path without "..".
func cleanFolder(folder string) string {
	folder = path.Clean("/" + strings.ReplaceAll(folder, "\\", "/"))
	return strings.TrimPrefix(folder, "/")
}
