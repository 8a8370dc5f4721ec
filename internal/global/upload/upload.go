// Package upload reads and validates files posted to the admin endpoints before any of
// them reaches the media host.
package upload

import (
	"anvaya-club/internal/global/errs"
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
)

const (
	MaxImageSize  = 10 << 20
	MaxReportSize = 20 << 20

	// MaxPhotoBody caps one photo batch request.
	MaxPhotoBody = 200 << 20
	// MaxActivityBody leaves room for the text fields next to one report.
	MaxActivityBody = MaxReportSize + 1<<20
)

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// File is a validated upload held in memory.
type File struct {
	Name string
	Data []byte
	MIME string
}

// FormError classifies a failure to parse the posted form. A body cut off by
// middleware.BodyLimit is an upload error, anything else a validation error.
func FormError(err error) error {
	var tooBig *http.MaxBytesError
	if errors.As(err, &tooBig) {
		return errs.New(errs.ErrFileUpload, "Request body too large").With("limit_bytes", tooBig.Limit)
	}
	return errs.Wrap(errs.ErrValidation, err, "")
}

// Image checks extension, size and sniffed content type of a photo upload.
func Image(fh *multipart.FileHeader) (*File, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !slices.Contains(imageExtensions, ext) {
		return nil, reject(fh.Filename, "Invalid file type. Allowed types: %s", strings.Join(imageExtensions, ", "))
	}
	f, err := read(fh, MaxImageSize)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(f.MIME, "image/") {
		return nil, reject(fh.Filename, "File content is not an image (detected %s)", f.MIME)
	}
	return f, nil
}

// Report checks that an upload is a readable PDF with at least one page.
func Report(fh *multipart.FileHeader) (*File, error) {
	if strings.ToLower(filepath.Ext(fh.Filename)) != ".pdf" {
		return nil, reject(fh.Filename, "Invalid file type. Only PDF reports are allowed")
	}
	f, err := read(fh, MaxReportSize)
	if err != nil {
		return nil, err
	}
	if f.MIME != "application/pdf" {
		return nil, reject(fh.Filename, "File content is not a PDF (detected %s)", f.MIME)
	}
	pages, err := pageCount(f.Data)
	if err != nil {
		return nil, errs.Wrap(errs.ErrFileUpload, err, "PDF file is corrupted or unreadable").With("filename", fh.Filename)
	}
	if pages < 1 {
		return nil, reject(fh.Filename, "PDF file has no pages")
	}
	return f, nil
}

func read(fh *multipart.FileHeader, limit int64) (*File, error) {
	if fh.Size > limit {
		return nil, tooLarge(fh.Filename, limit)
	}
	src, err := fh.Open()
	if err != nil {
		return nil, errs.Wrap(errs.ErrFileUpload, err, "Cannot read uploaded file").With("filename", fh.Filename)
	}
	defer src.Close()

	// the header size comes from the client, so enforce the limit on the bytes as well
	data, err := io.ReadAll(io.LimitReader(src, limit+1))
	if err != nil {
		return nil, errs.Wrap(errs.ErrFileUpload, err, "Cannot read uploaded file").With("filename", fh.Filename)
	}
	if int64(len(data)) > limit {
		return nil, tooLarge(fh.Filename, limit)
	}
	if len(data) == 0 {
		return nil, reject(fh.Filename, "File is empty")
	}
	return &File{
		Name: fh.Filename,
		Data: data,
		MIME: mimetype.Detect(data).String(),
	}, nil
}

// pageCount recovers from parser panics on hostile input.
func pageCount(data []byte) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parser: %v", r)
		}
	}()
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, err
	}
	return reader.NumPage(), nil
}

func tooLarge(filename string, limit int64) error {
	return reject(filename, "File too large. Maximum size is %dMB", limit>>20)
}

func reject(filename, format string, args ...any) error {
	return errs.Newf(errs.ErrFileUpload, format, args...).With("filename", filename)
}
