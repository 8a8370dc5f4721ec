package test

import (
	"anvaya-club/internal/global/errs"
	"anvaya-club/internal/global/pictureBed"
	"context"
	"fmt"
	"path"
	"sync"
)

// FakeBed is an in-memory pictureBed.Bed.
type FakeBed struct {
	mu      sync.Mutex
	seq     int
	Objects map[string]pictureBed.UploadInput // by remote id
	Deleted []string
	// FailUploadAt makes the n-th upload (1-based) fail. 0 never fails.
	FailUploadAt int
	FailDelete   bool
}

func NewFakeBed() *FakeBed {
	return &FakeBed{Objects: map[string]pictureBed.UploadInput{}}
}

func (f *FakeBed) Upload(_ context.Context, in pictureBed.UploadInput) (*pictureBed.Object, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	if f.FailUploadAt == f.seq {
		return nil, errs.New(errs.ErrExternalService, "Cloudinary error: simulated failure")
	}
	id := path.Join(in.Folder, fmt.Sprintf("obj%d", f.seq))
	f.Objects[id] = in
	return &pictureBed.Object{
		URL:      "https://media.test/" + id,
		RemoteID: id,
	}, nil
}

func (f *FakeBed) Delete(_ context.Context, remoteID string, _ pictureBed.Kind) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Deleted = append(f.Deleted, remoteID)
	if f.FailDelete {
		return errs.New(errs.ErrExternalService, "Cloudinary error: simulated delete failure")
	}
	delete(f.Objects, remoteID)
	return nil
}

func (f *FakeBed) Has(remoteID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.Objects[remoteID]
	return ok
}

func (f *FakeBed) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Objects)
}
