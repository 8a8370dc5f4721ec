package pictureBed

import (
	"anvaya-club/config"
	"anvaya-club/internal/global/errs"
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"path"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Cloudinary talks to the Cloudinary upload API with signed requests.
type Cloudinary struct {
	cfg    config.Cloudinary
	client *resty.Client
	now    func() time.Time
}

type cloudinaryResult struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	Result    string `json:"result"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func NewCloudinary(cfg config.Cloudinary, client *resty.Client) *Cloudinary {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.cloudinary.com"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Cloudinary{cfg: cfg, client: client, now: time.Now}
}

// resourceType is "image" for both kinds: Cloudinary serves PDFs as image resources, and
// uploads and deletes must agree on the type or the delete silently misses.
func resourceType(Kind) string {
	return "image"
}

func (c *Cloudinary) endpoint(kind Kind, action string) string {
	return fmt.Sprintf("%s/v1_1/%s/%s/%s", c.cfg.BaseURL, c.cfg.CloudName, resourceType(kind), action)
}

func (c *Cloudinary) Upload(ctx context.Context, in UploadInput) (*Object, error) {
	params := map[string]string{
		"folder":          cleanFolder(in.Folder),
		"timestamp":       strconv.FormatInt(c.now().Unix(), 10),
		"use_filename":    "true",
		"unique_filename": "true",
	}
	params["signature"] = sign(params, c.cfg.APISecret)
	params["api_key"] = c.cfg.APIKey

	name := path.Base(strings.ReplaceAll(in.Filename, "\\", "/"))
	if name == "." || name == "/" {
		name = objectName(in.Filename, c.now())
	}

	var result cloudinaryResult
	resp, err := c.client.R().
		SetContext(ctx).
		SetFormData(params).
		SetFileReader("file", name, bytes.NewReader(in.Data)).
		SetResult(&result).
		SetError(&result).
		Post(c.endpoint(in.Kind, "upload"))
	if err != nil {
		return nil, errs.Wrap(errs.ErrExternalService, err, "Cloudinary error: upload request failed")
	}
	if resp.IsError() || result.SecureURL == "" {
		return nil, c.failure("upload", resp, result)
	}
	return &Object{URL: result.SecureURL, RemoteID: result.PublicID}, nil
}

func (c *Cloudinary) Delete(ctx context.Context, remoteID string, kind Kind) error {
	params := map[string]string{
		"public_id": remoteID,
		"timestamp": strconv.FormatInt(c.now().Unix(), 10),
	}
	params["signature"] = sign(params, c.cfg.APISecret)
	params["api_key"] = c.cfg.APIKey

	var result cloudinaryResult
	resp, err := c.client.R().
		SetContext(ctx).
		SetFormData(params).
		SetResult(&result).
		SetError(&result).
		Post(c.endpoint(kind, "destroy"))
	if err != nil {
		return errs.Wrap(errs.ErrExternalService, err, "Cloudinary error: destroy request failed")
	}
	if resp.IsError() {
		return c.failure("destroy", resp, result)
	}
	switch result.Result {
	case "ok", "not found":
		return nil
	}
	return errs.Newf(errs.ErrExternalService, "Cloudinary error: destroy returned %q", result.Result).
		With("public_id", remoteID)
}

func (c *Cloudinary) failure(action string, resp *resty.Response, result cloudinaryResult) error {
	msg := resp.Status()
	if result.Error != nil && result.Error.Message != "" {
		msg = result.Error.Message
	}
	return errs.Newf(errs.ErrExternalService, "Cloudinary error: %s", msg).
		With("action", action).
		With("status", resp.StatusCode())
}

// sign implements Cloudinary's request signature: SHA-1 over the sorted k=v pairs joined
// by "&", followed by the API secret.
func sign(params map[string]string, secret string) string {
	keys := make([]string, 0, len(params))
	for k, v := range params {
		if v == "" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + secret))
	return hex.EncodeToString(sum[:])
}
