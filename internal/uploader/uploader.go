package uploader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/orgball2608/event-poster-api/pkg/config"
	apperrors "github.com/orgball2608/event-poster-api/pkg/errors"
	"github.com/orgball2608/event-poster-api/pkg/logger"
	"go.uber.org/fx"
)

// publicPrefix is the URL path under which stored files are served
// back; it is also what makes the returned reference a local one for
// the photo resolver.
const publicPrefix = "/uploads/stories/"

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

// Uploader persists story images under collision-resistant names in a
// fixed upload directory.
type Uploader struct {
	dir    string
	logger logger.Logger
}

func New(opts Opts) *Uploader {
	return &Uploader{
		dir:    opts.Config.Upload.Dir,
		logger: opts.Logger,
	}
}

// Save stores the payload and returns the relative path to use as a
// story image reference. Non-image declared types are rejected before
// anything touches the filesystem.
func (u *Uploader) Save(contentType, originalName string, r io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", apperrors.Wrap(apperrors.ErrInvalidInput, "file must be an image")
	}

	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return "", apperrors.Internal(err, "failed to create upload directory")
	}

	ext := filepath.Ext(originalName)
	if ext == "" {
		ext = ".jpg"
	}
	name := uuid.NewString() + ext

	dst, err := os.Create(filepath.Join(u.dir, name))
	if err != nil {
		return "", apperrors.Internal(err, "failed to create upload file")
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", apperrors.Internal(err, "failed to write upload file")
	}

	relativePath := publicPrefix + name
	u.logger.Info("Story photo uploaded", "path", relativePath)

	return relativePath, nil
}

// Path returns the on-disk location of a previously stored file. The
// name is reduced to its base so a crafted filename cannot escape the
// upload directory.
func (u *Uploader) Path(filename string) (string, error) {
	name := filepath.Base(filename)
	path := filepath.Join(u.dir, name)

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", apperrors.Wrap(apperrors.ErrNotFound, fmt.Sprintf("photo %s not found", name))
		}
		return "", apperrors.Internal(err, "failed to stat upload file")
	}

	return path, nil
}
