package services

import (
	"bytes"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"nut-orders-backend/internal/models"
)

// MediaPathPrefix is the first segment of every order media object key.
const MediaPathPrefix = "order-media"

var allowedContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/gif":       true,
	"image/webp":      true,
	"video/mp4":       true,
	"video/webm":      true,
	"video/quicktime": true,
}

// ObjectStore is the object storage bucket holding order media.
type ObjectStore interface {
	Upload(path string, data io.Reader, contentType string) (*models.StorageObject, error)
	PublicURL(path string) string
	PathFromURL(publicURL string) (string, bool)
	Remove(path string) error
	List(prefix string) ([]string, error)
}

type MediaRecords interface {
	GetOrderPlacement(ctx context.Context, orderID uuid.UUID) (*models.OrderPlacement, error)
	InsertOrderMedia(ctx context.Context, media *models.OrderMedia) (*models.OrderMedia, error)
	InsertRegionMedia(ctx context.Context, media *models.RegionMedia) (*models.RegionMedia, error)
	ListOrderMedia(ctx context.Context, orderID uuid.UUID) ([]models.OrderMedia, error)
	GetOrderMedia(ctx context.Context, mediaID uuid.UUID) (*models.OrderMedia, error)
	DeleteOrderMedia(ctx context.Context, mediaID uuid.UUID) error
}

type MediaService struct {
	store          ObjectStore
	records        MediaRecords
	log            *zap.Logger
	systemIdentity uuid.UUID
	newToken       func() (string, error)
}

// NewMediaService builds the media workflow. systemIdentity is recorded as
// the uploader when a request has no authenticated user; uuid.Nil selects
// models.SystemIdentity.
func NewMediaService(store ObjectStore, records MediaRecords, log *zap.Logger, systemIdentity uuid.UUID) *MediaService {
	if systemIdentity == uuid.Nil {
		systemIdentity = models.SystemIdentity
	}
	return &MediaService{
		store:          store,
		records:        records,
		log:            log,
		systemIdentity: systemIdentity,
		newToken:       randomToken,
	}
}

// AttachMedia uploads one file for an order and records it.
//
// The object is uploaded first, then the order_media row is inserted. A
// failed insert leaves the uploaded object in place. A region_media row is
// filed afterwards; failures there are logged and never fail the call.
func (s *MediaService) AttachMedia(ctx context.Context, orderID uuid.UUID, file models.MediaFile, description *string, uploadedBy *uuid.UUID) (*models.OrderMedia, error) {
	// Steps run to completion once started, even if the caller goes away.
	ctx = context.WithoutCancel(ctx)

	contentType, err := ResolveContentType(file)
	if err != nil {
		return nil, err
	}

	token, err := s.newToken()
	if err != nil {
		return nil, fmt.Errorf("generate object token: %w", err)
	}
	path := fmt.Sprintf("%s/%s/%s.%s", MediaPathPrefix, orderID, token, fileExtension(file.Filename, contentType))

	if _, err := s.store.Upload(path, bytes.NewReader(file.Data), contentType); err != nil {
		s.log.Error("media upload failed",
			zap.String("order_id", orderID.String()),
			zap.String("filename", file.Filename),
			zap.Error(err))
		if errors.Is(err, models.ErrInvalidPath) || errors.Is(err, models.ErrStorageUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", models.ErrStorageUnavailable, err)
	}

	mediaURL := s.store.PublicURL(path)

	uploader := s.systemIdentity
	if uploadedBy != nil && *uploadedBy != uuid.Nil {
		uploader = *uploadedBy
	} else {
		s.log.Warn("no uploader supplied, recording system identity",
			zap.String("order_id", orderID.String()),
			zap.String("uploaded_by", uploader.String()))
	}

	created, err := s.records.InsertOrderMedia(ctx, &models.OrderMedia{
		OrderID:     orderID,
		MediaURL:    &mediaURL,
		MediaType:   ClassifyMediaType(contentType),
		Description: description,
		UploadedBy:  uploader,
	})
	if err != nil {
		s.log.Error("order media insert failed, uploaded object left in storage",
			zap.String("order_id", orderID.String()),
			zap.String("path", path),
			zap.Error(err))
		if errors.Is(err, models.ErrWriteRejected) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", models.ErrWriteRejected, err)
	}

	s.fileRegionMedia(ctx, orderID, mediaURL)

	s.log.Info("media attached",
		zap.String("order_id", orderID.String()),
		zap.String("media_id", created.ID.String()),
		zap.String("media_type", string(created.MediaType)))
	return created, nil
}

// fileRegionMedia copies the media URL into region_media under the order's
// region, typed by its nut quality.
func (s *MediaService) fileRegionMedia(ctx context.Context, orderID uuid.UUID, mediaURL string) {
	placement, err := s.records.GetOrderPlacement(ctx, orderID)
	if err != nil {
		s.log.Error("region media skipped, order lookup failed",
			zap.String("order_id", orderID.String()),
			zap.Error(err))
		return
	}

	_, err = s.records.InsertRegionMedia(ctx, &models.RegionMedia{
		RegionID: placement.RegionID,
		URL:      mediaURL,
		Type:     placement.NutQuality.RegionMediaType(),
	})
	if err != nil {
		s.log.Error("region media insert failed",
			zap.String("order_id", orderID.String()),
			zap.Error(err))
	}
}

type AttachFailure struct {
	Filename string
	Err      error
}

// AttachBatch is the outcome of a multi-file submission. Attached keeps the
// submission order of the files that succeeded.
type AttachBatch struct {
	Total    int
	Attached []models.OrderMedia
	Failures []AttachFailure
}

// Err summarizes failures as "<k> of <N> failed", or nil if all succeeded.
func (b *AttachBatch) Err() error {
	if len(b.Failures) == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d failed", len(b.Failures), b.Total)
}

// AttachAll runs AttachMedia for every file concurrently and waits for all
// of them. Files that succeeded stay attached when others fail.
func (s *MediaService) AttachAll(ctx context.Context, orderID uuid.UUID, files []models.MediaFile, description *string, uploadedBy *uuid.UUID) *AttachBatch {
	type result struct {
		media *models.OrderMedia
		err   error
	}
	results := make([]result, len(files))

	var g errgroup.Group
	for i, file := range files {
		g.Go(func() error {
			media, err := s.AttachMedia(ctx, orderID, file, description, uploadedBy)
			results[i] = result{media: media, err: err}
			return nil
		})
	}
	_ = g.Wait()

	batch := &AttachBatch{Total: len(files), Attached: make([]models.OrderMedia, 0, len(files))}
	for i, r := range results {
		if r.err != nil {
			batch.Failures = append(batch.Failures, AttachFailure{Filename: files[i].Filename, Err: r.err})
			continue
		}
		batch.Attached = append(batch.Attached, *r.media)
	}
	return batch
}

// ListMedia returns an order's media, newest first.
func (s *MediaService) ListMedia(ctx context.Context, orderID uuid.UUID) ([]models.OrderMedia, error) {
	return s.records.ListOrderMedia(ctx, orderID)
}

// DeleteMedia removes the stored object and then the row. A storage failure
// is logged and the row is deleted anyway.
func (s *MediaService) DeleteMedia(ctx context.Context, mediaID uuid.UUID) error {
	ctx = context.WithoutCancel(ctx)

	media, err := s.records.GetOrderMedia(ctx, mediaID)
	if err != nil {
		return err
	}

	if media.MediaURL != nil && *media.MediaURL != "" {
		path, ok := s.store.PathFromURL(*media.MediaURL)
		if !ok {
			s.log.Warn("media url outside bucket, skipping object removal",
				zap.String("media_id", mediaID.String()),
				zap.String("media_url", *media.MediaURL))
		} else if err := s.store.Remove(path); err != nil {
			s.log.Warn("stored object removal failed, deleting row anyway",
				zap.String("media_id", mediaID.String()),
				zap.String("path", path),
				zap.Error(err))
		}
	}

	if err := s.records.DeleteOrderMedia(ctx, mediaID); err != nil {
		s.log.Error("order media delete failed", zap.String("media_id", mediaID.String()), zap.Error(err))
		return err
	}
	return nil
}

// ListStoredObjects lists the object keys kept under an order's prefix,
// including objects whose row insert failed.
func (s *MediaService) ListStoredObjects(orderID uuid.UUID) ([]string, error) {
	return s.store.List(fmt.Sprintf("%s/%s", MediaPathPrefix, orderID))
}

// ResolveContentType returns the normalized declared content type of file.
// Types outside the allow-list, including a missing type, yield
// ErrUnsupportedMediaType. The file bytes are never inspected.
func ResolveContentType(file models.MediaFile) (string, error) {
	contentType := normalizeContentType(file.ContentType)
	if !allowedContentTypes[contentType] {
		return "", fmt.Errorf("%w: %q", models.ErrUnsupportedMediaType, contentType)
	}
	return contentType, nil
}

func ClassifyMediaType(contentType string) models.MediaType {
	if strings.HasPrefix(contentType, "video/") {
		return models.MediaTypeVideo
	}
	return models.MediaTypeImage
}

func normalizeContentType(contentType string) string {
	contentType, _, _ = strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(contentType))
}

// fileExtension keeps the original extension, falling back to the one
// registered for the content type.
func fileExtension(filename, contentType string) string {
	if ext := strings.TrimPrefix(filepath.Ext(filename), "."); ext != "" {
		return ext
	}
	if m := mimetype.Lookup(contentType); m != nil && m.Extension() != "" {
		return strings.TrimPrefix(m.Extension(), ".")
	}
	return "bin"
}

const tokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// randomToken returns 16 random base-36 characters.
func randomToken() (string, error) {
	var b strings.Builder
	max := big.NewInt(int64(len(tokenAlphabet)))
	for i := 0; i < 16; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(tokenAlphabet[n.Int64()])
	}
	return b.String(), nil
}
