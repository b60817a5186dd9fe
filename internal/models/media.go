package models

import (
	"time"

	"github.com/google/uuid"
)

type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

type RegionMediaType string

const (
	RegionMediaSingle RegionMediaType = "single"
	RegionMediaDouble RegionMediaType = "double"
	RegionMediaMixed  RegionMediaType = "mixed"
)

// SystemIdentity stands in for the uploader when the request carries no
// authenticated user. It should be replaced by real auth context once every
// client sends a session token.
var SystemIdentity = uuid.MustParse("016f8928-e368-44ce-a3af-7b38bf712f09")

type OrderMedia struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	MediaURL    *string
	MediaType   MediaType
	Description *string
	UploadedAt  time.Time
	UploadedBy  uuid.UUID
}

// RegionMedia is a denormalized copy of an uploaded media URL filed under
// the order's region. It has no link back to the order or media row.
type RegionMedia struct {
	ID        uuid.UUID
	RegionID  *uuid.UUID
	URL       string
	Type      RegionMediaType
	CreatedAt time.Time
}

// MediaFile is one file submitted for attachment.
type MediaFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// StorageObject references an object stored in the media bucket.
type StorageObject struct {
	Bucket string
	Path   string
}
