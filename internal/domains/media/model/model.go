package model

import (
	"github.com/lib/pq"

	"hostconnect/shared/model"
)

const (
	TableName  = "property_media"
	EntityName = "property_media"

	FieldID         = "id"
	FieldPropertyID = "property_id"
	FieldTitle      = "title"
	FieldImages     = "images"
)

// PropertyMedia groups the marketing images of a property. Images holds the
// public S3 URLs, not object keys.
type PropertyMedia struct {
	ID          string         `db:"id"`
	PropertyID  string         `db:"property_id"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	Images      pq.StringArray `db:"images"`
	model.Metadata
}
