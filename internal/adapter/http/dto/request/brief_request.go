package request

import (
	"encoding/base64"
	"errors"

	"antidoshirak/internal/domain/entities"
)

// ErrInvalidAttachment indicates attachment data that is not valid base64.
var ErrInvalidAttachment = errors.New("attachment data is not valid base64")

// BriefAttachmentRequest carries an optional image alongside the brief,
// base64 encoded on the wire.
type BriefAttachmentRequest struct {
	MimeType string `json:"mimeType" binding:"required"`
	Data     string `json:"data" binding:"required"`
}

// BriefRequest is a free-form client brief plus the items already on the
// quote, so the parsed tools merge instead of replacing.
type BriefRequest struct {
	Brief      string                  `json:"brief"`
	Attachment *BriefAttachmentRequest `json:"attachment"`
	Items      []LineItemRequest       `json:"items"`
}

// ResolveAttachment validates the optional attachment payload. The data
// stays base64 encoded; the parser gateway embeds it into a data URL as-is.
func (r BriefRequest) ResolveAttachment() (*entities.BriefAttachment, error) {
	if r.Attachment == nil {
		return nil, nil
	}
	if _, err := base64.StdEncoding.DecodeString(r.Attachment.Data); err != nil {
		return nil, ErrInvalidAttachment
	}
	return &entities.BriefAttachment{
		MimeType: r.Attachment.MimeType,
		Data:     r.Attachment.Data,
	}, nil
}

// ResolveItems maps the existing items without catalog resolution; they
// already carry their prices from a previous evaluation.
func (r BriefRequest) ResolveItems() []entities.LineItem {
	items := make([]entities.LineItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, it.resolve(nil, nil))
	}
	return items
}
