package apicontrollers

import (
	"mime/multipart"

	"github.com/drujensen/agenthub/internal/domain/entities"
)

// Attachments converts the uploaded files under field into attachment
// metadata. File contents are never opened.
func Attachments(form *multipart.Form, field string) []entities.Attachment {
	if form == nil {
		return nil
	}

	headers := form.File[field]
	attachments := make([]entities.Attachment, 0, len(headers))
	for _, fh := range headers {
		contentType := fh.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		attachments = append(attachments, entities.Attachment{
			Name: fh.Filename,
			Type: contentType,
			Size: fh.Size,
		})
	}
	return attachments
}
