package dto

// CreateAnnouncementRequest is the announcement creation payload. Image,
// when present, is a base64 data URI forwarded to the media host.
type CreateAnnouncementRequest struct {
	Content string `json:"content"`
	Image   string `json:"image"`
}
