package dto

type MediaUploadResponse struct {
	ObjectKey string `json:"object_key"`
	PublicURL string `json:"public_url"`
	Size      int64  `json:"size"`
}
