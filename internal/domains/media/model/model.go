package model

// UploadResult is returned to the admin console after a successful upload
type UploadResult struct {
	URL         string `json:"url"`
	Path        string `json:"path"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

// UploadInput is a file already read from the multipart request
type UploadInput struct {
	Filename    string
	ContentType string
	Data        []byte
	Folder      string
}
