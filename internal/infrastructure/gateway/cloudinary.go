package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const (
	defaultBaseURL = "https://api.cloudinary.com/v1_1"
	defaultTimeout = 30 * time.Second
)

// CloudinaryGateway relays raw file bytes to the hosted-image API using the
// unsigned upload flow: a multipart POST carrying the file and an upload
// preset, answered with the public secure URL.
type CloudinaryGateway struct {
	client       *http.Client
	baseURL      string
	cloudName    string
	uploadPreset string
}

func NewCloudinary(cloudName, uploadPreset string) *CloudinaryGateway {
	return NewCloudinaryAt(defaultBaseURL, cloudName, uploadPreset)
}

// NewCloudinaryAt is NewCloudinary with an explicit API base, used by tests
// to point the gateway at a local server.
func NewCloudinaryAt(baseURL, cloudName, uploadPreset string) *CloudinaryGateway {
	return &CloudinaryGateway{
		client:       &http.Client{Timeout: defaultTimeout},
		baseURL:      baseURL,
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
	}
}

// Upload forwards data as a multipart upload and returns the hosted URL. Any
// failure is returned as an error; the caller decides whether to absorb it.
func (g *CloudinaryGateway) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	if g.cloudName == "" || g.uploadPreset == "" {
		return "", errors.New("image host is not configured")
	}

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return "", errors.Wrap(err, "create form file")
	}
	if _, err := part.Write(data); err != nil {
		return "", errors.Wrap(err, "write form file")
	}
	if err := form.WriteField("upload_preset", g.uploadPreset); err != nil {
		return "", errors.Wrap(err, "write upload preset")
	}
	if err := form.Close(); err != nil {
		return "", errors.Wrap(err, "finalize form")
	}

	url := fmt.Sprintf("%s/%s/auto/upload", g.baseURL, g.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", errors.Wrap(err, "create request")
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := g.client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "perform request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var result struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errors.Wrap(err, "decode response")
	}
	if result.SecureURL == "" {
		return "", errors.New("response carries no secure_url")
	}
	return result.SecureURL, nil
}
