package imagehost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/spf13/viper"
)

// Client uploads image payloads to an ImgBB-style hosting endpoint and returns
// the durable URL. Stateless; one request per call, no retry. The caller
// decides what to do when an upload fails.
type Client struct {
	HttpClient *http.Client
	UploadUrl  string
	ApiKey     string
}

type uploadResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Url string `json:"url"`
	} `json:"data"`
}

func NewClient() *Client {
	return &Client{
		HttpClient: http.DefaultClient,
		UploadUrl:  viper.Get("IMGBB_UPLOAD_URL").(string),
		ApiKey:     viper.Get("IMGBB_API_KEY").(string),
	}
}

func (c *Client) Upload(ctx context.Context, image []byte, filename string) (string, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	part, err := form.CreateFormFile("image", filename)
	if err != nil {
		return "", err
	}
	if _, err = part.Write(image); err != nil {
		return "", err
	}
	if err = form.Close(); err != nil {
		return "", err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.UploadUrl+"?key="+c.ApiKey, &body)
	if err != nil {
		return "", err
	}
	request.Header.Set("Content-Type", form.FormDataContentType())

	response, err := c.HttpClient.Do(request)
	if err != nil {
		return "", err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return "", fmt.Errorf("image host responded with status %d", response.StatusCode)
	}

	var parsed uploadResponse
	if err := json.NewDecoder(response.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if !parsed.Success || parsed.Data.Url == "" {
		return "", fmt.Errorf("image host rejected upload")
	}

	return parsed.Data.Url, nil
}
