package api

import (
	"context"
	"net/http"
)

// uploadResponse carries the stored image URL back from the backend.
type uploadResponse struct {
	URL string `json:"url"`
}

// Upload sends a base64 data-URL image to the backend's upload endpoint
// and returns the stored image URL. Files are read into a data URL in the
// form layer, never streamed.
func (c *Client) Upload(ctx context.Context, token, dataURL string) (string, error) {
	var resp uploadResponse
	body := map[string]string{"image": dataURL}
	if err := c.do(ctx, http.MethodPost, "/upload", token, body, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}
