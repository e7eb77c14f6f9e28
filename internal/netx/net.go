// Package netx holds small HTTP helpers shared by the clients.
package netx

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// maxDownloadSize caps the body accepted from a presigned URL.
const maxDownloadSize = 64 << 20

// DownloadFromPresignedURL fetches the object behind a presigned GET URL.
func DownloadFromPresignedURL(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("download failed: %s; body: %s", resp.Status, string(b))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDownloadSize+1))
	if err != nil {
		return nil, err
	}
	if len(body) > maxDownloadSize {
		return nil, fmt.Errorf("download failed: object larger than %d bytes", maxDownloadSize)
	}
	return body, nil
}
