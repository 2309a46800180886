package worker

import (
	"context"
	"fmt"
	"hash/fnv"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const fetchTimeout = 60 * time.Second

// CacheFetcher downloads preview audio into a cache directory, keyed by
// source URL. A second fetch of the same URL returns the cached file.
type CacheFetcher struct {
	httpClient *http.Client
	dir        string
}

var _ Fetcher = (*CacheFetcher)(nil)

// NewCacheFetcher constructs a fetcher writing into dir.
func NewCacheFetcher(httpClient *http.Client, dir string) *CacheFetcher {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: fetchTimeout}
	}
	if strings.TrimSpace(dir) == "" {
		dir = filepath.Join(os.TempDir(), "suurai-previews")
	}
	return &CacheFetcher{httpClient: httpClient, dir: dir}
}

// Fetch returns a local path for the source URL, downloading it on a miss.
func (f *CacheFetcher) Fetch(ctx context.Context, sourceURL string) (string, error) {
	if strings.TrimSpace(sourceURL) == "" {
		return "", fmt.Errorf("missing audio URL")
	}
	if err := os.MkdirAll(f.dir, 0o755); err != nil {
		return "", err
	}

	path := f.cachePath(sourceURL)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sourceURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("download failed: http %d: %s", resp.StatusCode, string(body))
	}

	temp := path + ".part"
	out, err := os.OpenFile(temp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = out.Close()
		_ = os.Remove(temp)
		return "", err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(temp)
		return "", err
	}
	if err := os.Rename(temp, path); err != nil {
		_ = os.Remove(temp)
		return "", err
	}
	return path, nil
}

func (f *CacheFetcher) cachePath(sourceURL string) string {
	hasher := fnv.New64a()
	_, _ = hasher.Write([]byte(sourceURL))
	return filepath.Join(f.dir, fmt.Sprintf("preview-%016x.mp3", hasher.Sum64()))
}
