package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"iptv-toolkit/config"
	"iptv-toolkit/logger"
	"iptv-toolkit/playlist"
	"iptv-toolkit/utils"
)

// ErrFetch reports a playlist source that could not be retrieved.
var ErrFetch = errors.New("failed to fetch playlist")

var httpClient = &http.Client{
	Timeout: 10 * time.Second,
}

// LoadURL fetches and parses a playlist from an http(s):// or file://
// location. The request carries the User-Agent configured through the
// USER_AGENT environment variable, since many providers reject unknown
// clients.
func LoadURL(ctx context.Context, url string, opts ...Option) (*playlist.Playlist, *Report, error) {
	if strings.HasPrefix(url, "file://") {
		return LoadFile(ctx, strings.TrimPrefix(url, "file://"), opts...)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrFetch, url, err)
	}
	req.Header.Set("User-Agent", utils.GetEnv("USER_AGENT"))

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrFetch, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("%w: %s: unexpected status code %d", ErrFetch, url, resp.StatusCode)
	}

	// The raw body is kept under the sources dir so a failed parse can be
	// inspected and a source can be re-parsed without re-fetching. Best
	// effort: a copy failure never fails the load.
	body := io.Reader(resp.Body)
	if file, err := createSourceFile(url); err != nil {
		logger.Default.Debugf("not keeping raw copy of %s: %v", url, err)
	} else {
		defer file.Close()
		body = io.TeeReader(resp.Body, file)
	}
	return Load(ctx, body, opts...)
}

func createSourceFile(url string) (*os.File, error) {
	dir := config.GetSourcesDirPath()
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}
	return os.Create(filepath.Join(dir, utils.CalculateChecksum(url)+".m3u"))
}
