package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/theoremus-urban-solutions/bussearch/config"
	"github.com/theoremus-urban-solutions/bussearch/trips"
)

// fetcher reads the trip table from a URL or a local file.
// This is CLI-specific logic and is not part of the core library.
type fetcher struct {
	httpClient *http.Client
}

func newFetcher() *fetcher {
	return &fetcher{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// fetch downloads the table at url
func (f *fetcher) fetch(url string) ([]byte, error) {
	resp, err := f.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}

// loadStore builds the record store from a local path or an http(s) URL.
// Failures are returned as *trips.LoadError.
func (f *fetcher) loadStore(cfg config.DataConfig) (*trips.Store, error) {
	if !isURL(cfg.Path) {
		return trips.NewStoreFromConfig(cfg)
	}
	data, err := f.fetch(cfg.Path)
	if err != nil {
		return nil, &trips.LoadError{Path: cfg.Path, Err: err}
	}
	records, err := trips.Load(bytes.NewReader(data), trips.WithComma(cfg.Comma()))
	if err != nil {
		var le *trips.LoadError
		if errors.As(err, &le) {
			le.Path = cfg.Path
		}
		return nil, err
	}
	return trips.NewStore(records), nil
}
