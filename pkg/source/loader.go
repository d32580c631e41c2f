// Package source loads marker datasets from HTTP endpoints or local files.
//
// Loading is deliberately forgiving: a dataset that cannot be fetched or
// decoded — unreachable endpoint, non-200 response, missing file, malformed
// JSON — is logged as a warning and treated as empty. The same policy applies
// to network and local sources, so a broken dataset never aborts a run; its
// marker set is simply omitted from the output.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/markergen/pkg/marker"
)

// httpTimeout bounds every network fetch. Local file reads are not subject
// to a timeout.
const httpTimeout = 30 * time.Second

// Loader fetches JSON datasets. Create instances with [New].
type Loader struct {
	http   *http.Client
	logger *log.Logger
}

// New creates a Loader that reports skipped datasets through logger.
func New(logger *log.Logger) *Loader {
	return &Loader{
		http:   &http.Client{Timeout: httpTimeout},
		logger: logger,
	}
}

// Stations loads the station dataset from uri.
func (l *Loader) Stations(ctx context.Context, uri string) []marker.Station {
	return load[marker.Station](ctx, l, "stations", uri)
}

// Lines loads the line dataset from uri.
func (l *Loader) Lines(ctx context.Context, uri string) []marker.Line {
	return load[marker.Line](ctx, l, "lines", uri)
}

// Rivers loads the river dataset from uri.
func (l *Loader) Rivers(ctx context.Context, uri string) []marker.River {
	return load[marker.River](ctx, l, "rivers", uri)
}

// load fetches and decodes one dataset. Any failure degrades to an empty
// slice after a warning; callers never see an error.
func load[T any](ctx context.Context, l *Loader, dataset, uri string) []T {
	data, err := l.read(ctx, uri)
	if err != nil {
		l.logger.Warn("skipping dataset", "dataset", dataset, "uri", uri, "err", err)
		return nil
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		l.logger.Warn("skipping dataset with invalid JSON", "dataset", dataset, "uri", uri, "err", err)
		return nil
	}
	return records
}

// read returns the raw bytes behind uri. URIs with an http or https scheme
// are fetched over the network; everything else is treated as a local path.
func (l *Loader) read(ctx context.Context, uri string) ([]byte, error) {
	if u, err := url.Parse(uri); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return l.get(ctx, uri)
	}
	return os.ReadFile(uri)
}

func (l *Loader) get(ctx context.Context, uri string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
