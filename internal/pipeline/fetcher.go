package pipeline

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/clauselens/clauselens/internal/extract"
	"github.com/clauselens/clauselens/internal/model"
	"github.com/clauselens/clauselens/internal/util"
	"github.com/clauselens/clauselens/internal/worker"
)

// Document is acquired text ready for analysis. Acquisition (file
// read, HTTP fetch, HTML stripping) is the boundary of the engine:
// everything past this point is pure computation.
type Document struct {
	Subject string
	Text    string
}

// Fetcher acquires document text from files and URLs
type Fetcher struct {
	httpClient *http.Client
	robots     *util.RobotsChecker
	limiter    *worker.Limiter
	userAgent  string
	maxBytes   int64
	useRobots  bool
}

// NewFetcher creates a fetcher from configuration
func NewFetcher(cfg *model.Config) *Fetcher {
	transport := &http.Transport{
		Proxy: util.NewProxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy),
	}
	if cfg.HTTP.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &Fetcher{
		httpClient: &http.Client{
			Timeout:   cfg.HTTP.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		robots:    util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout),
		limiter:   worker.NewLimiter(cfg.Concurrency.FetchRatePerHost, cfg.Concurrency.FetchBurst),
		userAgent: cfg.HTTP.UserAgent,
		maxBytes:  cfg.HTTP.MaxBodyBytes,
		useRobots: cfg.HTTP.RespectRobots,
	}
}

// Load resolves a source into document text, for callers that want the
// text without a full analysis run.
func (p *Pipeline) Load(ctx context.Context, source string) (*Document, error) {
	return p.acquire(ctx, source)
}

// acquire resolves a source (URL or file path) into document text
func (p *Pipeline) acquire(ctx context.Context, source string) (*Document, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return p.fetcher.FetchURL(ctx, source)
	}
	return p.fetcher.ReadFile(source)
}

// ReadFile loads a local document, stripping HTML when the file looks
// like a web page.
func (f *Fetcher) ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	text := string(data)
	if extract.LooksLikeHTML(text, "") {
		text, err = extract.VisibleText(text)
		if err != nil {
			return nil, fmt.Errorf("strip HTML: %w", err)
		}
	}

	return &Document{
		Subject: subjectFromPath(path),
		Text:    text,
	}, nil
}

// FetchURL retrieves a document over HTTP, honoring robots.txt and
// the per-host rate limit, and strips HTML to visible text.
func (f *Fetcher) FetchURL(ctx context.Context, rawURL string) (*Document, error) {
	if f.useRobots {
		allowed, crawlDelay, err := f.robots.CanFetch(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("robots check: %w", err)
		}
		if !allowed {
			return nil, fmt.Errorf("robots.txt disallows fetching %s", rawURL)
		}
		if err := f.limiter.WaitWithDelay(ctx, rawURL, crawlDelay); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	} else if err := f.limiter.Wait(ctx, rawURL); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,text/plain;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	text := string(body)
	contentType := resp.Header.Get("Content-Type")
	if extract.LooksLikeHTML(text, contentType) {
		text, err = extract.VisibleText(text)
		if err != nil {
			return nil, fmt.Errorf("strip HTML: %w", err)
		}
	}

	return &Document{
		Subject: subjectFromURL(resp.Request.URL.String()),
		Text:    text,
	}, nil
}

// subjectFromPath derives a readable subject from a file name
func subjectFromPath(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	return name
}

// subjectFromURL derives a readable subject from the final URL
func subjectFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	path := strings.Trim(parsed.Path, "/")
	if path == "" {
		return parsed.Host
	}

	segments := strings.Split(path, "/")
	last := segments[len(segments)-1]

	last = strings.ReplaceAll(last, "_", " ")
	last = strings.ReplaceAll(last, "-", " ")

	if idx := strings.LastIndex(last, "."); idx > 0 {
		last = last[:idx]
	}

	return last
}
