package collect

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/net/publicsuffix"
	"golang.org/x/time/rate"

	"cookietrace/internal/domain"
	"cookietrace/internal/log"
)

// throttleEvery paces throttled runs at one session per half second.
const throttleEvery = 500 * time.Millisecond

// Collector opens fresh sessions against a target and records every cookie
// the server sets.
type Collector struct {
	transport http.RoundTripper
	log       zerolog.Logger
}

func New(client *http.Client) *Collector {
	var rt http.RoundTripper
	if client != nil {
		rt = client.Transport
	}
	return &Collector{transport: rt, log: log.WithComponent("collect")}
}

var _ domain.Collector = (*Collector)(nil)

// Collect runs opts.Requests sessions against rawurl, appending every cookie
// observation to store. Each session is independent: a new jar, a POST of the
// payload (even when empty, mirroring a login form submit), then a GET.
// Partial captures survive a mid-run failure.
func (c *Collector) Collect(ctx context.Context, rawurl string, opts domain.CollectOptions, store domain.SeriesStore) (domain.Run, error) {
	target, err := url.Parse(rawurl)
	if err != nil {
		return domain.Run{}, fmt.Errorf("parse url: %w", err)
	}
	label, err := SiteLabel(rawurl)
	if err != nil {
		return domain.Run{}, err
	}

	run := domain.Run{
		ID:         uuid.NewString(),
		URL:        rawurl,
		Domain:     label,
		OutDir:     store.Dir(),
		Requests:   opts.Requests,
		StartedUTC: time.Now().UTC().Unix(),
	}

	c.log.Info().
		Str("url", rawurl).
		Int("requests", opts.Requests).
		Bool("throttle", opts.Throttle).
		Int("payload_fields", len(opts.Payload)).
		Msg("collecting cookies")

	var limiter *rate.Limiter
	if opts.Throttle {
		limiter = rate.NewLimiter(rate.Every(throttleEvery), 1)
	}

	seen := make(map[string]struct{})
	for i := 0; i < opts.Requests; i++ {
		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				return run, err
			}
		}

		cookies, err := c.session(ctx, target, opts)
		if err != nil {
			return run, fmt.Errorf("request %d/%d: %w", i+1, opts.Requests, err)
		}

		at := time.Now()
		for _, ck := range cookies {
			if err := store.Append(ck.Name, domain.Sample{At: at, Value: ck.Value}); err != nil {
				return run, err
			}
			seen[ck.Name] = struct{}{}
			run.Samples++
		}
		c.log.Debug().Int("request", i+1).Int("cookies", len(cookies)).Msg("session complete")
	}

	run.Cookies = len(seen)
	run.FinishedUTC = time.Now().UTC().Unix()
	return run, nil
}

// session opens one throwaway session and returns the cookies its jar holds
// for the target afterwards.
func (c *Collector) session(ctx context.Context, target *url.URL, opts domain.CollectOptions) ([]*http.Cookie, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, err
	}
	client := &http.Client{
		Transport: c.transport,
		Jar:       jar,
		Timeout:   opts.Timeout,
	}

	if err := c.do(ctx, client, http.MethodPost, target, opts); err != nil {
		return nil, err
	}
	if err := c.do(ctx, client, http.MethodGet, target, opts); err != nil {
		return nil, err
	}
	return jar.Cookies(target), nil
}

func (c *Collector) do(ctx context.Context, client *http.Client, method string, target *url.URL, opts domain.CollectOptions) error {
	var body io.Reader
	if method == http.MethodPost {
		body = strings.NewReader(opts.Payload.Encode())
	}
	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return err
	}
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if opts.UserAgent != "" {
		req.Header.Set("User-Agent", opts.UserAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}
