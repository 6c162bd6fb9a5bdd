// Package prokerala is a rate limited, retrying client for the Prokerala
// astrology API, authenticated with OAuth2 client credentials
package prokerala

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	perr "panchang/internal/platform/errors"
	"panchang/internal/platform/logger"
	ptime "panchang/internal/platform/time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

const panchangPath = "/v2/astrology/panchang"

// operation labels carried on returned errors
const (
	OpPanchang = "prokerala.panchang"
	OpToken    = "prokerala.token"
)

// ErrNotConfigured is returned by NewClient when credentials are missing
var ErrNotConfigured = perr.New(perr.ErrorCodeUnavailable, "prokerala credentials not configured")

// Client fetches panchang data. It is safe for concurrent use
type Client struct {
	http    *http.Client
	tr      *http.Transport
	tokens  oauth2.TokenSource
	opts    Options
	loc     *time.Location
	limiter *rate.Limiter
	log     logger.Logger
	now     func() time.Time
	sleep   func(context.Context, time.Duration) error
}

// NewClient builds a client; it fails fast on missing credentials or a bad offset
func NewClient(o Options) (*Client, error) {
	if !o.Configured() {
		return nil, ErrNotConfigured
	}
	o = o.withDefaults()
	loc, err := ptime.ParseOffset(o.Offset)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "prokerala offset")
	}

	tr := http.DefaultTransport.(*http.Transport).Clone()
	base := &http.Client{Transport: tr, Timeout: o.Timeout}
	cc := clientcredentials.Config{
		ClientID:     o.ClientID,
		ClientSecret: o.ClientSecret,
		TokenURL:     o.TokenURL,
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	// token fetches ride the same transport; tokens are cached until expiry
	tctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	ts := cc.TokenSource(tctx)
	hc := oauth2.NewClient(tctx, ts)
	hc.Timeout = o.Timeout

	return &Client{
		http:    hc,
		tr:      tr,
		tokens:  ts,
		opts:    o,
		loc:     loc,
		limiter: rate.NewLimiter(rate.Limit(o.RPS), o.Burst),
		log:     *logger.Named("prokerala"),
		now:     time.Now,
		sleep:   sleepCtx,
	}, nil
}

// Close releases idle connections
func (c *Client) Close() { c.tr.CloseIdleConnections() }

// Ping checks that the client credentials are accepted by fetching (or
// reusing) an access token
func (c *Client) Ping(ctx context.Context) error {
	type result struct{ err error }
	done := make(chan result, 1)
	go func() {
		_, err := c.tokens.Token()
		done <- result{err}
	}()
	select {
	case <-ctx.Done():
		return perr.FromContext(ctx.Err())
	case r := <-done:
		if r.err != nil {
			return perr.WithOp(classifyTransport(ctx, r.err), OpToken)
		}
		return nil
	}
}

// Panchang returns the provider's panchang data for the day starting at
// local midnight of date (YYYY-MM-DD) at the given coordinates
func (c *Client) Panchang(ctx context.Context, date string, lat, lon float64, ayanamsa int) (map[string]any, error) {
	data, err := c.panchang(ctx, date, lat, lon, ayanamsa)
	if err != nil {
		return nil, perr.WithOp(err, OpPanchang)
	}
	return data, nil
}

func (c *Client) panchang(ctx context.Context, date string, lat, lon float64, ayanamsa int) (map[string]any, error) {
	day, err := ptime.StartOfDay(date, c.loc)
	if err != nil {
		return nil, perr.WithField(perr.InvalidArgf("date %q must be YYYY-MM-DD", date), "date")
	}
	q := url.Values{}
	q.Set("ayanamsa", strconv.Itoa(ayanamsa))
	q.Set("coordinates", coord(lat)+","+coord(lon))
	q.Set("datetime", ptime.ProviderStamp(day))
	q.Set("la", c.opts.Lang)

	body, err := c.get(ctx, panchangPath, q)
	if err != nil {
		return nil, err
	}

	var env struct {
		Status string         `json:"status"`
		Data   map[string]any `json:"data"`
	}
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUpstream, "prokerala decode panchang")
	}
	if env.Data == nil {
		return nil, perr.Newf(perr.ErrorCodeUpstream, "prokerala panchang without data (status %q)", env.Status)
	}
	return env.Data, nil
}

// get issues a GET with rate limiting, retries and status mapping, returning the body
func (c *Client) get(ctx context.Context, path string, q url.Values) ([]byte, error) {
	u := c.opts.BaseURL + path + "?" + q.Encode()
	attempts := 0
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return nil, perr.FromContext(ctx.Err())
			}
			return nil, perr.Wrapf(err, perr.ErrorCodeTooManyRequests, "prokerala local rate limit")
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "prokerala new request failed")
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", c.opts.UserAgent)

		start := c.now()
		resp, err := c.http.Do(req)
		lat := c.now().Sub(start)

		if err != nil {
			err = classifyTransport(ctx, err)
			if !perr.Retryable(err) || !c.shouldRetry(attempts) {
				return nil, err
			}
			if err := c.wait(ctx, c.backoff(attempts), attempts, "prokerala transport error retrying"); err != nil {
				return nil, err
			}
			attempts++
			continue
		}

		c.log.Debug().
			Str("path", path).
			Int("status", resp.StatusCode).
			Int("attempt", attempts).
			Dur("latency", lat).
			Msg("prokerala http response")

		switch {
		case resp.StatusCode == http.StatusOK:
			b, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
			_ = resp.Body.Close()
			if err != nil {
				return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "prokerala read body")
			}
			return b, nil

		case resp.StatusCode == http.StatusTooManyRequests:
			wait := retryAfter(resp.Header.Get("Retry-After"))
			if wait <= 0 {
				wait = c.backoff(attempts)
			}
			_ = drainAndClose(resp.Body)
			if !c.shouldRetry(attempts) {
				return nil, perr.Newf(perr.ErrorCodeTooManyRequests, "prokerala rate limited")
			}
			if err := c.wait(ctx, wait, attempts, "prokerala rate limited backing off"); err != nil {
				return nil, err
			}
			attempts++
			continue

		case transient(resp.StatusCode):
			_ = drainAndClose(resp.Body)
			if !c.shouldRetry(attempts) {
				return nil, perr.Unavailablef("prokerala transient server error %d", resp.StatusCode)
			}
			if err := c.wait(ctx, c.backoff(attempts), attempts, "prokerala transient error retrying"); err != nil {
				return nil, err
			}
			attempts++
			continue

		default:
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			_ = resp.Body.Close()
			return nil, statusError(resp.StatusCode, b)
		}
	}
}

func (c *Client) wait(ctx context.Context, d time.Duration, attempt int, msg string) error {
	c.log.Warn().Dur("retry_in", d).Int("attempt", attempt).Msg(msg)
	if err := c.sleep(ctx, d); err != nil {
		return perr.FromContext(err)
	}
	return nil
}

func (c *Client) backoff(attempt int) time.Duration {
	d := c.opts.RetryBase << uint(attempt)
	if ceiling := 10 * time.Second; d > ceiling || d <= 0 {
		return ceiling
	}
	return d
}

func (c *Client) shouldRetry(attempt int) bool {
	return attempt < c.opts.MaxRetries
}

// classifyTransport maps a failed round trip, including token fetch failures
func classifyTransport(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return perr.FromContext(ctx.Err())
	}
	var re *oauth2.RetrieveError
	if errors.As(err, &re) {
		if re.Response != nil && re.Response.StatusCode >= 500 {
			return perr.Wrapf(err, perr.ErrorCodeUnavailable, "prokerala token endpoint unavailable")
		}
		return perr.Wrapf(err, perr.ErrorCodeUnauthorized, "prokerala rejected client credentials")
	}
	var ue *url.Error
	if errors.As(err, &ue) && ue.Timeout() {
		return perr.Wrapf(err, perr.ErrorCodeTimeout, "prokerala request timed out")
	}
	return perr.Wrapf(err, perr.ErrorCodeUnavailable, "prokerala request failed")
}
