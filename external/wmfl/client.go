package wmfl

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"strconv"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/wmfl-standings/internal/platform/logging"
	"github.com/riskibarqy/wmfl-standings/internal/platform/resilience"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

const (
	DefaultURLTemplate = "https://wmfl.ru/tournament/%d/standings"
	DefaultUserAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	DefaultTimeout     = 15 * time.Second

	maxRedirects    = 5
	maxResponseBody = 8 << 20
)

// ErrFetchFailed marks every failure to obtain a standings page: transport,
// timeout, non-2xx status, undecodable body or an open circuit.
var ErrFetchFailed = crerr.New("wmfl standings fetch failed")

type ClientConfig struct {
	HTTPClient     *fasthttp.Client
	URLTemplate    string
	UserAgent      string
	Timeout        time.Duration
	InsecureTLS    bool
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client downloads tournament standings pages. One GET per call, no retries.
type Client struct {
	httpClient  *fasthttp.Client
	urlTemplate string
	userAgent   string
	timeout     time.Duration
	logger      *logging.Logger
	breaker     *resilience.CircuitBreaker
	flight      resilience.SingleFlight[string]
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	urlTemplate := strings.TrimSpace(cfg.URLTemplate)
	if urlTemplate == "" {
		urlTemplate = DefaultURLTemplate
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:                userAgent,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxResponseBody,
			TLSConfig:           &tls.Config{InsecureSkipVerify: cfg.InsecureTLS}, //nolint:gosec
		}
	}

	return &Client{
		httpClient:  httpClient,
		urlTemplate: urlTemplate,
		userAgent:   userAgent,
		timeout:     timeout,
		logger:      logger,
		breaker:     resilience.NewCircuitBreaker(cfg.CircuitBreaker),
	}
}

// StandingsURL renders the page address for a tournament.
func (c *Client) StandingsURL(tournamentID int64) string {
	return fmt.Sprintf(c.urlTemplate, tournamentID)
}

// FetchStandingsPage returns the standings page of tournamentID decoded to UTF-8.
func (c *Client) FetchStandingsPage(ctx context.Context, tournamentID int64) (string, error) {
	if tournamentID <= 0 {
		return "", crerr.Mark(crerr.New("tournament id must be greater than zero"), ErrFetchFailed)
	}
	if err := ctx.Err(); err != nil {
		return "", fetchError(tournamentID, err)
	}

	pageURL := c.StandingsURL(tournamentID)
	page, err, _ := c.flight.Do(strconv.FormatInt(tournamentID, 10), func() (string, error) {
		var body string
		err := c.breaker.Do(func() error {
			var reqErr error
			body, reqErr = c.get(ctx, pageURL)
			return reqErr
		}, nil)
		return body, err
	})
	if err != nil {
		if crerr.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "wmfl circuit breaker rejected request", "tournament_id", tournamentID, "state", c.breaker.State())
		} else {
			c.logger.WarnContext(ctx, "wmfl request failed", "tournament_id", tournamentID, "url", pageURL, "error", err)
		}
		return "", fetchError(tournamentID, err)
	}
	return page, nil
}

func (c *Client) get(ctx context.Context, pageURL string) (string, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(pageURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetUserAgent(c.userAgent)
	req.Header.Set(fasthttp.HeaderAccept, "text/html,application/xhtml+xml")
	req.SetTimeout(c.requestTimeout(ctx))

	if err := c.httpClient.DoRedirects(req, resp, maxRedirects); err != nil {
		return "", crerr.Wrap(err, "send request")
	}

	status := resp.StatusCode()
	if status < fasthttp.StatusOK || status >= fasthttp.StatusMultipleChoices {
		return "", crerr.Newf("unexpected status=%d", status)
	}

	body, err := resp.BodyUncompressed()
	if err != nil {
		return "", crerr.Wrap(err, "read response body")
	}
	return decodeUTF8(body, string(resp.Header.ContentType()))
}

// requestTimeout shrinks the configured timeout to the context deadline.
func (c *Client) requestTimeout(ctx context.Context) time.Duration {
	timeout := c.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		timeout = time.Millisecond
	}
	return timeout
}

// decodeUTF8 converts body to UTF-8 using the Content-Type charset, a <meta>
// declaration or content sniffing, in that order.
func decodeUTF8(body []byte, contentType string) (string, error) {
	encoding, _, _ := charset.DetermineEncoding(body, contentType)

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(transform.NewReader(bytes.NewReader(body), encoding.NewDecoder())); err != nil {
		return "", crerr.Wrap(err, "decode response body")
	}
	return buf.String(), nil
}

func fetchError(tournamentID int64, err error) error {
	return crerr.Mark(crerr.Wrapf(err, "fetch standings tournament_id=%d", tournamentID), ErrFetchFailed)
}
