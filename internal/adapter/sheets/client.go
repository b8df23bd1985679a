package sheets

import (
	"context"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/alumni-sante/sondage-backend/internal/config"
	"github.com/alumni-sante/sondage-backend/internal/domain"
)

const (
	defaultTokenURL = "https://oauth2.googleapis.com/token"
	defaultAPIURL   = "https://sheets.googleapis.com/v4/spreadsheets"

	readonlyScope = "https://www.googleapis.com/auth/spreadsheets.readonly"

	// Refresh the access token slightly before Google's expiry.
	tokenExpiryMargin = time.Minute
)

// Client reads the survey spreadsheet through the Google Sheets values API,
// authenticating as a service account (JWT-bearer grant, RS256 assertion).
type Client struct {
	tokenURL      string
	apiURL        string
	clientEmail   string
	privateKey    *rsa.PrivateKey
	spreadsheetID string

	responseRange  string
	whitelistRange string

	httpClient *http.Client
	log        *slog.Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewClient creates a Client from the sheets configuration. The private key
// must be a PEM-encoded PKCS#8 RSA key.
func NewClient(cfg config.SheetsConfig, logger *slog.Logger) (*Client, error) {
	key, err := parsePrivateKey(cfg.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("sheets: parse private key: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		tokenURL:       defaultTokenURL,
		apiURL:         defaultAPIURL,
		clientEmail:    cfg.ClientEmail,
		privateKey:     key,
		spreadsheetID:  cfg.SpreadsheetID,
		responseRange:  cfg.ResponseRange,
		whitelistRange: cfg.WhitelistRange,
		httpClient:     &http.Client{Timeout: timeout},
		log:            logger.With("adapter", "sheets"),
	}, nil
}

// NewClientWithURLs creates a Client talking to custom endpoints (for testing).
func NewClientWithURLs(cfg config.SheetsConfig, tokenURL, apiURL string, logger *slog.Logger) (*Client, error) {
	c, err := NewClient(cfg, logger)
	if err != nil {
		return nil, err
	}
	c.tokenURL = tokenURL
	c.apiURL = apiURL
	return c, nil
}

// FetchResponses reads the response sheet and converts its rows into survey
// records. The first row is the header; a sheet with no data rows is an error.
func (c *Client) FetchResponses(ctx context.Context) ([]domain.SurveyResponse, error) {
	values, err := c.fetchValues(ctx, c.responseRange)
	if err != nil {
		return nil, err
	}
	if len(values) < 2 {
		return nil, fmt.Errorf("sheets: no data found in sheet")
	}

	records := BuildRecords(values[0], values[1:])

	c.log.DebugContext(ctx, "responses fetched",
		slog.Int("rows", len(values)-1),
		slog.Int("records", len(records)),
	)

	return records, nil
}

// FetchWhitelist reads the whitelist tab and returns the allowed emails,
// lowercased and trimmed. An empty tab yields an empty list.
func (c *Client) FetchWhitelist(ctx context.Context) ([]string, error) {
	values, err := c.fetchValues(ctx, c.whitelistRange)
	if err != nil {
		return nil, err
	}

	emails := make([]string, 0, len(values))
	for _, row := range values {
		for _, cell := range row {
			email := strings.ToLower(strings.TrimSpace(cell))
			if email != "" {
				emails = append(emails, email)
			}
		}
	}

	c.log.DebugContext(ctx, "whitelist fetched", slog.Int("emails", len(emails)))

	return emails, nil
}

type valuesResponse struct {
	Values [][]string `json:"values"`
}

func (c *Client) fetchValues(ctx context.Context, sheetRange string) ([][]string, error) {
	token, err := c.token(ctx)
	if err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s/%s/values/%s", c.apiURL, c.spreadsheetID, url.PathEscape(sheetRange))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("sheets: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		c.log.ErrorContext(ctx, "sheets request failed",
			slog.String("range", sheetRange),
			slog.String("error", err.Error()),
		)
		return nil, fmt.Errorf("sheets: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.log.ErrorContext(ctx, "sheets api error",
			slog.String("range", sheetRange),
			slog.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("sheets: api status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed valuesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("sheets: decode values: %w", err)
	}

	return parsed.Values, nil
}

// token returns a cached access token, exchanging a fresh JWT assertion with
// the OAuth endpoint when the cached one is missing or near expiry.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry.Add(-tokenExpiryMargin)) {
		return c.accessToken, nil
	}

	assertion, err := c.signAssertion()
	if err != nil {
		return "", fmt.Errorf("sheets: sign assertion: %w", err)
	}

	data := url.Values{}
	data.Set("grant_type", "urn:ietf:params:oauth:grant-type:jwt-bearer")
	data.Set("assertion", assertion)
	encoded := data.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(encoded))
	if err != nil {
		return "", fmt.Errorf("sheets: create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(encoded)), nil
	}

	resp, err := c.doWithRetry(ctx, req)
	if err != nil {
		c.log.ErrorContext(ctx, "token exchange failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("sheets: token exchange: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("sheets: read token response: %w", err)
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &tokenResp); err != nil || tokenResp.AccessToken == "" {
		c.log.ErrorContext(ctx, "token exchange failed", slog.Int("status", resp.StatusCode))
		return "", fmt.Errorf("sheets: failed to get access token (status %d)", resp.StatusCode)
	}

	c.accessToken = tokenResp.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)

	return c.accessToken, nil
}

// signAssertion builds the RS256 service-account JWT for the token exchange.
func (c *Client) signAssertion() (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iss":   c.clientEmail,
		"scope": readonlyScope,
		"aud":   c.tokenURL,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(c.privateKey)
}

// doWithRetry executes the request with a single retry on 5xx or network
// errors, with a short backoff.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "sheets retry", slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-time.After(500 * time.Millisecond):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return c.httpClient.Do(req)
}

func parsePrivateKey(pemData string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(pemData))
	if block == nil {
		return nil, fmt.Errorf("no PEM block found")
	}

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse PKCS#8: %w", err)
	}

	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("not an RSA key: %T", parsed)
	}

	return key, nil
}
