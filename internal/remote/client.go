// Package remote mirrors the exported bundle to a fixed path in an external
// blob store (Dropbox content API semantics), gated by a bearer token
// obtained through an implicit-grant authorization redirect. Sync is strictly
// best-effort: push failures degrade to a boolean and never reach the local
// write that triggered them.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/clinicdesk/clinicdesk/internal/backup"
	"github.com/clinicdesk/clinicdesk/internal/store"
)

const (
	defaultAuthEndpoint    = "https://www.dropbox.com/oauth2/authorize"
	defaultContentEndpoint = "https://content.dropboxapi.com"
	defaultRemotePath      = "/clinicdesk_backup_live.json"

	// tokenKey is the backend key holding the single stored credential.
	// Presence of the token is the sole signal of "connected".
	tokenKey = "clinic_remote_token"
)

// ErrNotConnected is returned by Pull when no credential is stored.
var ErrNotConnected = errors.New("remote backup not connected")

// Config carries the client settings. Zero values fall back to the Dropbox
// production endpoints; tests point the endpoints at a local server.
type Config struct {
	ClientID        string
	RemotePath      string
	AuthEndpoint    string
	ContentEndpoint string
	HTTPClient      *http.Client
}

// Client talks to the blob store and owns the stored credential.
type Client struct {
	backend         store.Backend
	log             zerolog.Logger
	http            *http.Client
	clientID        string
	remotePath      string
	authEndpoint    string
	contentEndpoint string
}

// NewClient wires a client over the same backend the store persists to.
func NewClient(backend store.Backend, cfg Config, log zerolog.Logger) *Client {
	c := &Client{
		backend:         backend,
		log:             log.With().Str("component", "remote").Logger(),
		http:            cfg.HTTPClient,
		clientID:        cfg.ClientID,
		remotePath:      cfg.RemotePath,
		authEndpoint:    cfg.AuthEndpoint,
		contentEndpoint: cfg.ContentEndpoint,
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: 30 * time.Second}
	}
	if c.remotePath == "" {
		c.remotePath = defaultRemotePath
	}
	if c.authEndpoint == "" {
		c.authEndpoint = defaultAuthEndpoint
	}
	if c.contentEndpoint == "" {
		c.contentEndpoint = defaultContentEndpoint
	}
	return c
}

// AuthorizeURL builds the implicit-grant redirect URL for the external
// authorization page. The redirect URI is the given origin stripped of any
// fragment and trailing slash, so it matches the URI registered with the
// blob host exactly.
func (c *Client) AuthorizeURL(origin string) string {
	redirect := strings.SplitN(origin, "#", 2)[0]
	redirect = strings.TrimSuffix(redirect, "/")
	return fmt.Sprintf("%s?client_id=%s&response_type=token&redirect_uri=%s",
		c.authEndpoint, url.QueryEscape(c.clientID), url.QueryEscape(redirect))
}

// TokenFromFragment extracts the bearer token from an implicit-grant callback
// fragment ("#access_token=...&token_type=bearer"). Empty when absent.
func TokenFromFragment(fragment string) string {
	values, err := url.ParseQuery(strings.TrimPrefix(fragment, "#"))
	if err != nil {
		return ""
	}
	return values.Get("access_token")
}

// SaveToken stores the credential. A stored token means Connected.
func (c *Client) SaveToken(token string) error {
	return c.backend.Set(tokenKey, []byte(token))
}

// Token returns the stored credential, if any.
func (c *Client) Token() (string, bool) {
	raw, ok, err := c.backend.Get(tokenKey)
	if err != nil || !ok || len(raw) == 0 {
		return "", false
	}
	return string(raw), true
}

// Disconnect clears the credential, transitioning back to Disconnected.
func (c *Client) Disconnect() error {
	return c.backend.Delete(tokenKey)
}

// uploadArg is the per-request argument header of the content upload call.
type uploadArg struct {
	Path           string `json:"path"`
	Mode           string `json:"mode"`
	Autorename     bool   `json:"autorename"`
	Mute           bool   `json:"mute"`
	StrictConflict bool   `json:"strict_conflict"`
}

// Push uploads the bundle to the fixed remote path in overwrite mode. False
// on any transport or credential failure; nothing ever propagates past this
// boundary.
func (c *Client) Push(ctx context.Context, b *backup.Bundle) bool {
	token, ok := c.Token()
	if !ok {
		return false
	}

	body, err := json.Marshal(b)
	if err != nil {
		c.log.Debug().Err(err).Msg("push: encode bundle")
		return false
	}
	arg, err := json.Marshal(uploadArg{
		Path:       c.remotePath,
		Mode:       "overwrite",
		Autorename: false,
		Mute:       true,
	})
	if err != nil {
		return false
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.contentEndpoint+"/2/files/upload", bytes.NewReader(body))
	if err != nil {
		return false
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Dropbox-API-Arg", string(arg))
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Msg("push failed (offline?)")
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Debug().Int("status", resp.StatusCode).Msg("push rejected")
		return false
	}
	return true
}

// Pull downloads and decodes the bundle from the fixed remote path.
func (c *Client) Pull(ctx context.Context) (*backup.Bundle, error) {
	token, ok := c.Token()
	if !ok {
		return nil, ErrNotConnected
	}

	arg, err := json.Marshal(struct {
		Path string `json:"path"`
	}{Path: c.remotePath})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.contentEndpoint+"/2/files/download", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Dropbox-API-Arg", string(arg))

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download backup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("download backup: status %d", resp.StatusCode)
	}

	var b backup.Bundle
	if err := json.NewDecoder(resp.Body).Decode(&b); err != nil {
		return nil, fmt.Errorf("decode remote bundle: %w", err)
	}
	return &b, nil
}
