package adapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cryptbox/cryptbox/internal/config"
	"github.com/cryptbox/cryptbox/internal/logger"
	"github.com/cryptbox/cryptbox/internal/utils"
	"github.com/cryptbox/cryptbox/models"
	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"
)

const (
	retryBaseDelay   = 500 * time.Millisecond
	retryMaxAttempts = 3
)

type httpServerAdapter struct {
	client *resty.Client

	hashKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL and request
// timeout, and initialises the shared HMAC hasher pool used for transport
// integrity hashes.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	utils.InitHasherPool(appCfg.HashKey)

	return &httpServerAdapter{client: client, hashKey: appCfg.HashKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the user record to
// POST /api/auth/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the server returns a non-2xx status, or the token cannot
// be parsed.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.send(ctx, func() (*resty.Response, error) {
		return h.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(user).
			Post("/api/auth/register")
	})
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.User{}, fmt.Errorf("register parse user id: %w", err)
	}

	h.SetToken(token)
	user.UserID = userID
	return user, nil
}

// RequestSalt implements [ServerAdapter]. It GETs /api/auth/salt for the given
// login and returns a partial [models.User] containing only Login and
// EncryptionSalt. The salt is required to re-derive the Master Key before the
// auth digest can be computed for Login. Returns an error if the request or
// response mapping fails.
func (h *httpServerAdapter) RequestSalt(ctx context.Context, login string) (models.User, error) {
	var foundUser models.User // only login and encryption salt

	resp, err := h.send(ctx, func() (*resty.Response, error) {
		return h.client.R().
			SetContext(ctx).
			SetQueryParam("login", login).
			SetResult(&foundUser).
			Get("/api/auth/salt")
	})
	if err != nil {
		return models.User{}, fmt.Errorf("request salt: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return models.User{Login: login, EncryptionSalt: foundUser.EncryptionSalt}, nil
}

// Login implements [ServerAdapter]. It POSTs the pre-computed auth digest to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns the user
// populated with the server-assigned UserID. Returns an error if the request
// fails, the server returns a non-2xx status, or the token cannot be parsed.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.send(ctx, func() (*resty.Response, error) {
		return h.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(user).
			Post("/api/auth/login")
	})
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.User{}, fmt.Errorf("login parse user id: %w", err)
	}

	h.SetToken(token)
	user.UserID = userID
	return user, nil
}

// Upload implements [ServerAdapter]. It computes a transport integrity hash
// over the opaque payload fields and POSTs the request to POST /api/files.
// Requires a valid bearer token. Returns the stored record with server-side
// timestamps populated.
func (h *httpServerAdapter) Upload(ctx context.Context, req models.UploadRequest) (models.EncryptedFile, error) {
	req.Hash = computeTransportHash(req.PayloadFields())

	var stored models.EncryptedFile
	resp, err := h.send(ctx, func() (*resty.Response, error) {
		return h.authedRequest(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(req).
			SetResult(&stored).
			Post("/api/files")
	})
	if err != nil {
		return models.EncryptedFile{}, fmt.Errorf("upload request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EncryptedFile{}, err
	}

	return stored, nil
}

// Download implements [ServerAdapter]. It GETs /api/files/{id} and decodes the
// response into a [models.EncryptedFile]. Requires a valid bearer token.
// Returns an error if the request, response mapping, or JSON decoding fails.
func (h *httpServerAdapter) Download(ctx context.Context, fileID string) (models.EncryptedFile, error) {
	resp, err := h.send(ctx, func() (*resty.Response, error) {
		return h.authedRequest(ctx).Get("/api/files/" + url.PathEscape(fileID))
	})
	if err != nil {
		return models.EncryptedFile{}, fmt.Errorf("download request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EncryptedFile{}, err
	}

	var file models.EncryptedFile
	if err = json.Unmarshal(resp.Body(), &file); err != nil {
		return models.EncryptedFile{}, fmt.Errorf("decode download response: %w", err)
	}

	return file, nil
}

// List implements [ServerAdapter]. It GETs /api/files and decodes the listing
// payload. Requires a valid bearer token.
func (h *httpServerAdapter) List(ctx context.Context) ([]models.FileListing, error) {
	resp, err := h.send(ctx, func() (*resty.Response, error) {
		return h.authedRequest(ctx).Get("/api/files")
	})
	if err != nil {
		return nil, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var lr models.ListResponse
	if err = json.Unmarshal(resp.Body(), &lr); err != nil {
		return nil, fmt.Errorf("decode list response: %w", err)
	}
	return lr.Files, nil
}

// Delete implements [ServerAdapter]. It sends DELETE /api/files/{id}.
// Requires a valid bearer token. Returns [ErrNotFound] (wrapped) on HTTP 404.
func (h *httpServerAdapter) Delete(ctx context.Context, fileID string) error {
	resp, err := h.send(ctx, func() (*resty.Response, error) {
		return h.authedRequest(ctx).Delete("/api/files/" + url.PathEscape(fileID))
	})
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

// send executes fn with fibonacci backoff on transient failures. Responses
// with 4xx statuses are returned immediately; transport errors and 5xx
// responses are retried up to retryMaxAttempts times.
func (h *httpServerAdapter) send(ctx context.Context, fn func() (*resty.Response, error)) (*resty.Response, error) {
	var resp *resty.Response

	backoff := retry.WithMaxRetries(retryMaxAttempts, retry.NewFibonacci(retryBaseDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		resp, err = fn()
		if isRetryable(resp, err) {
			if err == nil {
				err = mapHTTPError(resp)
			}
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil && resp != nil && resp.StatusCode() != 0 {
		// retries exhausted on a 5xx: hand the response back so the caller
		// maps the status uniformly
		return resp, nil
	}

	return resp, err
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func computeTransportHash(v any) string {
	payload, err := json.Marshal(v)
	if err != nil {
		return ""
	}

	return hex.EncodeToString(utils.Hash(payload))
}
