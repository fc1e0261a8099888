package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/idea-brand-coach/internal/config"
	"github.com/MKhiriev/idea-brand-coach/internal/logger"
	"github.com/MKhiriev/idea-brand-coach/internal/utils"
	"github.com/MKhiriev/idea-brand-coach/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises the base URL from adapterCfg.HTTPAddress and enables body
// signing when appCfg.HashKey is set.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	if appCfg.HashKey != "" {
		a.hasher = utils.NewHasher(appCfg.HashKey)
	}

	return a, nil
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

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/health")
	if err != nil {
		return mapTransportError("health request", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	var v models.VersionResponse
	resp, err := h.client.R().SetContext(ctx).SetResult(&v).Get("/api/version")
	if err != nil {
		return "", mapTransportError("version request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return v.Version, nil
}

// Register implements [ServerAdapter]. The token comes back in the
// Authorization response header.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/api/user/register", user)
}

// Login implements [ServerAdapter].
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/api/user/login", user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.Token, error) {
	req, err := h.signedRequest(ctx, user, false)
	if err != nil {
		return models.Token{}, err
	}

	resp, err := req.Post(path)
	if err != nil {
		return models.Token{}, mapTransportError("auth request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	signed, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("parse bearer token: %w", err)
	}
	userID, err := utils.ParseUserIDFromJWT(signed)
	if err != nil {
		return models.Token{}, fmt.Errorf("parse token subject: %w", err)
	}

	h.SetToken(signed)
	return models.Token{SignedString: signed, UserID: userID}, nil
}

func (h *httpServerAdapter) GetField(ctx context.Context, fieldIdentifier string) (models.FieldRecord, error) {
	var record models.FieldRecord
	err := h.do(ctx, resty.MethodGet, "/api/fields/"+url.PathEscape(fieldIdentifier), nil, &record, nil)
	return record, err
}

func (h *httpServerAdapter) ListFields(ctx context.Context, category models.FieldCategory) ([]models.FieldRecord, error) {
	var records []models.FieldRecord
	var query url.Values
	if category != "" {
		query = url.Values{"category": {string(category)}}
	}
	err := h.do(ctx, resty.MethodGet, "/api/fields", nil, &records, query)
	return records, err
}

func (h *httpServerAdapter) UpsertField(ctx context.Context, upsert models.FieldUpsert) (models.FieldRecord, error) {
	var record models.FieldRecord
	body := struct {
		Category models.FieldCategory `json:"category"`
		Content  string               `json:"content"`
	}{Category: upsert.Category, Content: upsert.Content}

	err := h.do(ctx, resty.MethodPut, "/api/fields/"+url.PathEscape(upsert.FieldIdentifier), body, &record, nil)
	return record, err
}

func (h *httpServerAdapter) ClearFields(ctx context.Context) (int64, error) {
	var res models.ClearFieldsResponse
	err := h.do(ctx, resty.MethodDelete, "/api/fields", nil, &res, nil)
	return res.Deleted, err
}

func (h *httpServerAdapter) ListSessions(ctx context.Context, chatbotType models.ChatbotType) ([]models.ChatSession, error) {
	var sessions []models.ChatSession
	query := url.Values{"chatbot_type": {string(chatbotType)}}
	err := h.do(ctx, resty.MethodGet, "/api/chat/sessions", nil, &sessions, query)
	return sessions, err
}

func (h *httpServerAdapter) CreateSession(ctx context.Context, req models.CreateSessionRequest) (models.ChatSession, error) {
	var session models.ChatSession
	err := h.do(ctx, resty.MethodPost, "/api/chat/sessions", req, &session, nil)
	return session, err
}

func (h *httpServerAdapter) GetSession(ctx context.Context, sessionID string) (models.ChatSession, error) {
	var session models.ChatSession
	err := h.do(ctx, resty.MethodGet, sessionPath(sessionID), nil, &session, nil)
	return session, err
}

func (h *httpServerAdapter) UpdateSession(ctx context.Context, sessionID string, update models.SessionUpdate) (models.ChatSession, error) {
	var session models.ChatSession
	err := h.do(ctx, resty.MethodPatch, sessionPath(sessionID), update, &session, nil)
	return session, err
}

func (h *httpServerAdapter) DeleteSession(ctx context.Context, sessionID string) error {
	return h.do(ctx, resty.MethodDelete, sessionPath(sessionID), nil, nil, nil)
}

func (h *httpServerAdapter) ListMessages(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	var messages []models.ChatMessage
	err := h.do(ctx, resty.MethodGet, sessionPath(sessionID)+"/messages", nil, &messages, nil)
	return messages, err
}

func (h *httpServerAdapter) SendMessage(ctx context.Context, sessionID string, req models.SendMessageRequest) (models.SendMessageResponse, error) {
	var res models.SendMessageResponse
	err := h.do(ctx, resty.MethodPost, sessionPath(sessionID)+"/messages", req, &res, nil)
	return res, err
}

func (h *httpServerAdapter) ClearMessages(ctx context.Context, sessionID string) error {
	return h.do(ctx, resty.MethodDelete, sessionPath(sessionID)+"/messages", nil, nil, nil)
}

func (h *httpServerAdapter) GenerateTitle(ctx context.Context, req models.TitleRequest) (models.TitleResponse, error) {
	var res models.TitleResponse
	err := h.do(ctx, resty.MethodPost, "/api/chat/title", req, &res, nil)
	return res, err
}

func sessionPath(sessionID string) string {
	return "/api/chat/sessions/" + url.PathEscape(sessionID)
}

// do sends an authenticated request. body is JSON encoded and signed when
// non-nil; result receives the decoded 2xx answer when non-nil.
func (h *httpServerAdapter) do(ctx context.Context, method, path string, body, result any, query url.Values) error {
	req, err := h.signedRequest(ctx, body, true)
	if err != nil {
		return err
	}
	if result != nil {
		req.SetResult(result)
	}
	if query != nil {
		req.SetQueryParamsFromValues(query)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Debug().Err(err).
			Str("func", "httpServerAdapter.do").
			Str("method", method).
			Str("path", path).
			Msg("request failed without answer")
		return mapTransportError(method+" "+path, err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) signedRequest(ctx context.Context, body any, authed bool) (*resty.Request, error) {
	req := h.client.R().SetContext(ctx)

	if authed {
		token := h.Token()
		if token == "" {
			return nil, ErrNotAuthenticated
		}
		req.SetAuthToken(token)
	}

	if body == nil {
		return req, nil
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	req.SetHeader("Content-Type", "application/json").SetBody(payload)
	if h.hasher != nil {
		req.SetHeader(utils.HashHeader, h.hasher.SumHex(payload))
	}

	return req, nil
}
