package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	"github.com/hoshichaam/ojol_app_go/internal/models"
	"github.com/hoshichaam/ojol_app_go/pkg/authutil"
)

const (
	pathRegister       = "/auth/register"
	pathLogin          = "/auth/login"
	pathSaveFcmToken   = "/auth/fcm-token"
	pathForgotPassword = "/auth/forgot-password"

	headerRequestID = "X-Request-ID"
)

// AuthClient memanggil backend autentikasi lewat HTTP/JSON.
type AuthClient struct {
	BaseURL string
	Client  *http.Client
}

func NewAuthClient(baseURL string, timeout time.Duration) *AuthClient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &AuthClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

// APIError adalah respons non-2xx dari backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("auth api error: status=%d", e.Status)
	}
	return fmt.Sprintf("auth api error: status=%d message=%s", e.Status, e.Message)
}

// UserMessage is the text the backend meant for the user, if any.
func (e *APIError) UserMessage() string { return e.Message }

func (c *AuthClient) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	var res models.AuthResponse
	if err := c.post(ctx, pathRegister, req, &res); err != nil {
		return models.User{}, err
	}
	u := res.User
	if u.ID == "" {
		u.ID = res.UserID
	}
	if u.Email == "" {
		u.Email = req.Email
	}
	return u, nil
}

func (c *AuthClient) Login(ctx context.Context, identifier, password string) (models.AuthResponse, error) {
	var res models.AuthResponse
	err := c.post(ctx, pathLogin, models.LoginRequest{Identifier: identifier, Password: password}, &res)
	if err != nil {
		return models.AuthResponse{}, err
	}
	if res.User.ID == "" {
		res.User.ID = res.UserID
	}

	// backend lama hanya kirim accessToken + userId, role ada di klaim token
	if res.User.ID == "" || res.User.Role == "" {
		if claims, err := authutil.InspectAccessToken(res.BearerToken()); err == nil {
			if res.User.ID == "" {
				res.User.ID = claims.Subject
			}
			if res.User.Role == "" {
				res.User.Role = models.Role(claims.Role)
			}
		} else {
			log.Debugw("auth: no usable access token claims", "err", err)
		}
	}
	return res, nil
}

func (c *AuthClient) SaveFcmToken(ctx context.Context, userID, token string) error {
	return c.post(ctx, pathSaveFcmToken, models.SaveFcmTokenRequest{UserID: userID, FcmToken: token}, nil)
}

func (c *AuthClient) ForgotPassword(ctx context.Context, email string) error {
	return c.post(ctx, pathForgotPassword, models.ForgotPasswordRequest{Email: email}, nil)
}

func (c *AuthClient) post(ctx context.Context, path string, in, out any) error {
	if c == nil {
		return fmt.Errorf("auth client is nil")
	}
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	reqID := uuid.NewString()
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(headerRequestID, reqID)

	resp, err := c.Client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("auth %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("auth %s: read body: %w", path, err)
	}
	log.Debugw("auth: response", "path", path, "status", resp.StatusCode, "requestId", reqID)

	if resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Message: errorMessage(raw)}
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	return decodeData(raw, out)
}

// decodeData membuka envelope {"data": ...} kalau ada, kalau tidak pakai body apa adanya.
func decodeData(raw []byte, out any) error {
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 && string(env.Data) != "null" {
		raw = env.Data
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode auth response: %w", err)
	}
	return nil
}

// errorMessage mendukung {"message":..}, {"error":{"message":..}} dan {"error":".."}.
func errorMessage(raw []byte) string {
	var body struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	if body.Message != "" {
		return body.Message
	}
	if len(body.Error) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(body.Error, &s); err == nil {
		return s
	}
	var nested struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body.Error, &nested); err == nil {
		return nested.Message
	}
	return ""
}
