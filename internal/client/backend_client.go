package client

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"mdsml_gateway/internal/config"
	"mdsml_gateway/pkg/monitoring"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
)

// APIError 上游后端的标准失败负载 {detail, status}
type APIError struct {
	Detail string `json:"detail"`
	Status int    `json:"status"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend error %d: %s", e.Status, e.Detail)
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UserProfile struct {
	Email        string  `json:"email"`
	FullName     string  `json:"full_name"`
	Points       int     `json:"points"`
	StreakDays   int     `json:"streak_days"`
	MasteryScore float64 `json:"mastery_score"`
}

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type SubmitProblemRequest struct {
	ProblemID       string `json:"problem_id"`
	SubmittedCode   string `json:"submitted_code,omitempty"`
	SubmittedAnswer string `json:"submitted_answer,omitempty"`
}

type SubmitResult struct {
	IsCorrect bool   `json:"is_correct"`
	Feedback  string `json:"feedback"`
}

// BackendClient 学习平台后端的 HTTP 客户端。
// 认证、选课、判题、进度都由后端负责，这里只做转发；
// /users/me 和 /user/progress 的响应走 Redis 短期缓存。
type BackendClient struct {
	BaseURL    string
	HTTPClient *http.Client
	Redis      *redis.Client // 可为 nil，此时不缓存
	CacheTTL   time.Duration
}

func NewBackendClient(cfg *config.BackendConfig, rdb *redis.Client) *BackendClient {
	return &BackendClient{
		BaseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		Redis:      rdb,
		CacheTTL:   cfg.ProfileCacheTTL,
	}
}

func (c *BackendClient) Signup(ctx context.Context, req SignupRequest) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.doJSON(ctx, "signup", http.MethodPost, "/auth/signup", "", req, &out)
	return out, err
}

// Login 按后端的发 token 约定使用表单编码，其余接口都是 JSON
func (c *BackendClient) Login(ctx context.Context, username, password string) (*TokenResponse, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/auth/login", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var out TokenResponse
	if err := c.send(httpReq, "login", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *BackendClient) CurrentUser(ctx context.Context, token string) (*UserProfile, error) {
	var out UserProfile
	if c.cacheGet(ctx, "me", token, &out) {
		return &out, nil
	}
	if err := c.doJSON(ctx, "current_user", http.MethodGet, "/users/me", token, nil, &out); err != nil {
		return nil, err
	}
	c.cacheSet(ctx, "me", token, out)
	return &out, nil
}

func (c *BackendClient) ListCourses(ctx context.Context, token, category string) (json.RawMessage, error) {
	path := "/courses"
	if category != "" {
		path += "?category=" + url.QueryEscape(category)
	}
	var out json.RawMessage
	err := c.doJSON(ctx, "list_courses", http.MethodGet, path, token, nil, &out)
	return out, err
}

func (c *BackendClient) GetCourse(ctx context.Context, token, courseID string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.doJSON(ctx, "get_course", http.MethodGet, "/courses/"+url.PathEscape(courseID), token, nil, &out)
	return out, err
}

func (c *BackendClient) EnrollCourse(ctx context.Context, token, courseID string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.doJSON(ctx, "enroll_course", http.MethodPost, "/courses/"+url.PathEscape(courseID)+"/enroll", token, nil, &out)
	return out, err
}

func (c *BackendClient) GetProblem(ctx context.Context, token, problemID string) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.doJSON(ctx, "get_problem", http.MethodGet, "/problems/"+url.PathEscape(problemID), token, nil, &out)
	return out, err
}

func (c *BackendClient) SubmitProblem(ctx context.Context, token string, req SubmitProblemRequest) (*SubmitResult, error) {
	var out SubmitResult
	err := c.doJSON(ctx, "submit_problem", http.MethodPost, "/problems/"+url.PathEscape(req.ProblemID)+"/submit", token, req, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *BackendClient) UserProgress(ctx context.Context, token string) (json.RawMessage, error) {
	var out json.RawMessage
	if c.cacheGet(ctx, "progress", token, &out) {
		return out, nil
	}
	if err := c.doJSON(ctx, "user_progress", http.MethodGet, "/user/progress", token, nil, &out); err != nil {
		return nil, err
	}
	c.cacheSet(ctx, "progress", token, out)
	return out, nil
}

func (c *BackendClient) doJSON(ctx context.Context, op, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.send(req, op, out)
}

func (c *BackendClient) send(req *http.Request, op string, out interface{}) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		monitoring.BackendRequestCounter.WithLabelValues(op, "network_error").Inc()
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		monitoring.BackendRequestCounter.WithLabelValues(op, "upstream_error").Inc()
		apiErr := &APIError{Detail: "Unknown error", Status: resp.StatusCode}
		if err := json.NewDecoder(resp.Body).Decode(apiErr); err == nil && apiErr.Status == 0 {
			apiErr.Status = resp.StatusCode
		}
		return apiErr
	}

	monitoring.BackendRequestCounter.WithLabelValues(op, "ok").Inc()
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// cacheKey 缓存键里不放原始 token，只放哈希前缀
func cacheKey(kind, token string) string {
	sum := sha256.Sum256([]byte(token))
	return "backend:" + kind + ":" + hex.EncodeToString(sum[:8])
}

func (c *BackendClient) cacheGet(ctx context.Context, kind, token string, out interface{}) bool {
	if c.Redis == nil || c.CacheTTL <= 0 {
		return false
	}
	raw, err := c.Redis.Get(ctx, cacheKey(kind, token)).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func (c *BackendClient) cacheSet(ctx context.Context, kind, token string, value interface{}) {
	if c.Redis == nil || c.CacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	c.Redis.Set(ctx, cacheKey(kind, token), raw, c.CacheTTL)
}
