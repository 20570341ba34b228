// Пакет auth — проверка сессионного токена через внешнего провайдера
// идентификации. Токен для нас опаковый: внутрь не заглядываем,
// передаём провайдеру как есть.
package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ProviderClient — HTTP-клиент провайдера идентификации.
// Создаётся один раз при старте процесса и живёт до его завершения;
// закрывать нечего, соединениями управляет http.Client.
type ProviderClient struct {
	baseURL string
	client  *http.Client
}

// NewProviderClient — конструктор. timeout <= 0 — значение по умолчанию.
func NewProviderClient(baseURL string, timeout time.Duration) *ProviderClient {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &ProviderClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// verifyRequest/verifyResponse — тело обмена с провайдером.
// CheckRevoked всегда true: сессия отозванного аккаунта должна отклоняться,
// даже если подпись токена всё ещё валидна.
type verifyRequest struct {
	SessionToken string `json:"session_token"`
	CheckRevoked bool   `json:"check_revoked"`
}

type verifyResponse struct {
	UserID string `json:"user_id"`
}

// VerifySession — передаёт токен провайдеру и возвращает user_id субъекта.
// Любой не-200 ответ и любая транспортная ошибка возвращаются как ошибка;
// различать причины — задача вызывающего (который их и не различает).
func (p *ProviderClient) VerifySession(ctx context.Context, sessionToken string) (string, error) {
	body, err := json.Marshal(verifyRequest{SessionToken: sessionToken, CheckRevoked: true})
	if err != nil {
		return "", fmt.Errorf("marshal verify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/v1/sessions/verify", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build verify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("identity provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// тело не читаем в ошибку, чтобы детали провайдера не утекали дальше по логам
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4*1024))
		return "", fmt.Errorf("identity provider: status %d", resp.StatusCode)
	}

	var vr verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&vr); err != nil {
		return "", fmt.Errorf("decode verify response: %w", err)
	}
	if vr.UserID == "" {
		return "", fmt.Errorf("identity provider: empty user_id")
	}
	return vr.UserID, nil
}
