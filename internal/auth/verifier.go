package auth

import (
	"context"

	"github.com/Gunvolt24/storefront_api/internal/apperr"
	"github.com/Gunvolt24/storefront_api/internal/domain"
	"github.com/Gunvolt24/storefront_api/internal/ports"
	"github.com/Gunvolt24/storefront_api/pkg/metrics"
)

// Проверка, что Verifier удовлетворяет интерфейсу ports.SessionVerifier.
var _ ports.SessionVerifier = (*Verifier)(nil)

// identityProvider — минимальный контракт провайдера,
// чтобы подменять его в тестах без реального HTTP.
type identityProvider interface {
	VerifySession(ctx context.Context, sessionToken string) (string, error)
}

// Verifier — верификация сессионного токена.
// Инвариант: наружу уходит либо личность, либо apperr.ErrUnauthorized —
// все причины отказа (пустой/битый/истёкший/отозванный токен, недоступный
// провайдер) снаружи неразличимы. Причина пишется только в лог.
type Verifier struct {
	provider identityProvider
	log      ports.Logger
}

// NewVerifier — конструктор.
func NewVerifier(provider identityProvider, log ports.Logger) *Verifier {
	return &Verifier{provider: provider, log: log}
}

// Verify — превращает токен в личность пользователя.
// Пустой токен отклоняется сразу, без похода к провайдеру:
// пустой креденшал не бывает валидным.
func (v *Verifier) Verify(ctx context.Context, sessionToken string) (domain.Identity, error) {
	if sessionToken == "" {
		metrics.AuthVerifications.WithLabelValues("rejected").Inc()
		return domain.Identity{}, apperr.ErrUnauthorized
	}

	userID, err := v.provider.VerifySession(ctx, sessionToken)
	if err != nil {
		metrics.AuthVerifications.WithLabelValues("rejected").Inc()
		v.log.Warnf(ctx, "session verification failed: %v", err)
		return domain.Identity{}, apperr.ErrUnauthorized
	}

	metrics.AuthVerifications.WithLabelValues("ok").Inc()
	return domain.Identity{UserID: userID}, nil
}
