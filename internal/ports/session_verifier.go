package ports

import (
	"context"

	"github.com/Gunvolt24/storefront_api/internal/domain"
)

// SessionVerifier — превращает опаковый сессионный токен в личность пользователя.
// Пустой токен отклоняется сразу, без обращения к провайдеру.
// Любой провал верификации возвращается как apperr.ErrUnauthorized —
// причина снаружи неразличима.
type SessionVerifier interface {
	Verify(ctx context.Context, sessionToken string) (domain.Identity, error)
}
