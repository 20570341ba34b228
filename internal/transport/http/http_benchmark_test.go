//go:build !integration

package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/Gunvolt24/storefront_api/internal/domain"
	"github.com/gin-gonic/gin"
)

// стаб-сервис с заранее подготовленными сводками
type svcList struct {
	list []domain.OrderSummary
}

func (s svcList) MyOrders(context.Context, string) ([]domain.OrderSummary, error) {
	return s.list, nil
}

func (s svcList) MyOrder(context.Context, string, string) (*domain.Order, error) {
	return nil, nil
}

// стаб-верификатор: любой токен принимается
type okVerifier struct{}

func (okVerifier) Verify(context.Context, string) (domain.Identity, error) {
	return domain.Identity{UserID: "bench-user"}, nil
}

func benchServeGET(b *testing.B, r *gin.Engine, path string) {
	b.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.AddCookie(&http.Cookie{Name: "session", Value: "tok"})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
	}
}

// Рост списка сводок: 10/50/100 — аллокации и время сериализации
func BenchmarkHTTP_ListOrders(b *testing.B) {
	gin.SetMode(gin.ReleaseMode)

	for _, n := range []int{10, 50, 100} {
		b.Run("N="+strconv.Itoa(n), func(b *testing.B) {
			list := make([]domain.OrderSummary, 0, n)
			for i := 0; i < n; i++ {
				list = append(list, domain.OrderSummary{
					OrderID:    "ord-" + strconv.Itoa(i),
					OrderDate:  "5 March 2024",
					OrderTotal: int64(100 + i),
				})
			}
			h := NewHandler(svcList{list: list}, okVerifier{}, nopLogger{}, "session")
			benchServeGET(b, NewRouter(h, ""), "/orders")
		})
	}
}

// Ошибочный путь: "цена" роутера на несуществующем маршруте
func BenchmarkHTTP_404(b *testing.B) {
	gin.SetMode(gin.ReleaseMode)

	h := NewHandler(svcList{}, okVerifier{}, nopLogger{}, "session")
	benchServeGET(b, NewRouter(h, ""), "/no-such-route")
}
