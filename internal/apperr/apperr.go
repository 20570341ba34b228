// Пакет apperr — единая точка классификации ошибок для HTTP-слоя.
// Прикладные ошибки несут пару {message, status} и проходят наружу как есть;
// всё остальное сворачивается в 500 без деталей (детали — только в лог).
package apperr

import (
	"errors"
	"net/http"
)

// Error — прикладная (намеренная) ошибка с HTTP-статусом.
type Error struct {
	Message string
	Status  int
}

func (e *Error) Error() string { return e.Message }

// New — конструктор прикладной ошибки.
func New(message string, status int) *Error {
	return &Error{Message: message, Status: status}
}

// ErrUnauthorized — единый ответ на любой провал аутентификации.
// Причина (нет куки, подпись, истечение, отзыв, недоступность провайдера)
// наружу не выдаётся.
var ErrUnauthorized = New("Unauthorized", http.StatusUnauthorized)

// ErrOrderNotFound — заказ не существует либо принадлежит другому пользователю;
// эти случаи неотличимы снаружи.
var ErrOrderNotFound = New("order not found", http.StatusNotFound)

// internalMessage — фиксированный текст для неклассифицированных ошибок.
const internalMessage = "Internal Server Error"

// Classify — сворачивает произвольную ошибку в пару {message, status}.
// Прикладная ошибка в цепочке (errors.As) проходит без изменений,
// любая другая — (500, "Internal Server Error"). Идемпотентна.
func Classify(err error) (string, int) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message, appErr.Status
	}
	return internalMessage, http.StatusInternalServerError
}
