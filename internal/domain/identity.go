package domain

// Identity — подтверждённая личность пользователя.
// Живёт только в рамках одного запроса; нигде не кэшируется и не сохраняется.
type Identity struct {
	UserID string
}
