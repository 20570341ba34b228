package httpx

import "github.com/gin-gonic/gin"

// SessionToken — достаёт сессионный токен из куки.
// Отсутствующая кука равнозначна пустому токену: решение об отказе
// принимает верификатор, а не транспорт.
func SessionToken(c *gin.Context, cookieName string) string {
	token, err := c.Cookie(cookieName)
	if err != nil {
		return ""
	}
	return token
}
