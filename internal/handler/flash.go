package handler

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"clinicportal/internal/model"
)

const (
	flashCookie = "flash"
	flashMaxAge = 60
)

// SetFlash queues a message for the next rendered page. Call it before redirecting.
func SetFlash(c echo.Context, level model.FlashLevel, message string) {
	payload, err := json.Marshal(model.Flash{Level: level, Message: message})
	if err != nil {
		return
	}
	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		MaxAge:   flashMaxAge,
		HttpOnly: true,
		Secure:   c.IsTLS(),
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlash returns the queued message, if any, and clears it.
func PopFlash(c echo.Context) *model.Flash {
	cookie, err := c.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	payload, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var flash model.Flash
	if err := json.Unmarshal(payload, &flash); err != nil || flash.Message == "" {
		return nil
	}
	return &flash
}
