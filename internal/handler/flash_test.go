package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinicportal/internal/model"
)

func TestFlashRoundTrip(t *testing.T) {
	e := echo.New()

	rec := httptest.NewRecorder()
	SetFlash(e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec), model.FlashError, "Invalid admin credentials.")
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	flash := PopFlash(e.NewContext(req, rec))

	require.NotNil(t, flash)
	assert.Equal(t, model.FlashError, flash.Level)
	assert.Equal(t, "Invalid admin credentials.", flash.Message)

	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, flashCookie, cleared[0].Name)
	assert.Negative(t, cleared[0].MaxAge)
}

func TestPopFlashIgnoresGarbage(t *testing.T) {
	e := echo.New()
	for _, value := range []string{"", "%%%", "bm90IGpzb24"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: flashCookie, Value: value})
		assert.Nil(t, PopFlash(e.NewContext(req, httptest.NewRecorder())), value)
	}
}

func TestDashboardPath(t *testing.T) {
	assert.Equal(t, "/admin", DashboardPath(model.RoleAdmin))
	assert.Equal(t, "/doctor", DashboardPath(model.RoleDoctor))
	assert.Equal(t, "/patient", DashboardPath(model.RoleLoggedPatient))
	assert.Equal(t, "/", DashboardPath(model.Role(0)))
}
