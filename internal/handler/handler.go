package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	apperrors "clinicportal/internal/errors"
	"clinicportal/internal/model"
	"clinicportal/internal/render"
	"clinicportal/internal/service"
)

// layout builds the shared page data and consumes the pending flash message.
func layout(c echo.Context, title string) render.Layout {
	l := render.Layout{
		Title: title,
		Flash: PopFlash(c),
		CSRF:  csrfToken(c),
	}
	if sess := CurrentSession(c); sess != nil {
		l.Role = sess.Role.String()
		l.LoggedIn = true
	}
	return l
}

func csrfToken(c echo.Context) string {
	token, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
	return token
}

func redirect(c echo.Context, to string) error {
	return c.Redirect(http.StatusSeeOther, to)
}

// fail shows err to the user on the page at to. An expired session also drops the
// session cookie and goes back to the landing page.
func fail(c echo.Context, err error, to string) error {
	if errors.Is(err, apperrors.ErrSessionExpired) {
		clearSessionCookie(c)
		to = "/"
	}
	if apperrors.MapErrorToHTTP(err).StatusCode >= http.StatusInternalServerError {
		log.Printf("%s %s: %v", c.Request().Method, c.Path(), err)
	}
	SetFlash(c, model.FlashError, apperrors.UserMessage(err))
	return redirect(c, to)
}

func jsonError(err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// doctorFilter reads the doctor filter from the query. The second result reports
// whether the filter form was submitted at all.
func doctorFilter(c echo.Context) (service.DoctorFilter, bool) {
	q := c.QueryParams()
	_, name := q["name"]
	_, time := q["time"]
	_, specialty := q["specialty"]
	return service.DoctorFilter{
		Name:      q.Get("name"),
		Time:      q.Get("time"),
		Specialty: q.Get("specialty"),
	}, name || time || specialty
}

func listDoctors(c echo.Context, doctors service.DoctorService) (service.DoctorFilter, service.DoctorListing) {
	filter, submitted := doctorFilter(c)
	if submitted {
		return filter, doctors.Filter(c.Request().Context(), filter)
	}
	return filter, doctors.List(c.Request().Context())
}

func filterForm(f service.DoctorFilter) render.FilterForm {
	return render.FilterForm{Name: f.Name, Time: f.Time, Specialty: f.Specialty}
}
