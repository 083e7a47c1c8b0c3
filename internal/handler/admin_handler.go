package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "clinicportal/internal/errors"
	"clinicportal/internal/model"
	"clinicportal/internal/render"
	"clinicportal/internal/service"
)

// AdminHandler serves the admin's doctor management pages.
type AdminHandler struct {
	doctors service.DoctorService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(doctors service.DoctorService) *AdminHandler {
	return &AdminHandler{doctors: doctors}
}

// Dashboard renders every doctor, or the filtered set when the filter form was
// submitted, each card with a delete button.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	filter, listing := listDoctors(c, h.doctors)
	page := render.AdminDashboardPage{
		Layout:      layout(c, "Admin Dashboard"),
		Filter:      filterForm(filter),
		Times:       render.TimeOptions,
		Specialties: render.SpecialtyOptions,
	}
	page.Doctors = render.Listing(listing.Doctors, model.RoleAdmin, listing.Filtered, page.CSRF)
	return c.Render(http.StatusOK, "admin_dashboard", page)
}

// Cards renders only the card list, for refreshing the content area in place.
func (h *AdminHandler) Cards(c echo.Context) error {
	_, listing := listDoctors(c, h.doctors)
	view := render.Listing(listing.Doctors, model.RoleAdmin, listing.Filtered, csrfToken(c))
	return c.Render(http.StatusOK, "doctor_cards", view)
}

// AddDoctor forwards the add-doctor form as typed and reloads the full listing. The
// backend decides which fields it accepts.
func (h *AdminHandler) AddDoctor(c echo.Context) error {
	var form service.DoctorForm
	if err := c.Bind(&form); err != nil {
		return fail(c, apperrors.ErrInvalidInput, "/admin")
	}

	msg, err := h.doctors.Add(c.Request().Context(), CurrentSession(c), form)
	if err != nil {
		return fail(c, err, "/admin")
	}
	SetFlash(c, model.FlashInfo, msg)
	return redirect(c, "/admin")
}

// DeleteDoctor removes one doctor and returns to the listing.
func (h *AdminHandler) DeleteDoctor(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return fail(c, apperrors.ErrInvalidInput, "/admin")
	}

	msg, err := h.doctors.Delete(c.Request().Context(), CurrentSession(c), id)
	if err != nil {
		return fail(c, err, "/admin")
	}
	SetFlash(c, model.FlashInfo, msg)
	return redirect(c, "/admin")
}
