package booking

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/booking-portal/internal/booking"
	"github.com/jwalitptl/booking-portal/internal/model"
	"github.com/jwalitptl/booking-portal/internal/schedule"
	"github.com/jwalitptl/booking-portal/internal/view"
)

// defaultWindowDays is the availability window shown when the caller gives
// no date bounds.
const defaultWindowDays = 14

// API is the slice of the booking client the patient pages need.
type API interface {
	Providers(ctx context.Context) ([]model.Provider, error)
	Availability(ctx context.Context, providerID, startDate, endDate string) (*booking.AvailabilityResult, error)
	CreateAppointment(ctx context.Context, req *model.BookingRequest) (*model.Appointment, error)
}

type Handler struct {
	api API
}

func NewHandler(api API) *Handler {
	return &Handler{api: api}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.Index)
	rg.GET("/providers/:id/availability", h.Availability)
	rg.POST("/appointments", h.CreateAppointment)
}

// Index renders the provider directory.
func (h *Handler) Index(c *gin.Context) {
	providers, err := h.api.Providers(c.Request.Context())
	if err != nil {
		renderError(c, err, "/")
		return
	}

	c.HTML(http.StatusOK, "providers.tmpl", gin.H{
		"Title":     "Book an appointment",
		"Providers": providers,
	})
}

// Availability renders the slot picker for one provider. Which slot is
// selected travels in the "selected" query parameter; the page itself keeps
// no state.
func (h *Handler) Availability(c *gin.Context) {
	providerID := c.Param("id")

	startDate := c.Query("start_date")
	if startDate == "" {
		startDate = time.Now().Format(schedule.DateKeyLayout)
	}
	endDate := c.Query("end_date")
	if endDate == "" {
		endDate = time.Now().AddDate(0, 0, defaultWindowDays-1).Format(schedule.DateKeyLayout)
	}

	result, err := h.api.Availability(c.Request.Context(), providerID, startDate, endDate)
	if err != nil {
		renderError(c, err, "/")
		return
	}

	selected := c.Query("selected")
	c.HTML(http.StatusOK, "availability.tmpl", gin.H{
		"Title":      "Pick a time with " + result.Provider.Name,
		"Provider":   result.Provider,
		"Picker":     view.BuildSlotPicker(result.Slots, selected),
		"SelectedID": selected,
		"StartDate":  startDate,
		"EndDate":    endDate,
	})
}

// CreateAppointment handles the booking form submission and renders the
// confirmation page.
func (h *Handler) CreateAppointment(c *gin.Context) {
	var form model.BookingForm
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "error.tmpl", gin.H{
			"Title":   "Invalid booking request",
			"Message": err.Error(),
			"BackURL": "/",
		})
		return
	}

	appt, err := h.api.CreateAppointment(c.Request.Context(), form.Request())
	if err != nil {
		backURL := fmt.Sprintf("/providers/%s/availability?start_date=%s&end_date=%s",
			form.ProviderID, form.StartDate, form.EndDate)
		renderError(c, err, backURL)
		return
	}

	c.HTML(http.StatusCreated, "confirmation.tmpl", gin.H{
		"Title":       "Appointment booked",
		"Appointment": appt,
		"Day":         view.DayHeader(appt.Slot.StartTime.Time),
		"Starts":      view.Clock(appt.Slot.StartTime.Time),
		"Ends":        view.Clock(appt.Slot.EndTime.Time),
	})
}

// renderError shows the backend's own message for rejected requests and a
// generic one for transport failures.
func renderError(c *gin.Context, err error, backURL string) {
	message := "booking service unavailable"
	var reqErr *booking.RequestError
	if errors.As(err, &reqErr) {
		message = reqErr.Message
	}

	c.HTML(http.StatusBadGateway, "error.tmpl", gin.H{
		"Title":   "Something went wrong",
		"Message": message,
		"BackURL": backURL,
	})
}
