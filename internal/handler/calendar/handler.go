package calendar

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/booking-portal/internal/booking"
	"github.com/jwalitptl/booking-portal/internal/model"
	"github.com/jwalitptl/booking-portal/internal/schedule"
	"github.com/jwalitptl/booking-portal/internal/view"
)

const monthLayout = "2006-01"

// API is the slice of the booking client the calendar page needs.
type API interface {
	ProviderAppointments(ctx context.Context, providerID, startDate, endDate string) (json.RawMessage, error)
}

type Handler struct {
	api API
	now func() time.Time
}

func NewHandler(api API) *Handler {
	return &Handler{api: api, now: time.Now}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/providers/:id/calendar", h.Calendar)
}

// Calendar renders a provider's month view. The month and the selected day
// travel as query parameters; the selected day defaults to today.
func (h *Handler) Calendar(c *gin.Context) {
	providerID := c.Param("id")

	selected := h.now()
	if date := c.Query("date"); date != "" {
		if parsed, err := time.ParseInLocation(schedule.DateKeyLayout, date, selected.Location()); err == nil {
			selected = parsed
		}
	}

	year, month := selected.Year(), selected.Month()
	if m := c.Query("month"); m != "" {
		if parsed, err := time.ParseInLocation(monthLayout, m, selected.Location()); err == nil {
			year, month = parsed.Year(), parsed.Month()
		}
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, selected.Location())
	last := first.AddDate(0, 1, -1)

	raw, err := h.api.ProviderAppointments(
		c.Request.Context(),
		providerID,
		first.Format(schedule.DateKeyLayout),
		last.Format(schedule.DateKeyLayout),
	)
	if err != nil {
		message := "booking service unavailable"
		var reqErr *booking.RequestError
		if errors.As(err, &reqErr) {
			message = reqErr.Message
		}
		c.HTML(http.StatusBadGateway, "error.tmpl", gin.H{
			"Title":   "Something went wrong",
			"Message": message,
			"BackURL": "/",
		})
		return
	}

	// The appointments endpoint has no pinned contract yet; re-type its
	// payload here at the page edge.
	var appts []model.CalendarAppointment
	if err := json.Unmarshal(raw, &appts); err != nil {
		c.HTML(http.StatusBadGateway, "error.tmpl", gin.H{
			"Title":   "Something went wrong",
			"Message": "unexpected appointments payload",
			"BackURL": "/",
		})
		return
	}

	prev := first.AddDate(0, -1, 0)
	next := first.AddDate(0, 1, 0)

	c.HTML(http.StatusOK, "calendar.tmpl", gin.H{
		"Title":      "Calendar View",
		"ProviderID": providerID,
		"Calendar":   view.BuildCalendar(appts, year, month, selected),
		"PrevMonth":  prev.Format(monthLayout),
		"NextMonth":  next.Format(monthLayout),
	})
}
