package booking_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "github.com/jwalitptl/booking-portal/internal/booking"
	handler "github.com/jwalitptl/booking-portal/internal/handler/booking"
	"github.com/jwalitptl/booking-portal/internal/model"
)

type fakeAPI struct {
	providers    []model.Provider
	availability *api.AvailabilityResult
	appointment  *model.Appointment
	err          error

	lastRequest *model.BookingRequest
}

func (f *fakeAPI) Providers(ctx context.Context) ([]model.Provider, error) {
	return f.providers, f.err
}

func (f *fakeAPI) Availability(ctx context.Context, providerID, startDate, endDate string) (*api.AvailabilityResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.availability, nil
}

func (f *fakeAPI) CreateAppointment(ctx context.Context, req *model.BookingRequest) (*model.Appointment, error) {
	f.lastRequest = req
	if f.err != nil {
		return nil, f.err
	}
	return f.appointment, nil
}

func mustTime(t *testing.T, s string) model.Time {
	t.Helper()
	parsed, err := model.ParseTime(s)
	require.NoError(t, err)
	return model.Time{Time: parsed}
}

func newRouter(t *testing.T, fake *fakeAPI) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.LoadHTMLGlob("../../../web/templates/*.tmpl")
	handler.NewHandler(fake).RegisterRoutes(r.Group("/"))
	return r
}

func get(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func postForm(r *gin.Engine, target string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func TestIndexListsProviders(t *testing.T) {
	fake := &fakeAPI{providers: []model.Provider{
		{ID: "p1", Name: "Dr. Smith", Specialty: "Cardiology"},
		{ID: "p2", Name: "Dr. Jones", Specialty: "Dermatology"},
	}}

	w := get(newRouter(t, fake), "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Dr. Smith")
	assert.Contains(t, w.Body.String(), "Dr. Jones")
	assert.Contains(t, w.Body.String(), "/providers/p1/availability")
}

func TestIndexBackendDown(t *testing.T) {
	fake := &fakeAPI{err: &api.RequestError{
		Op:         "providers",
		StatusCode: http.StatusInternalServerError,
		Message:    "failed to fetch providers",
	}}

	w := get(newRouter(t, fake), "/")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "failed to fetch providers")
}

func TestAvailabilityRendersPicker(t *testing.T) {
	fake := &fakeAPI{availability: &api.AvailabilityResult{
		Provider: model.Provider{ID: "p1", Name: "Dr. Smith", Specialty: "Cardiology"},
		Slots: []model.TimeSlot{
			{ID: "s1", StartTime: mustTime(t, "2024-03-01T09:00:00Z"), EndTime: mustTime(t, "2024-03-01T09:30:00Z"), Available: true},
			{ID: "s2", StartTime: mustTime(t, "2024-03-01T10:00:00Z"), EndTime: mustTime(t, "2024-03-01T10:30:00Z"), Available: false},
		},
	}}

	w := get(newRouter(t, fake), "/providers/p1/availability?start_date=2024-03-01&end_date=2024-03-14")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Friday, March 1, 2024")
	assert.Contains(t, body, "9:00 AM")
	assert.Contains(t, body, `<span class="slot disabled">10:00 AM</span>`)
	// No slot picked yet, so no booking form.
	assert.NotContains(t, body, "Your details")
}

func TestAvailabilitySelectedSlot(t *testing.T) {
	fake := &fakeAPI{availability: &api.AvailabilityResult{
		Provider: model.Provider{ID: "p1", Name: "Dr. Smith"},
		Slots: []model.TimeSlot{
			{ID: "s1", StartTime: mustTime(t, "2024-03-01T09:00:00Z"), EndTime: mustTime(t, "2024-03-01T09:30:00Z"), Available: true},
		},
	}}

	w := get(newRouter(t, fake), "/providers/p1/availability?start_date=2024-03-01&end_date=2024-03-14&selected=s1")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<span class="slot selected">9:00 AM</span>`)
	assert.Contains(t, body, "Your details")
	assert.Contains(t, body, `value="s1"`)
}

func bookingForm() url.Values {
	return url.Values{
		"slot_id":     {"s1"},
		"provider_id": {"p1"},
		"first_name":  {"Ada"},
		"last_name":   {"Lovelace"},
		"email":       {"ada@example.com"},
		"phone":       {"555-0100"},
		"reason":      {"annual checkup"},
	}
}

func TestCreateAppointment(t *testing.T) {
	fake := &fakeAPI{appointment: &model.Appointment{
		ID:              "a1",
		ReferenceNumber: "APT-1234",
		Status:          "confirmed",
		Slot: model.AppointmentSlot{
			StartTime: mustTime(t, "2024-03-01T09:00:00Z"),
			EndTime:   mustTime(t, "2024-03-01T09:30:00Z"),
		},
		Provider: model.Provider{ID: "p1", Name: "Dr. Smith"},
		Patient:  model.PatientInfo{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Phone: "555-0100"},
		Reason:   "annual checkup",
	}}

	w := postForm(newRouter(t, fake), "/appointments", bookingForm())

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "APT-1234")
	assert.Contains(t, w.Body.String(), "Friday, March 1, 2024")

	require.NotNil(t, fake.lastRequest)
	assert.Equal(t, "s1", fake.lastRequest.SlotID)
	assert.Equal(t, "Ada", fake.lastRequest.Patient.FirstName)
	assert.Equal(t, "annual checkup", fake.lastRequest.Reason)
}

func TestCreateAppointmentConflict(t *testing.T) {
	fake := &fakeAPI{err: &api.RequestError{
		Op:         "create_appointment",
		StatusCode: http.StatusConflict,
		Message:    "Slot no longer available",
	}}

	w := postForm(newRouter(t, fake), "/appointments", bookingForm())

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Slot no longer available")
}

func TestCreateAppointmentMissingEmail(t *testing.T) {
	form := bookingForm()
	form.Del("email")

	fake := &fakeAPI{}
	w := postForm(newRouter(t, fake), "/appointments", form)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, fake.lastRequest)
}
