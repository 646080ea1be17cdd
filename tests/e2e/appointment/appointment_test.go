//go:build e2e

package appointment_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"
	"time"

	"barbershop-api/internal/domain/user"
	resdto "barbershop-api/internal/handler/dto/response"
	"barbershop-api/tests/common/authtest"
	"barbershop-api/tests/common/dbtest"
	"barbershop-api/tests/common/httptest"
	"barbershop-api/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const appointmentsURL = "/api/appointments"

type appointmentSuite struct {
	e2e.SharedSuite

	token     string
	barberID  uuid.UUID
	clientID  uuid.UUID
	serviceID uuid.UUID
	slotStart time.Time
}

func TestAppointmentSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(appointmentSuite))
}

func (s *appointmentSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "reception@example.com", string(user.RoleReceptionist))
	s.token = authtest.LoginUser(s.T(), s.Router, "reception@example.com", "password123")

	s.barberID = dbtest.CreateTestBarber(s.T(), s.DB, "Carlos", "haircut", "beard_trim")
	s.clientID = dbtest.CreateTestClient(s.T(), s.DB, "Martin", "martin@example.com")
	s.serviceID = dbtest.CreateTestService(s.T(), s.DB, "Classic Cut", 30, 1500, "haircut")

	// Barbers work Monday through Saturday, so book on the next Monday.
	s.slotStart = nextMonday(time.Now()).Add(10 * time.Hour)
}

// nextMonday returns midnight UTC of the first Monday strictly after t.
func nextMonday(t time.Time) time.Time {
	days := (int(time.Monday) - int(t.UTC().Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	day := t.UTC().AddDate(0, 0, days)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *appointmentSuite) createBody(start time.Time) map[string]any {
	return map[string]any{
		"barber_id":  s.barberID.String(),
		"client_id":  s.clientID.String(),
		"service_id": s.serviceID.String(),
		"start_time": start.Format(time.RFC3339),
	}
}

func (s *appointmentSuite) book(start time.Time) resdto.AppointmentResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, appointmentsURL, s.createBody(start), s.token)
	require.Equal(s.T(), http.StatusCreated, w.Code, w.Body.String())

	var created resdto.AppointmentResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &created))
	return created
}

func (s *appointmentSuite) transition(id uuid.UUID, action string, body any) *resdto.AppointmentResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		appointmentsURL+"/"+id.String()+"/"+action, body, s.token)
	require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

	var view resdto.AppointmentResponse
	require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &view))
	return &view
}

func (s *appointmentSuite) TestBookingLifecycle() {
	s.Run("booking runs through confirm, start and complete", func() {
		created := s.book(s.slotStart)
		require.Equal(s.T(), "pending", created.Status)
		require.Equal(s.T(), s.barberID, created.BarberID)
		require.Equal(s.T(), int64(1500), created.AmountCents)
		require.Equal(s.T(), s.slotStart, created.StartTime.UTC())
		require.Equal(s.T(), s.slotStart.Add(30*time.Minute), created.EndTime.UTC())

		view := s.transition(created.ID, "confirm", nil)
		require.Equal(s.T(), "confirmed", view.Status)

		view = s.transition(created.ID, "start", nil)
		require.Equal(s.T(), "in_progress", view.Status)
		require.NotNil(s.T(), view.StartedAt)

		view = s.transition(created.ID, "complete", map[string]any{"notes": "client happy"})
		require.Equal(s.T(), "completed", view.Status)
		require.NotNil(s.T(), view.CompletedAt)
		require.NotNil(s.T(), view.Notes)
		require.Equal(s.T(), "client happy", *view.Notes)

		// Completion feeds the client's visit history.
		var completed int32
		err := s.DB.QueryRow(s.T().Context(),
			"SELECT completed_appointments FROM clients WHERE id = $1", s.clientID).Scan(&completed)
		require.NoError(s.T(), err)
		require.Equal(s.T(), int32(1), completed)
	})

	s.Run("completion only checks status, not skill data", func() {
		created := s.book(s.slotStart)
		s.transition(created.ID, "confirm", nil)
		s.transition(created.ID, "start", nil)

		// Skill requirements changing after booking must not block completion.
		_, err := s.DB.Exec(s.T().Context(),
			"UPDATE services SET required_skills = '{coloring}' WHERE id = $1", s.serviceID)
		require.NoError(s.T(), err)

		view := s.transition(created.ID, "complete", nil)
		require.Equal(s.T(), "completed", view.Status)
	})

	s.Run("no-show is recorded from a confirmed booking", func() {
		created := s.book(s.slotStart)
		s.transition(created.ID, "confirm", nil)

		view := s.transition(created.ID, "no-show", nil)
		require.Equal(s.T(), "no_show", view.Status)
	})

	s.Run("cancellation returns no content and keeps the reason", func() {
		created := s.book(s.slotStart)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			appointmentsURL+"/"+created.ID.String()+"/cancel",
			map[string]any{"reason": "client travelling"}, s.token)
		require.Equal(s.T(), http.StatusNoContent, w.Code, w.Body.String())

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			appointmentsURL+"/"+created.ID.String(), nil, s.token)
		require.Equal(s.T(), http.StatusOK, w.Code)

		var view resdto.AppointmentResponse
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &view))
		require.Equal(s.T(), "cancelled", view.Status)
		require.NotNil(s.T(), view.CancelReason)
		require.Equal(s.T(), "client travelling", *view.CancelReason)
	})

	s.Run("completed bookings cannot be confirmed again", func() {
		created := s.book(s.slotStart)
		s.transition(created.ID, "confirm", nil)
		s.transition(created.ID, "start", nil)
		s.transition(created.ID, "complete", nil)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			appointmentsURL+"/"+created.ID.String()+"/confirm", nil, s.token)
		require.Equal(s.T(), http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})
}

func (s *appointmentSuite) TestSlotConflicts() {
	s.Run("overlapping slot is rejected with the conflicting booking", func() {
		created := s.book(s.slotStart)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, appointmentsURL,
			s.createBody(s.slotStart.Add(15*time.Minute)), s.token)
		require.Equal(s.T(), http.StatusConflict, w.Code, w.Body.String())

		var response map[string]any
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &response))
		require.Equal(s.T(), created.ID.String(), response["conflicting_id"])
	})

	s.Run("back to back slots do not conflict", func() {
		s.book(s.slotStart)
		s.book(s.slotStart.Add(30 * time.Minute))
	})

	s.Run("cancelled bookings free their slot", func() {
		created := s.book(s.slotStart)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			appointmentsURL+"/"+created.ID.String()+"/cancel", nil, s.token)
		require.Equal(s.T(), http.StatusNoContent, w.Code)

		s.book(s.slotStart)
	})

	s.Run("reschedule onto a taken slot is rejected", func() {
		blocking := s.book(s.slotStart)
		other := s.book(s.slotStart.Add(time.Hour))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			appointmentsURL+"/"+other.ID.String()+"/reschedule",
			map[string]any{"new_start_time": s.slotStart.Format(time.RFC3339)}, s.token)
		require.Equal(s.T(), http.StatusConflict, w.Code, w.Body.String())

		var response map[string]any
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &response))
		require.Equal(s.T(), blocking.ID.String(), response["conflicting_id"])
	})

	s.Run("reschedule to a free slot moves the booking", func() {
		created := s.book(s.slotStart)

		newStart := s.slotStart.Add(2 * time.Hour)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			appointmentsURL+"/"+created.ID.String()+"/reschedule",
			map[string]any{"new_start_time": newStart.Format(time.RFC3339)}, s.token)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var view resdto.AppointmentResponse
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &view))
		require.Equal(s.T(), newStart, view.StartTime.UTC())

		// The old slot is free again.
		s.book(s.slotStart)
	})
}

func (s *appointmentSuite) TestBookingValidation() {
	s.Run("unknown client", func() {
		body := s.createBody(s.slotStart)
		body["client_id"] = uuid.New().String()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, appointmentsURL, body, s.token)
		require.Equal(s.T(), http.StatusNotFound, w.Code, w.Body.String())
	})

	s.Run("barber without the required skill", func() {
		coloring := dbtest.CreateTestService(s.T(), s.DB, "Full Color", 60, 5000, "coloring")
		body := s.createBody(s.slotStart)
		body["service_id"] = coloring.String()

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, appointmentsURL, body, s.token)
		require.Equal(s.T(), http.StatusUnprocessableEntity, w.Code, w.Body.String())

		var response map[string]any
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &response))
		require.Contains(s.T(), response["missing_skills"], "coloring")
	})

	s.Run("slot outside working hours", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, appointmentsURL,
			s.createBody(s.slotStart.Add(12*time.Hour)), s.token) // 22:00
		require.Equal(s.T(), http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("sunday is a day off", func() {
		sunday := s.slotStart.AddDate(0, 0, 6)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, appointmentsURL,
			s.createBody(sunday), s.token)
		require.Equal(s.T(), http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("reschedule outside working hours is rejected", func() {
		created := s.book(s.slotStart)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			appointmentsURL+"/"+created.ID.String()+"/reschedule",
			map[string]any{"new_start_time": s.slotStart.Add(12 * time.Hour).Format(time.RFC3339)}, s.token) // 22:00
		require.Equal(s.T(), http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})

	s.Run("reschedule onto a day off is rejected", func() {
		created := s.book(s.slotStart)

		sunday := s.slotStart.AddDate(0, 0, 6)
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
			appointmentsURL+"/"+created.ID.String()+"/reschedule",
			map[string]any{"new_start_time": sunday.Format(time.RFC3339)}, s.token)
		require.Equal(s.T(), http.StatusUnprocessableEntity, w.Code, w.Body.String())
	})
}

func (s *appointmentSuite) TestConcurrentBooking() {
	s.Run("parallel requests for one slot yield a single booking", func() {
		payload, err := json.Marshal(s.createBody(s.slotStart))
		require.NoError(s.T(), err)

		const attempts = 2
		codes := make(chan int, attempts)
		var wg sync.WaitGroup
		for range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				req := nethttptest.NewRequest(http.MethodPost, appointmentsURL, bytes.NewReader(payload))
				req.Header.Set("Content-Type", "application/json")
				req.Header.Set("Authorization", "Bearer "+s.token)
				w := nethttptest.NewRecorder()
				s.Router.ServeHTTP(w, req)
				codes <- w.Code
			}()
		}
		wg.Wait()
		close(codes)

		counts := make(map[int]int)
		for code := range codes {
			counts[code]++
		}
		require.Equal(s.T(), 1, counts[http.StatusCreated], "status codes: %v", counts)
		require.Equal(s.T(), 1, counts[http.StatusConflict], "status codes: %v", counts)

		var booked int
		err = s.DB.QueryRow(s.T().Context(),
			"SELECT count(*) FROM appointments WHERE barber_id = $1", s.barberID).Scan(&booked)
		require.NoError(s.T(), err)
		require.Equal(s.T(), 1, booked)
	})
}

func (s *appointmentSuite) TestAvailability() {
	availabilityURL := func(date string) string {
		return "/api/barbers/" + s.barberID.String() + "/availability?date=" + date
	}

	s.Run("booking removes its slot from availability", func() {
		date := s.slotStart.Format("2006-01-02")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, availabilityURL(date), nil, s.token)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var before resdto.AvailabilityResponse
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &before))
		require.True(s.T(), containsSlot(before.FreeSlots, s.slotStart))

		s.book(s.slotStart)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, availabilityURL(date), nil, s.token)
		require.Equal(s.T(), http.StatusOK, w.Code)

		var after resdto.AvailabilityResponse
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &after))
		require.False(s.T(), containsSlot(after.FreeSlots, s.slotStart))
		require.Len(s.T(), after.FreeSlots, len(before.FreeSlots)-1)
	})

	s.Run("unknown barber", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/barbers/"+uuid.New().String()+"/availability?date=2026-03-02", nil, s.token)
		require.Equal(s.T(), http.StatusNotFound, w.Code, w.Body.String())
	})
}

func (s *appointmentSuite) TestListAppointments() {
	s.Run("client history hides finished visits by default", func() {
		first := s.book(s.slotStart)
		s.book(s.slotStart.Add(time.Hour))

		s.transition(first.ID, "confirm", nil)
		s.transition(first.ID, "start", nil)
		s.transition(first.ID, "complete", nil)

		listURL := "/api/clients/" + s.clientID.String() + "/appointments"

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, listURL, nil, s.token)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var visible []resdto.AppointmentListResponse
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &visible))
		require.Len(s.T(), visible, 1)
		require.Equal(s.T(), "pending", visible[0].Status)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, listURL+"?include_completed=true", nil, s.token)
		require.Equal(s.T(), http.StatusOK, w.Code)

		var all []resdto.AppointmentListResponse
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &all))
		require.Len(s.T(), all, 2)
	})

	s.Run("barber day sheet is ordered by start time", func() {
		s.book(s.slotStart.Add(time.Hour))
		s.book(s.slotStart)

		date := s.slotStart.Format("2006-01-02")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/barbers/"+s.barberID.String()+"/appointments?on="+date, nil, s.token)
		require.Equal(s.T(), http.StatusOK, w.Code, w.Body.String())

		var items []resdto.AppointmentListResponse
		require.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &items))
		require.Len(s.T(), items, 2)
		require.True(s.T(), items[0].StartTime.Before(items[1].StartTime))
	})
}

func containsSlot(slots []resdto.SlotResponse, start time.Time) bool {
	for _, slot := range slots {
		if slot.Start.UTC().Equal(start) {
			return true
		}
	}
	return false
}
