//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"barbershop-api/internal/domain/appointment"
	"barbershop-api/internal/domain/barber"
	"barbershop-api/internal/handler/api"
	resdto "barbershop-api/internal/handler/dto/response"
	"barbershop-api/internal/usecase/commands"
	"barbershop-api/internal/usecase/queries"
	"barbershop-api/tests/common/builder"
	"barbershop-api/tests/common/httptest"
	"barbershop-api/tests/common/testutil"
	commandsmock "barbershop-api/tests/mock/commands"
	queriesmock "barbershop-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockAppointmentCommands
	mockQueries      *queriesmock.MockAppointmentQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
	handler          *api.AppointmentHandler
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAppointmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	s.handler = api.NewAppointmentHandler(s.mockCommands, s.mockQueries, s.mockAvailability)

	s.router.POST("/appointments", s.handler.CreateAppointment)
	s.router.GET("/appointments/:id", s.handler.GetAppointment)
	s.router.POST("/appointments/:id/confirm", s.handler.ConfirmAppointment)
	s.router.POST("/appointments/:id/start", s.handler.StartAppointment)
	s.router.POST("/appointments/:id/complete", s.handler.CompleteAppointment)
	s.router.POST("/appointments/:id/cancel", s.handler.CancelAppointment)
	s.router.POST("/appointments/:id/no-show", s.handler.MarkNoShow)
	s.router.POST("/appointments/:id/reschedule", s.handler.RescheduleAppointment)
	s.router.GET("/clients/:id/appointments", s.handler.ListClientAppointments)
	s.router.GET("/barbers/:id/appointments", s.handler.ListBarberAppointments)
	s.router.GET("/barbers/:id/availability", s.handler.GetBarberAvailability)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

func createBody() map[string]any {
	return map[string]any{
		"barber_id":  uuid.New().String(),
		"client_id":  uuid.New().String(),
		"service_id": uuid.New().String(),
		"start_time": "2026-03-02T10:00:00Z",
	}
}

func (s *AppointmentHandlerTestSuite) TestCreateAppointment() {
	url := "/appointments"
	view := builder.NewAppointmentBuilder().BuildView()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().CreateAppointment(gomock.Any(), gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createBody(), "")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("pending", response.Status)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing barber_id", mutate: testutil.Field("barber_id", nil)},
			{name: "missing client_id", mutate: testutil.Field("client_id", nil)},
			{name: "missing service_id", mutate: testutil.Field("service_id", nil)},
			{name: "missing start_time", mutate: testutil.Field("start_time", nil)},
			{name: "malformed barber_id", mutate: testutil.Field("barber_id", "not-a-uuid")},
			{name: "malformed start_time", mutate: testutil.Field("start_time", "02-03-2026")},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), createBody(), tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps command errors to proper statuses", func() {
		conflictID := uuid.New()
		cases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown barber",
				commandsError:  commands.ErrBarberNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Barber not found",
			},
			{
				name:           "unknown client",
				commandsError:  commands.ErrClientNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Client not found",
			},
			{
				name:           "unknown service",
				commandsError:  commands.ErrServiceNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Service not found",
			},
			{
				name: "slot conflict",
				commandsError: &commands.SchedulingConflictError{
					ConflictingID: conflictID,
				},
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Slot conflicts",
			},
			{
				name: "skill mismatch",
				commandsError: &commands.SkillMismatchError{
					BarberID: uuid.New(),
					Missing:  []barber.Specialty{"coloring"},
				},
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "lacks required skills",
			},
			{
				name:           "inactive barber",
				commandsError:  commands.ErrBarberInactive,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "not taking appointments",
			},
			{
				name:           "blocked client",
				commandsError:  commands.ErrClientInactive,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "cannot book",
			},
			{
				name:           "inactive service",
				commandsError:  commands.ErrServiceUnavailable,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "not offered",
			},
			{
				name:           "outside working hours",
				commandsError:  commands.ErrOutsideWorkingHours,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "working hours",
			},
			{
				name:           "invalid slot",
				commandsError:  appointment.ErrInvalidSlot,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid time slot",
			},
			{
				name:           "internal error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateAppointment(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, createBody(), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *AppointmentHandlerTestSuite) TestGetAppointment() {
	view := builder.NewAppointmentBuilder().BuildView()

	s.Run("success: returns the appointment", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/"+view.ID.String(), nil, "")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: 404 for unknown appointment", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, queries.ErrAppointmentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})

	s.Run("error: 400 for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ID format")
	})
}

func (s *AppointmentHandlerTestSuite) TestLifecycleTransitions() {
	id := uuid.New()

	s.Run("confirm returns the updated view", func() {
		view := builder.NewAppointmentBuilder().WithID(id).WithStatus("confirmed").BuildView()
		s.mockCommands.EXPECT().ConfirmAppointment(gomock.Any(), id).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments/"+id.String()+"/confirm", nil, "")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("confirmed", response.Status)
	})

	s.Run("start returns the updated view", func() {
		view := builder.NewAppointmentBuilder().WithID(id).WithStatus("in_progress").BuildView()
		s.mockCommands.EXPECT().StartAppointment(gomock.Any(), id).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments/"+id.String()+"/start", nil, "")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("in_progress", response.Status)
	})

	s.Run("complete forwards optional notes", func() {
		view := builder.NewAppointmentBuilder().WithID(id).WithStatus("completed").BuildView()
		notes := "trimmed beard as well"
		s.mockCommands.EXPECT().CompleteAppointment(gomock.Any(), id, &notes).Return(view, nil).Times(1)

		body := map[string]any{"notes": notes}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments/"+id.String()+"/complete", body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("complete without body sends nil notes", func() {
		view := builder.NewAppointmentBuilder().WithID(id).WithStatus("completed").BuildView()
		s.mockCommands.EXPECT().CompleteAppointment(gomock.Any(), id, nil).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments/"+id.String()+"/complete", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("cancel returns 204", func() {
		reason := "client travelling"
		s.mockCommands.EXPECT().CancelAppointment(gomock.Any(), id, &reason).Return(nil).Times(1)

		body := map[string]any{"reason": reason}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments/"+id.String()+"/cancel", body, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("no-show returns the updated view", func() {
		view := builder.NewAppointmentBuilder().WithID(id).WithStatus("no_show").BuildView()
		s.mockCommands.EXPECT().MarkNoShow(gomock.Any(), id).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments/"+id.String()+"/no-show", nil, "")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("no_show", response.Status)
	})

	s.Run("error: invalid transition maps to 422 with source status", func() {
		s.mockCommands.EXPECT().ConfirmAppointment(gomock.Any(), id).
			Return(nil, &appointment.InvalidTransitionError{From: appointment.StatusCompleted, Operation: "confirm"}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments/"+id.String()+"/confirm", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Invalid state transition from completed")
	})

	s.Run("error: concurrent modification maps to 409", func() {
		s.mockCommands.EXPECT().ConfirmAppointment(gomock.Any(), id).
			Return(nil, commands.ErrConcurrencyConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments/"+id.String()+"/confirm", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "modified concurrently")
	})
}

func (s *AppointmentHandlerTestSuite) TestRescheduleAppointment() {
	id := uuid.New()
	url := "/appointments/" + id.String() + "/reschedule"

	s.Run("success: moves the slot", func() {
		newStart := time.Date(2026, 3, 3, 14, 0, 0, 0, time.UTC)
		view := builder.NewAppointmentBuilder().WithID(id).WithSlot(newStart, newStart.Add(30*time.Minute)).BuildView()

		s.mockCommands.EXPECT().
			RescheduleAppointment(gomock.Any(), commands.RescheduleRequest{AppointmentID: id, NewStartTime: newStart}).
			Return(view, nil).Times(1)

		body := map[string]any{"new_start_time": "2026-03-03T14:00:00Z"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(newStart, response.StartTime.UTC())
	})

	s.Run("error: missing new_start_time", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: conflict on target slot", func() {
		s.mockCommands.EXPECT().RescheduleAppointment(gomock.Any(), gomock.Any()).
			Return(nil, &commands.SchedulingConflictError{ConflictingID: uuid.New()}).Times(1)

		body := map[string]any{"new_start_time": "2026-03-03T14:00:00Z"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Slot conflicts")
	})
}

func (s *AppointmentHandlerTestSuite) TestListAppointments() {
	clientID := uuid.New()
	barberID := uuid.New()

	s.Run("client listing passes filters through", func() {
		s.mockQueries.EXPECT().
			ListByClient(gomock.Any(), clientID, gomock.Any()).
			DoAndReturn(func(_ any, _ uuid.UUID, filter queries.ListFilter) ([]*queries.AppointmentListItem, error) {
				s.True(filter.IncludeCompleted)
				s.False(filter.IncludeCancelled)
				s.NotNil(filter.Date.On)
				return nil, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/clients/"+clientID.String()+"/appointments?on=2026-03-02&include_completed=true", nil, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("barber listing returns items", func() {
		item := builder.NewAppointmentBuilder().WithBarberID(barberID).BuildView()
		items := []*queries.AppointmentListItem{{
			ID:        item.ID,
			BarberID:  barberID,
			StartTime: item.StartTime,
			EndTime:   item.EndTime,
			Status:    item.Status,
		}}
		s.mockQueries.EXPECT().ListByBarber(gomock.Any(), barberID, gomock.Any()).Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/barbers/"+barberID.String()+"/appointments", nil, "")

		var response []resdto.AppointmentListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("error: malformed date query", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/clients/"+clientID.String()+"/appointments?on=03-02-2026", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "expected YYYY-MM-DD")
	})

	s.Run("error: day and range together", func() {
		s.mockQueries.EXPECT().ListByClient(gomock.Any(), clientID, gomock.Any()).
			Return(nil, queries.ErrInvalidQuery).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/clients/"+clientID.String()+"/appointments?on=2026-03-02&from=2026-03-01", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "mutually exclusive")
	})
}

func (s *AppointmentHandlerTestSuite) TestGetBarberAvailability() {
	barberID := uuid.New()
	url := "/barbers/" + barberID.String() + "/availability"
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	s.Run("success: returns free slots", func() {
		view := &queries.AvailabilityView{
			BarberID: barberID,
			Date:     "2026-03-02",
			FreeSlots: []queries.SlotView{
				{Start: date.Add(9 * time.Hour), End: date.Add(9*time.Hour + 30*time.Minute)},
			},
		}
		s.mockAvailability.EXPECT().BarberAvailability(gomock.Any(), barberID, date).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=2026-03-02", nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.FreeSlots, 1)
	})

	s.Run("error: missing date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "expected YYYY-MM-DD")
	})

	s.Run("error: unknown barber", func() {
		s.mockAvailability.EXPECT().BarberAvailability(gomock.Any(), barberID, date).
			Return(nil, queries.ErrBarberNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?date=2026-03-02", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Barber not found")
	})
}
