package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"barbershop-api/internal/domain/appointment"
	reqdto "barbershop-api/internal/handler/dto/request"
	resdto "barbershop-api/internal/handler/dto/response"
	"barbershop-api/internal/usecase/commands"
	"barbershop-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	appointmentCommands commands.AppointmentCommands
	appointmentQueries  queries.AppointmentQueries
	availability        queries.AvailabilityQueries
}

func NewAppointmentHandler(
	appointmentCommands commands.AppointmentCommands,
	appointmentQueries queries.AppointmentQueries,
	availability queries.AvailabilityQueries,
) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentCommands: appointmentCommands,
		appointmentQueries:  appointmentQueries,
		availability:        availability,
	}
}

// @Summary Book appointment
// @Description Book a new appointment for a client with a barber
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAppointmentRequest true "Appointment request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.appointmentCommands.CreateAppointment(c.Request.Context(), commands.CreateAppointmentRequest{
		BarberID:      req.BarberID,
		ClientID:      req.ClientID,
		ServiceID:     req.ServiceID,
		StartTime:     req.StartTime,
		Notes:         req.GetNotes(),
		PaymentMethod: req.GetPaymentMethod(),
	})
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAppointmentView(view))
}

// @Summary Get appointment
// @Description Get appointment by ID
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) GetAppointment(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	view, err := h.appointmentQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Appointment not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Confirm appointment
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments/{id}/confirm [post]
func (h *AppointmentHandler) ConfirmAppointment(c *gin.Context) {
	h.runTransition(c, h.appointmentCommands.ConfirmAppointment)
}

// @Summary Start appointment
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments/{id}/start [post]
func (h *AppointmentHandler) StartAppointment(c *gin.Context) {
	h.runTransition(c, h.appointmentCommands.StartAppointment)
}

// @Summary Complete appointment
// @Description Complete an appointment, optionally attaching service notes
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.CompleteAppointmentRequest false "Completion details"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments/{id}/complete [post]
func (h *AppointmentHandler) CompleteAppointment(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req reqdto.CompleteAppointmentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	view, err := h.appointmentCommands.CompleteAppointment(c.Request.Context(), id, req.GetNotes())
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Cancel appointment
// @Tags appointments
// @Accept json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.CancelAppointmentRequest false "Cancellation details"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments/{id}/cancel [post]
func (h *AppointmentHandler) CancelAppointment(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req reqdto.CancelAppointmentRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	if err := h.appointmentCommands.CancelAppointment(c.Request.Context(), id, req.GetReason()); err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Mark no-show
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments/{id}/no-show [post]
func (h *AppointmentHandler) MarkNoShow(c *gin.Context) {
	h.runTransition(c, h.appointmentCommands.MarkNoShow)
}

// @Summary Reschedule appointment
// @Description Move an appointment to a new slot, optionally changing barber
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.RescheduleAppointmentRequest true "Reschedule request"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /appointments/{id}/reschedule [post]
func (h *AppointmentHandler) RescheduleAppointment(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req reqdto.RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.appointmentCommands.RescheduleAppointment(c.Request.Context(), commands.RescheduleRequest{
		AppointmentID: id,
		NewStartTime:  req.NewStartTime,
		NewBarberID:   req.NewBarberID,
	})
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary List client appointments
// @Description List a client's appointments, most recent first
// @Tags clients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Param on query string false "Single day (YYYY-MM-DD)"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Param include_completed query bool false "Include completed appointments"
// @Param include_cancelled query bool false "Include cancelled and no-show appointments"
// @Success 200 {array} resdto.AppointmentListResponse
// @Failure 400 {object} map[string]string
// @Router /clients/{id}/appointments [get]
func (h *AppointmentHandler) ListClientAppointments(c *gin.Context) {
	h.listAppointments(c, h.appointmentQueries.ListByClient)
}

// @Summary List barber appointments
// @Description List a barber's appointments, earliest first
// @Tags barbers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Barber ID"
// @Param on query string false "Single day (YYYY-MM-DD)"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Param include_completed query bool false "Include completed appointments"
// @Param include_cancelled query bool false "Include cancelled and no-show appointments"
// @Success 200 {array} resdto.AppointmentListResponse
// @Failure 400 {object} map[string]string
// @Router /barbers/{id}/appointments [get]
func (h *AppointmentHandler) ListBarberAppointments(c *gin.Context) {
	h.listAppointments(c, h.appointmentQueries.ListByBarber)
}

// @Summary Barber availability
// @Description Free 30-minute slots of a barber on a given date
// @Tags barbers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Barber ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /barbers/{id}/availability [get]
func (h *AppointmentHandler) GetBarberAvailability(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid or missing date, expected YYYY-MM-DD",
		})
		return
	}

	view, err := h.availability.BarberAvailability(c.Request.Context(), id, date)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBarberNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Barber not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

func (h *AppointmentHandler) runTransition(c *gin.Context, op func(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error)) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	view, err := op(c.Request.Context(), id)
	if err != nil {
		h.writeCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

func (h *AppointmentHandler) listAppointments(c *gin.Context, op func(ctx context.Context, id uuid.UUID, filter queries.ListFilter) ([]*queries.AppointmentListItem, error)) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	filter, ok := h.parseListFilter(c)
	if !ok {
		return
	}

	items, err := op(c.Request.Context(), id, filter)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidQuery):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Single date and date range are mutually exclusive",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	responses := make([]*resdto.AppointmentListResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, resdto.FromAppointmentListItem(item))
	}
	c.JSON(http.StatusOK, responses)
}

func (h *AppointmentHandler) parseListFilter(c *gin.Context) (queries.ListFilter, bool) {
	filter := queries.ListFilter{
		IncludeCompleted: c.Query("include_completed") == "true",
		IncludeCancelled: c.Query("include_cancelled") == "true",
	}

	for _, q := range []struct {
		name string
		dst  **time.Time
	}{
		{"on", &filter.Date.On},
		{"from", &filter.Date.From},
		{"to", &filter.Date.To},
	} {
		raw := c.Query(q.name)
		if raw == "" {
			continue
		}
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid " + q.name + " date, expected YYYY-MM-DD",
			})
			return queries.ListFilter{}, false
		}
		*q.dst = &t
	}

	return filter, true
}

func (h *AppointmentHandler) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

func (h *AppointmentHandler) writeCommandError(c *gin.Context, err error) {
	var (
		skillErr    *commands.SkillMismatchError
		conflictErr *commands.SchedulingConflictError
		invalidErr  *appointment.InvalidTransitionError
	)

	switch {
	case errors.Is(err, commands.ErrBarberNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Barber not found"})
	case errors.Is(err, commands.ErrClientNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
	case errors.Is(err, commands.ErrServiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
	case errors.Is(err, commands.ErrAppointmentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Appointment not found"})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{
			"error":          "Slot conflicts with an existing appointment",
			"conflicting_id": conflictErr.ConflictingID,
		})
	case errors.Is(err, commands.ErrConcurrencyConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Appointment was modified concurrently, please retry"})
	case errors.As(err, &skillErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "Barber lacks required skills for this service",
			"missing_skills": skillErr.Missing,
		})
	case errors.Is(err, commands.ErrBarberInactive):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Barber is not taking appointments"})
	case errors.Is(err, commands.ErrClientInactive):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Client cannot book appointments"})
	case errors.Is(err, commands.ErrServiceUnavailable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Service is not offered"})
	case errors.Is(err, commands.ErrOutsideWorkingHours):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Slot is outside the barber's working hours"})
	case errors.As(err, &invalidErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid state transition from " + invalidErr.From.String(),
		})
	case errors.Is(err, appointment.ErrInvalidSlot):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid time slot"})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Domain validation failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
