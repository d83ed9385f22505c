package schedule

import (
	"net/http"

	"aula/infras/otel"
	"aula/internal/domains/schedule/model/dto"
	"aula/internal/domains/schedule/service"
	"aula/shared/constant"
	"aula/shared/validator"
	"aula/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Schedule
	otel    otel.Otel
}

func New(service service.Schedule, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/schedules", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.ScheduleRoom)
		routerGroup.Get("/availability", handler.GetAvailability)
		routerGroup.Post("/timetable", handler.GenerateTimetable)
		routerGroup.Post("/conflicts", handler.CheckConflicts)
		routerGroup.Delete("/{id}", handler.DeleteSchedule)
	})
}

// ScheduleRoom commits one room/day/slot assignment for a course as a
// recurring weekly schedule.
// @Summary Schedule a room for a course
// @Tags Schedule
// @Accept json
// @Produce json
// @Success 201 {object} response.Data[dto.ScheduleResponse] "Schedule created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Slot already taken"
// @Failure 500 {object} response.Error
// @Router /v1/schedules [post]
func (handler *Handler) ScheduleRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ScheduleRoom")
	defer scope.End()

	var req dto.CreateScheduleRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	schedule, err := handler.service.ScheduleRoom(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to schedule room")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Schedule created successfully")

	response.WithJSON(w, http.StatusCreated, schedule)
}

// GetAvailability reports whether a room is free for a day and
// interval.
// @Summary Check room availability
// @Tags Schedule
// @Produce json
// @Param room_id query string true "Room ID"
// @Param day query string true "Day of week token"
// @Param start_time query string true "Start time (HH:MM)"
// @Param end_time query string true "End time (HH:MM)"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Availability"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedules/availability [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	query := r.URL.Query()
	req := dto.AvailabilityRequest{
		RoomID:    query.Get("room_id"),
		Day:       query.Get("day"),
		StartTime: query.Get("start_time"),
		EndTime:   query.Get("end_time"),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	availability, err := handler.service.IsAvailable(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Availability checked successfully")

	response.WithJSON(w, http.StatusOK, availability)
}

// GenerateTimetable proposes a first-fit (room, slot) assignment per
// requested day for a course. Days with no free combination carry an
// error entry instead of failing the request.
// @Summary Generate a timetable for a course
// @Tags Schedule
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.TimetableResponse] "Timetable proposal"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedules/timetable [post]
func (handler *Handler) GenerateTimetable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateTimetable")
	defer scope.End()

	var req dto.TimetableRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	timetable, err := handler.service.GenerateTimetable(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate timetable")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Timetable generated successfully")

	response.WithJSON(w, http.StatusOK, timetable)
}

// CheckConflicts returns advisory conflict messages for a proposed
// slot without blocking a later commit.
// @Summary Check a proposed slot for conflicts
// @Tags Schedule
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.ConflictsResponse] "Conflict messages"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedules/conflicts [post]
func (handler *Handler) CheckConflicts(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckConflicts")
	defer scope.End()

	var req dto.AvailabilityRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	conflicts, err := handler.service.CheckConflicts(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check conflicts")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Conflicts checked successfully")

	response.WithJSON(w, http.StatusOK, conflicts)
}

// DeleteSchedule deletes a schedule by its ID.
// @Summary Delete a schedule by ID
// @Tags Schedule
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} response.Message "Schedule deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedules/{id} [delete]
func (handler *Handler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSchedule")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete schedule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Schedule deleted successfully")

	response.WithMessage(w, http.StatusOK, "Schedule deleted successfully")
}
