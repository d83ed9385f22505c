package course

import (
	"net/http"

	"aula/infras/otel"
	"aula/internal/domains/course/model"
	"aula/internal/domains/course/model/dto"
	"aula/internal/domains/course/service"
	scheduleService "aula/internal/domains/schedule/service"
	"aula/shared"
	"aula/shared/constant"
	gDto "aula/shared/dto"
	"aula/shared/validator"
	"aula/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service   service.Course
	schedules scheduleService.Schedule
	otel      otel.Otel
}

func New(service service.Course, schedules scheduleService.Schedule, otel otel.Otel) Handler {
	return Handler{
		service:   service,
		schedules: schedules,
		otel:      otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/courses", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCourse)
		routerGroup.Get("/", handler.GetCourses)
		routerGroup.Get("/{id}", handler.GetCourseByID)
		routerGroup.Get("/{id}/schedules", handler.GetCourseSchedules)
		routerGroup.Patch("/{id}", handler.UpdateCourse)
		routerGroup.Delete("/{id}", handler.DeleteCourse)
	})
}

// CreateCourse handles the creation of a new course.
// @Summary Create a new course
// @Tags Course
// @Accept json
// @Produce json
// @Success 201 {object} response.Message "Course created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/courses [post]
func (handler *Handler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCourse")
	defer scope.End()

	var req dto.CreateCourseRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create course")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Course created successfully")

	response.WithMessage(w, http.StatusCreated, "Course created successfully")
}

// GetCourses retrieves all courses based on query parameters.
// @Summary Get all courses
// @Tags Course
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param code query string false "Filter by code"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetCoursesResponse] "List of courses"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/courses [get]
func (handler *Handler) GetCourses(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCourses")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)
	code := r.URL.Query().Get(model.FieldCode)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    name,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldCode,
				Operator: gDto.FilterOperatorLike,
				Value:    code,
				Table:    model.TableName,
			},
		},
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	courses, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get courses")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Courses retrieved successfully")

	response.WithJSON(w, http.StatusOK, courses)
}

// GetCourseByID retrieves a course by its ID.
// @Summary Get a course by ID
// @Tags Course
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} response.Data[dto.CourseResponse] "Course details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/courses/{id} [get]
func (handler *Handler) GetCourseByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCourseByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	course, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get course by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Course retrieved successfully")

	response.WithJSON(w, http.StatusOK, course)
}

// GetCourseSchedules lists every schedule of a course, sorted by
// day-of-week then start time.
// @Summary Get all schedules of a course
// @Tags Course
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} response.Data[scheduleDto.GetSchedulesResponse] "Course schedules"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/courses/{id}/schedules [get]
func (handler *Handler) GetCourseSchedules(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCourseSchedules")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	schedules, err := handler.schedules.GetByCourse(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get course schedules")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Course schedules retrieved successfully")

	response.WithJSON(w, http.StatusOK, schedules)
}

// UpdateCourse updates an existing course by its ID.
// @Summary Update a course by ID
// @Tags Course
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} response.Message "Course updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/courses/{id} [patch]
func (handler *Handler) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCourse")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateCourseRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update course")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Course updated successfully")

	response.WithMessage(w, http.StatusOK, "Course updated successfully")
}

// DeleteCourse deletes a course by its ID.
// @Summary Delete a course by ID
// @Tags Course
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} response.Message "Course deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/courses/{id} [delete]
func (handler *Handler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCourse")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete course")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Course deleted successfully")

	response.WithMessage(w, http.StatusOK, "Course deleted successfully")
}
