package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"aula/config"
	"aula/infras/otel"
	courseModel "aula/internal/domains/course/model"
	courseRepo "aula/internal/domains/course/repository"
	roomModel "aula/internal/domains/room/model"
	roomRepo "aula/internal/domains/room/repository"
	"aula/internal/domains/schedule/model"
	"aula/internal/domains/schedule/model/dto"
	"aula/internal/domains/schedule/repository"
	"aula/shared"
	"aula/shared/cache"
	"aula/shared/constant"
	gDto "aula/shared/dto"
	"aula/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRoomSchedules   = "schedule:room"
	cacheGetCourseSchedules = "schedule:course"

	msgNoRoomsAvailable = "No available rooms for this day"
)

type Schedule interface {
	IsAvailable(ctx context.Context, req dto.AvailabilityRequest) (dto.AvailabilityResponse, error)
	CheckConflicts(ctx context.Context, req dto.AvailabilityRequest) (dto.ConflictsResponse, error)
	GenerateTimetable(ctx context.Context, req dto.TimetableRequest) (dto.TimetableResponse, error)
	ScheduleRoom(ctx context.Context, req dto.CreateScheduleRequest) (dto.ScheduleResponse, error)
	GetByRoom(ctx context.Context, roomID string) (dto.GetSchedulesResponse, error)
	GetByCourse(ctx context.Context, courseID string) (dto.GetSchedulesResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo       repository.Schedule
	roomRepo   roomRepo.Room
	courseRepo courseRepo.Course
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(repo repository.Schedule, roomRepo roomRepo.Room, courseRepo courseRepo.Course, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Schedule {
	return &serviceImpl{
		repo:       repo,
		roomRepo:   roomRepo,
		courseRepo: courseRepo,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

// IsAvailable reports whether the room is free on the given day for
// the half-open [start, end) interval. Absence of schedules is not an
// error, it is availability. Results are never cached: a stale answer
// here would reintroduce double-bookings.
func (s *serviceImpl) IsAvailable(ctx context.Context, req dto.AvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsAvailable")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		"schedule.room_id": req.RoomID,
		"schedule.day":     req.Day,
		"schedule.start":   req.StartTime,
		"schedule.end":     req.EndTime,
	})

	log.Debug().
		Str("roomID", req.RoomID).
		Str("day", req.Day).
		Str("start", req.StartTime).
		Str("end", req.EndTime).
		Msg("checking room availability")

	overlapping, err := s.repo.CountOverlapping(ctx, req.RoomID, req.Day, req.StartTime, req.EndTime)
	if err != nil {
		log.Error().Err(err).Msg("failed to count overlapping schedules")

		return res, fmt.Errorf("failed to count overlapping schedules: %w", err)
	}

	log.Debug().
		Str("roomID", req.RoomID).
		Int("overlapping", overlapping).
		Bool("available", overlapping == 0).
		Msg("room availability checked")

	return dto.AvailabilityResponse{
		RoomID:    req.RoomID,
		Day:       req.Day,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Available: overlapping == 0,
	}, nil
}

// CheckConflicts returns advisory human-readable messages for a
// proposed slot. An empty list means the slot is clear. It never
// blocks a later commit.
func (s *serviceImpl) CheckConflicts(ctx context.Context, req dto.AvailabilityRequest) (res dto.ConflictsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckConflicts")
	defer scope.End()
	defer scope.TraceIfError(err)

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	availability, err := s.IsAvailable(ctx, req)
	if err != nil {
		return res, err
	}

	res.Conflicts = []string{}
	if !availability.Available {
		res.Conflicts = append(res.Conflicts, fmt.Sprintf(
			"Room %s is not available on %s from %s to %s",
			room.Name, req.Day, req.StartTime, req.EndTime,
		))
	}

	return res, nil
}

// GenerateTimetable runs a greedy first-fit search for every requested
// day independently: candidate slots are tried in catalog order, and
// for each slot the active rooms are tried in ascending id order, so
// repeated runs over unchanged data give the same answer. The first
// free (room, slot) pair wins; a day with no free pair gets an error
// entry instead of failing the whole request.
func (s *serviceImpl) GenerateTimetable(ctx context.Context, req dto.TimetableRequest) (res dto.TimetableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GenerateTimetable")
	defer scope.End()
	defer scope.TraceIfError(err)

	courseExists, err := s.courseRepo.Exist(ctx, shared.FilterByID(req.CourseID, courseModel.FieldID, courseModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if course exists")

		return res, fmt.Errorf("failed to check if course exists: %w", err)
	}

	if !courseExists {
		return res, failure.NotFound("course not found") // nolint:wrapcheck
	}

	rooms, err := s.activeRooms(ctx)
	if err != nil {
		return res, err
	}

	slots := s.slotCatalog()

	res.CourseID = req.CourseID
	res.Results = make([]dto.TimetableSlotResult, 0, len(req.Days))

	for _, day := range req.Days {
		result, err := s.findSlotForDay(ctx, day, rooms, slots)
		if err != nil {
			return res, err
		}

		res.Results = append(res.Results, result)
	}

	return res, nil
}

// findSlotForDay returns the first free (room, slot) pair, or an error
// entry when every combination is taken. A failed availability check
// fails the whole search: reporting it as "no rooms available" would
// disguise an outage as a business outcome.
func (s *serviceImpl) findSlotForDay(ctx context.Context, day string, rooms []roomModel.Room, slots []model.Slot) (dto.TimetableSlotResult, error) {
	for _, slot := range slots {
		for _, room := range rooms {
			overlapping, err := s.repo.CountOverlapping(ctx, room.ID, day, slot.StartTime, slot.EndTime)
			if err != nil {
				log.Error().Err(err).Str("roomID", room.ID).Str("day", day).Msg("failed to check slot availability")

				return dto.TimetableSlotResult{}, fmt.Errorf("failed to check slot availability: %w", err)
			}

			if overlapping == 0 {
				return dto.TimetableSlotResult{
					Day:       day,
					RoomID:    room.ID,
					RoomName:  room.Name,
					StartTime: slot.StartTime,
					EndTime:   slot.EndTime,
				}, nil
			}
		}
	}

	return dto.TimetableSlotResult{
		Day:   day,
		Error: msgNoRoomsAvailable,
	}, nil
}

// ScheduleRoom commits one (course, room, day, slot) assignment as a
// recurring weekly schedule. The insert re-checks availability inside
// one transaction, so a slot lost to a concurrent caller surfaces as
// a conflict instead of a silent double-booking.
func (s *serviceImpl) ScheduleRoom(ctx context.Context, req dto.CreateScheduleRequest) (res dto.ScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ScheduleRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.StartTime >= req.EndTime {
		return res, failure.BadRequestFromString("start_time must be before end_time") // nolint:wrapcheck
	}

	courseExists, err := s.courseRepo.Exist(ctx, shared.FilterByID(req.CourseID, courseModel.FieldID, courseModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if course exists")

		return res, fmt.Errorf("failed to check if course exists: %w", err)
	}

	if !courseExists {
		return res, failure.NotFound("course not found") // nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if !room.Active {
		return res, failure.BadRequestFromString("room is not active") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	schedule := req.ToModel(user)

	if err = s.repo.InsertChecked(ctx, schedule); err != nil {
		if errors.Is(err, repository.ErrSlotTaken) {
			return res, failure.Conflict(fmt.Sprintf(
				"Room %s is already scheduled on %s between %s and %s",
				room.Name, req.Day, req.StartTime, req.EndTime,
			)) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create schedule")

		return res, fmt.Errorf("failed to create schedule: %w", err)
	}

	scope.AddEvent("Schedule committed for room " + room.ID)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetRoomSchedules)
		shared.InvalidateCaches(c, s.cache, cacheGetCourseSchedules)
	}()

	res.FromModel(schedule)

	return res, nil
}

// GetByRoom lists every schedule of a room, sorted day-of-week then
// start time for display.
func (s *serviceImpl) GetByRoom(ctx context.Context, roomID string) (res dto.GetSchedulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByRoom")
	defer scope.End()
	defer scope.TraceIfError(err)

	roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return res, fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	return s.getSorted(ctx, cacheGetRoomSchedules, roomID, shared.FilterByID(roomID, model.FieldRoomID, model.TableName))
}

// GetByCourse lists every schedule of a course, sorted day-of-week
// then start time.
func (s *serviceImpl) GetByCourse(ctx context.Context, courseID string) (res dto.GetSchedulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByCourse")
	defer scope.End()
	defer scope.TraceIfError(err)

	courseExists, err := s.courseRepo.Exist(ctx, shared.FilterByID(courseID, courseModel.FieldID, courseModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if course exists")

		return res, fmt.Errorf("failed to check if course exists: %w", err)
	}

	if !courseExists {
		return res, failure.NotFound("course not found") // nolint:wrapcheck
	}

	return s.getSorted(ctx, cacheGetCourseSchedules, courseID, shared.FilterByID(courseID, model.FieldCourseID, model.TableName))
}

func (s *serviceImpl) getSorted(ctx context.Context, cachePrefix, id string, filter gDto.FilterGroup) (res dto.GetSchedulesResponse, err error) {
	cacheKey := shared.BuildCacheKey(cachePrefix, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for schedules")

		return res, nil
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get schedules")

		return res, fmt.Errorf("failed to get schedules: %w", err)
	}

	// Day tokens are stored as text, so chronological display order
	// needs an explicit day index rather than SQL ordering.
	slices.SortFunc(models, func(a, b model.RoomSchedule) int {
		if byDay := model.DayIndex(a.DayOfWeek) - model.DayIndex(b.DayOfWeek); byDay != 0 {
			return byDay
		}

		switch {
		case a.StartTime < b.StartTime:
			return -1
		case a.StartTime > b.StartTime:
			return 1
		default:
			return 0
		}
	})

	res.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save schedules to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if schedule exists")

		return fmt.Errorf("failed to check if schedule exists: %w", err)
	}

	if !exist {
		log.Error().Msg("schedule not found")

		return failure.NotFound("schedule not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete schedule")

		return fmt.Errorf("failed to delete schedule: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetRoomSchedules)
		shared.InvalidateCaches(c, s.cache, cacheGetCourseSchedules)
	}()

	return nil
}

// activeRooms loads every active room ascending by id, which fixes the
// iteration order of the first-fit search.
func (s *serviceImpl) activeRooms(ctx context.Context) ([]roomModel.Room, error) {
	params := gDto.QueryParams{
		SortBy:  roomModel.FieldID,
		SortDir: gDto.SortDirAsc,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldActive,
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    roomModel.TableName,
			},
		},
	}

	rooms, err := s.roomRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active rooms")

		return nil, fmt.Errorf("failed to get active rooms: %w", err)
	}

	return rooms, nil
}

// slotCatalog resolves the candidate slots from configuration,
// falling back to the historical five-slot catalog when unset or
// malformed.
func (s *serviceImpl) slotCatalog() []model.Slot {
	raw := s.cfg.App.Timetable.Slots
	if len(raw) == 0 {
		return model.DefaultSlots()
	}

	slots, err := model.ParseSlots(raw)
	if err != nil {
		log.Error().Err(err).Msg("invalid timetable slot configuration, using default catalog")

		return model.DefaultSlots()
	}

	return slots
}
