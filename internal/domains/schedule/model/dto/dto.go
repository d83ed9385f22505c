package dto

import (
	"aula/internal/domains/schedule/model"
	gDto "aula/shared/dto"
	gModel "aula/shared/model"
	"aula/shared/timezone"

	"github.com/google/uuid"
)

type CreateScheduleRequest struct {
	CourseID  string `json:"course_id"  validate:"required"`
	RoomID    string `json:"room_id"    validate:"required"`
	Day       string `json:"day"        validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time"   validate:"required,datetime=15:04"`
}

func (c *CreateScheduleRequest) ToModel(user string) model.RoomSchedule {
	return model.RoomSchedule{
		ID:        uuid.NewString(),
		CourseID:  c.CourseID,
		RoomID:    c.RoomID,
		DayOfWeek: c.Day,
		StartTime: c.StartTime,
		EndTime:   c.EndTime,
		Recurring: true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type AvailabilityRequest struct {
	RoomID    string `json:"room_id"    validate:"required"`
	Day       string `json:"day"        validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime string `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time"   validate:"required,datetime=15:04"`
}

type AvailabilityResponse struct {
	RoomID    string `json:"room_id"`
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
}

type ConflictsResponse struct {
	Conflicts []string `json:"conflicts"`
}

type TimetableRequest struct {
	CourseID string   `json:"course_id" validate:"required"`
	Days     []string `json:"days"      validate:"required,min=1,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
}

// TimetableSlotResult is one per-day allocator outcome: either a
// (room, slot) assignment or an error message, never both.
type TimetableSlotResult struct {
	Day       string `json:"day"`
	RoomID    string `json:"room_id,omitempty"`
	RoomName  string `json:"room_name,omitempty"`
	StartTime string `json:"start_time,omitempty"`
	EndTime   string `json:"end_time,omitempty"`
	Error     string `json:"error,omitempty"`
}

type TimetableResponse struct {
	CourseID string                `json:"course_id"`
	Results  []TimetableSlotResult `json:"results"`
}

type ScheduleResponse struct {
	ID        string `json:"id"`
	CourseID  string `json:"course_id"`
	RoomID    string `json:"room_id"`
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Recurring bool   `json:"recurring"`
	gDto.Metadata
}

func (r *ScheduleResponse) FromModel(model model.RoomSchedule) {
	r.ID = model.ID
	r.CourseID = model.CourseID
	r.RoomID = model.RoomID
	r.Day = model.DayOfWeek
	r.StartTime = model.StartTime
	r.EndTime = model.EndTime
	r.Recurring = model.Recurring
	r.Metadata.FromModel(model.Metadata)
}

type GetSchedulesResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	TotalData int                `json:"total_data"`
}

func (r *GetSchedulesResponse) FromModels(models []model.RoomSchedule) {
	r.TotalData = len(models)

	r.Schedules = make([]ScheduleResponse, len(models))
	for i, mod := range models {
		r.Schedules[i].FromModel(mod)
	}
}
