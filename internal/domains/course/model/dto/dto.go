package dto

import (
	"aula/internal/domains/course/model"
	"aula/shared"
	gDto "aula/shared/dto"
	gModel "aula/shared/model"
	"aula/shared/timezone"

	"github.com/google/uuid"
)

type CreateCourseRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Code        string `json:"code"        validate:"required,max=20"`
	Description string `json:"description" validate:"omitempty"`
	Teacher     string `json:"teacher"     validate:"omitempty,max=100"`
	Active      *bool  `json:"active"      validate:"omitempty"`
}

func (c *CreateCourseRequest) ToModel(user string) model.Course {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Course{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Code:        c.Code,
		Description: c.Description,
		Teacher:     c.Teacher,
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCourseRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Code        string `db:"code"        json:"code"        validate:"omitempty,max=20"`
	Description string `db:"description" json:"description" validate:"omitempty"`
	Teacher     string `db:"teacher"     json:"teacher"     validate:"omitempty,max=100"`
	Active      *bool  `db:"active"      json:"active"      validate:"omitempty"`
}

type CourseResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Teacher     string `json:"teacher"`
	Active      bool   `json:"active"`
	gDto.Metadata
}

func (r *CourseResponse) FromModel(model model.Course) {
	r.ID = model.ID
	r.Name = model.Name
	r.Code = model.Code
	r.Description = model.Description
	r.Teacher = model.Teacher
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetCoursesResponse struct {
	Courses   []CourseResponse `json:"courses"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetCoursesResponse) FromModels(models []model.Course, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Courses = make([]CourseResponse, len(models))
	for i, mod := range models {
		r.Courses[i].FromModel(mod)
	}
}
