package model

import "aula/shared/model"

const (
	TableName  = "courses"
	EntityName = "course"

	FieldID          = "id"
	FieldName        = "name"
	FieldCode        = "code"
	FieldDescription = "description"
	FieldTeacher     = "teacher"
	FieldActive      = "active"
)

type Course struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Code        string `db:"code"`
	Description string `db:"description"`
	Teacher     string `db:"teacher"`
	Active      bool   `db:"active"`
	model.Metadata
}
