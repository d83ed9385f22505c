package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"aula/infras/otel"
	"aula/infras/postgres"
	"aula/internal/domains/schedule/model"
	"aula/shared/constant"
	gDto "aula/shared/dto"
	"aula/shared/logger"
	gRepo "aula/shared/repository"

	"github.com/lib/pq"
)

// ErrSlotTaken signals that another schedule already occupies an
// overlapping interval on the same room and day. Callers can retry the
// allocation with a different slot.
var ErrSlotTaken = errors.New("slot is already taken")

type Schedule interface {
	Insert(ctx context.Context, model model.RoomSchedule) error
	InsertChecked(ctx context.Context, model model.RoomSchedule) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.RoomSchedule, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.RoomSchedule, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	CountOverlapping(ctx context.Context, roomID, day, startTime, endTime string) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.RoomSchedule]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Schedule {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.RoomSchedule](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// OverlapFilter matches every schedule on the given room and day whose
// half-open [start, end) interval intersects the given one. Touching
// boundaries do not match, so back-to-back bookings stay allowed.
func OverlapFilter(roomID, day, startTime, endTime string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldRoomID,
				Operator: gDto.FilterOperatorEq,
				Value:    roomID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldDayOfWeek,
				Operator: gDto.FilterOperatorEq,
				Value:    day,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "overlap_end",
				Field:    model.FieldStartTime,
				Operator: gDto.FilterOperatorLess,
				Value:    endTime,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "overlap_start",
				Field:    model.FieldEndTime,
				Operator: gDto.FilterOperatorGreater,
				Value:    startTime,
				Table:    model.TableName,
			},
		},
	}
}

func (repo *repositoryImpl) CountOverlapping(ctx context.Context, roomID, day, startTime, endTime string) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".schedule.CountOverlapping")
	defer scope.End()

	return repo.Count(ctx, OverlapFilter(roomID, day, startTime, endTime)) //nolint:wrapcheck
}

// InsertChecked persists a schedule only if no overlapping schedule
// exists for the same room and day. The availability re-check and the
// insert run in one transaction that locks the room's schedule rows
// for that day, and the table's exclusion constraint backstops the
// check, so concurrent commits cannot both succeed.
func (repo *repositoryImpl) InsertChecked(ctx context.Context, mod model.RoomSchedule) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".schedule.InsertChecked")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.ErrorWithStack(rbErr)
			}
		}
	}()

	lockQuery := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1 AND %s = $2 FOR UPDATE", model.FieldID, model.TableName, model.FieldRoomID, model.FieldDayOfWeek)
	scope.SetAttribute(constant.OtelQueryAttributeKey, lockQuery)

	if _, err = tx.ExecContext(ctx, lockQuery, mod.RoomID, mod.DayOfWeek); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to lock schedules (%s): %w", model.EntityName, err)
	}

	overlapQuery := fmt.Sprintf(
		"SELECT COUNT(%s) FROM %s WHERE %s = $1 AND %s = $2 AND %s < $3 AND %s > $4",
		model.FieldID, model.TableName, model.FieldRoomID, model.FieldDayOfWeek, model.FieldStartTime, model.FieldEndTime,
	)

	var overlapping int
	if err = tx.GetContext(ctx, &overlapping, overlapQuery, mod.RoomID, mod.DayOfWeek, mod.EndTime, mod.StartTime); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to check overlapping schedules (%s): %w", model.EntityName, err)
	}

	if overlapping > 0 {
		err = ErrSlotTaken

		return err
	}

	if err = repo.InsertTx(ctx, tx, mod); err != nil {
		if isConflictError(err) {
			err = ErrSlotTaken
		}

		return err
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		if isConflictError(err) {
			err = ErrSlotTaken

			return err
		}

		return fmt.Errorf("failed to commit schedule (%s): %w", model.EntityName, err)
	}

	return nil
}

// isConflictError detects the constraint violations that mean another
// transaction won the slot: the exclusion constraint on
// (room_id, day_of_week, time range), a unique violation, or a
// serialization failure.
func isConflictError(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}

	code := string(pqErr.Code)

	return code == constant.PqErrorCodeExclusionViolation ||
		code == constant.PqErrorCodeUniqueViolation ||
		code == constant.PqErrorCodeSerializationFailure
}
