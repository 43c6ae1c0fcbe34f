package tasks

import (
	"encoding/json"
	"time"

	"shelterhub/models"

	"github.com/hibiken/asynq"
)

const TypeAppointmentExpire = "appointment:expire"

// NewAppointmentExpireTask builds the delayed task that releases an
// unconfirmed appointment hold at fireAt.
func NewAppointmentExpireTask(payload models.AppointmentExpirePayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAppointmentExpire, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
