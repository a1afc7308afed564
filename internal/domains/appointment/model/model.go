package model

import (
	"time"
)

const (
	TableName  = "appointments"
	EntityName = "appointment"

	FieldID        = "id"
	FieldDoctorID  = "doctor_id"
	FieldDate      = "date"
	FieldTime      = "time"
	FieldReason    = "reason"
	FieldContact   = "contact"
	FieldStatus    = "status"
	FieldCreatedAt = "created_at"
)

type Status string

const (
	StatusScheduled Status = "SCHEDULED"
)

// Appointment is a persisted booking. Rows are written once and never updated.
type Appointment struct {
	ID        int64     `db:"id"         insert:"-"`
	DoctorID  string    `db:"doctor_id"`
	Date      time.Time `db:"date"`
	Time      Clock     `db:"time"`
	Reason    string    `db:"reason"`
	Contact   string    `db:"contact"`
	Status    Status    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}
