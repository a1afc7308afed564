package dto

import (
	"docai/internal/domains/appointment/model"
	"docai/shared/constant"
	"docai/shared/timezone"
	"fmt"
	"time"
)

type BookAppointmentRequest struct {
	DoctorID string `json:"doctorId" validate:"required"`
	Date     string `json:"date"     validate:"required,day"`
	Time     string `json:"time"     validate:"required,clock"`
	Reason   string `json:"reason"   validate:"required"`
	Contact  string `json:"contact"  validate:"required"`
}

// ToModel parses the calendar fields. A malformed date or time is returned as
// a *model.ValidationError, never defaulted.
func (r *BookAppointmentRequest) ToModel() (model.Appointment, error) {
	date, err := time.Parse(constant.DayFormat, r.Date)
	if err != nil {
		return model.Appointment{}, &model.ValidationError{
			Field: model.FieldDate,
			Err:   fmt.Errorf("%q is not YYYY-MM-DD", r.Date),
		}
	}

	clock, err := model.ParseClock(r.Time)
	if err != nil {
		return model.Appointment{}, &model.ValidationError{Field: model.FieldTime, Err: err}
	}

	return model.Appointment{
		DoctorID:  r.DoctorID,
		Date:      date,
		Time:      clock,
		Reason:    r.Reason,
		Contact:   r.Contact,
		Status:    model.StatusScheduled,
		CreatedAt: timezone.Now(),
	}, nil
}

type NotificationResult struct {
	Channel   string `json:"channel"`
	Delivered bool   `json:"delivered"`
	Error     string `json:"error,omitempty"`
}

type BookAppointmentResponse struct {
	Message      string             `json:"message"`
	DoctorID     string             `json:"doctorId"`
	Date         string             `json:"date"`
	Time         string             `json:"time"`
	Contact      string             `json:"contact"`
	SlipRendered bool               `json:"slipRendered"`
	SlipURL      string             `json:"slipUrl,omitempty"`
	Notification NotificationResult `json:"notification"`
}

type AppointmentResponse struct {
	ID        int64  `json:"id"`
	DoctorID  string `json:"doctor_id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Reason    string `json:"reason"`
	Contact   string `json:"contact"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

func (r *AppointmentResponse) FromModel(model model.Appointment) {
	r.ID = model.ID
	r.DoctorID = model.DoctorID
	r.Date = model.Date.Format(constant.DayFormat)
	r.Time = model.Time.String()
	r.Reason = model.Reason
	r.Contact = model.Contact
	r.Status = string(model.Status)
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}

type GetAppointmentsResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetAppointmentsResponse) FromModels(models []model.Appointment) {
	r.TotalData = len(models)

	r.Appointments = make([]AppointmentResponse, len(models))
	for i, mod := range models {
		r.Appointments[i].FromModel(mod)
	}
}
