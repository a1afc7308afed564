package validator_test

import (
	"docai/shared/failure"
	"docai/shared/validator"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type visitRequest struct {
	DoctorID string `json:"doctorId" validate:"required"`
	Date     string `json:"date"     validate:"required,day"`
	Time     string `json:"time"     validate:"required,clock"`
	Age      int    `json:"age"      validate:"gte=0,lte=150"`
	Kind     string `json:"kind"     validate:"omitempty,oneof=checkup followup"`
	Internal string `json:"-"        validate:"omitempty,len=3"`
}

func validVisit() visitRequest {
	return visitRequest{DoctorID: "doc123", Date: "2025-06-21", Time: "15:00", Age: 30}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *visitRequest)
		wantMsg string
	}{
		{
			name:   "valid",
			mutate: func(_ *visitRequest) {},
		},
		{
			name:    "missing doctor",
			mutate:  func(r *visitRequest) { r.DoctorID = "" },
			wantMsg: "doctorId is required",
		},
		{
			name:    "date not yyyy-mm-dd",
			mutate:  func(r *visitRequest) { r.Date = "21/06/2025" },
			wantMsg: "date must be a date in YYYY-MM-DD format",
		},
		{
			name:    "impossible calendar date",
			mutate:  func(r *visitRequest) { r.Date = "2025-02-30" },
			wantMsg: "date must be a date in YYYY-MM-DD format",
		},
		{
			name:    "time with seconds",
			mutate:  func(r *visitRequest) { r.Time = "15:00:00" },
			wantMsg: "time must be a time in HH:MM format",
		},
		{
			name:    "hour out of range",
			mutate:  func(r *visitRequest) { r.Time = "25:00" },
			wantMsg: "time must be a time in HH:MM format",
		},
		{
			name:    "age above bound",
			mutate:  func(r *visitRequest) { r.Age = 151 },
			wantMsg: "age must be less than or equal to 150",
		},
		{
			name:    "age below bound",
			mutate:  func(r *visitRequest) { r.Age = -1 },
			wantMsg: "age must be greater than or equal to 0",
		},
		{
			name:    "unknown kind",
			mutate:  func(r *visitRequest) { r.Kind = "surgery" },
			wantMsg: "kind must be one of checkup followup",
		},
		{
			name: "several fields in struct order",
			mutate: func(r *visitRequest) {
				r.DoctorID = ""
				r.Time = ""
			},
			wantMsg: "doctorId is required; time is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validVisit()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.EqualError(t, err, tt.wantMsg)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateStruct_UntranslatedTag(t *testing.T) {
	req := validVisit()
	req.Internal = "toolong"

	err := validator.ValidateStruct(&req)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "len")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantErr  bool
		wantCode int
	}{
		{
			name: "valid body",
			body: `{"doctorId":"doc123","date":"2025-06-21","time":"09:30","age":40}`,
		},
		{
			name:     "rule violation",
			body:     `{"doctorId":"doc123","date":"2025-06-21","time":"9.30"}`,
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed json",
			body:     `{"doctorId":`,
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "empty body",
			body:     ``,
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req visitRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)

			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, "doc123", req.DoctorID)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}
