package dto

import (
	"docai/internal/domains/patient/model"
	"encoding/json"
)

type SubmitPatientRequest struct {
	Name     string `json:"name"     validate:"required"`
	Age      int    `json:"age"      validate:"gte=0,lte=150"`
	Symptoms string `json:"symptoms"`
	Pincode  string `json:"pincode"`
}

func (r *SubmitPatientRequest) ToModel() model.Patient {
	return model.Patient{
		Name:     r.Name,
		Age:      r.Age,
		Symptoms: r.Symptoms,
		Pincode:  r.Pincode,
	}
}

type SubmitPatientResponse struct {
	Message  string          `json:"message"`
	MLOutput json.RawMessage `json:"ml_output" swaggertype:"object"`
}
