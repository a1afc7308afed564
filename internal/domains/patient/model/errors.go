package model

import "errors"

var ErrPatientNotFound = errors.New("patient not found")
