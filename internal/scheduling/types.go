// Package scheduling owns the appointment and patient records consumed by the
// rest of the platform. The dashboard engine reads snapshots from this package
// and never mutates them.
package scheduling

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus tracks the lifecycle of an appointment.
type AppointmentStatus string

const (
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusPending    AppointmentStatus = "pending"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusArrived    AppointmentStatus = "arrived"
	StatusFinished   AppointmentStatus = "finished"
	StatusNoShow     AppointmentStatus = "no_show"
	StatusCanceled   AppointmentStatus = "canceled"
)

// Appointment is a single booked visit.
type Appointment struct {
	ID              uuid.UUID         `json:"id"`
	OrgID           string            `json:"org_id"`
	PatientID       uuid.UUID         `json:"patient_id"`
	StartsAt        time.Time         `json:"starts_at"`
	DurationMinutes int               `json:"duration_minutes"`
	Status          AppointmentStatus `json:"status"`
}

// Patient carries only the identity the dashboard needs. Demographics and
// medical records live in the patient-management subsystem.
type Patient struct {
	ID    uuid.UUID `json:"id"`
	OrgID string    `json:"org_id"`
}
