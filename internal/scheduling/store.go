package scheduling

import (
	"context"
	"sync"
)

// AppointmentSource supplies a point-in-time snapshot of an org's appointments.
type AppointmentSource interface {
	Appointments(ctx context.Context, orgID string) ([]Appointment, error)
}

// PatientSource supplies a point-in-time snapshot of an org's patients.
type PatientSource interface {
	Patients(ctx context.Context, orgID string) ([]Patient, error)
}

// InMemoryStore holds appointments and patients keyed by org. It backs the
// API in environments without a live scheduling feed and the seed data used
// in demos.
type InMemoryStore struct {
	mu           sync.RWMutex
	appointments map[string][]Appointment
	patients     map[string][]Patient
}

// NewInMemoryStore creates an empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		appointments: make(map[string][]Appointment),
		patients:     make(map[string][]Patient),
	}
}

// PutAppointment inserts or replaces an appointment.
func (s *InMemoryStore) PutAppointment(appt Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.appointments[appt.OrgID]
	for i, existing := range list {
		if existing.ID == appt.ID {
			list[i] = appt
			return
		}
	}
	s.appointments[appt.OrgID] = append(list, appt)
}

// PutPatient inserts or replaces a patient.
func (s *InMemoryStore) PutPatient(p Patient) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.patients[p.OrgID]
	for i, existing := range list {
		if existing.ID == p.ID {
			list[i] = p
			return
		}
	}
	s.patients[p.OrgID] = append(list, p)
}

// Appointments returns a copy of the org's appointments. Callers own the
// returned slice.
func (s *InMemoryStore) Appointments(ctx context.Context, orgID string) ([]Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.appointments[orgID]
	out := make([]Appointment, len(list))
	copy(out, list)
	return out, nil
}

// Patients returns a copy of the org's patients. Callers own the returned
// slice.
func (s *InMemoryStore) Patients(ctx context.Context, orgID string) ([]Patient, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.patients[orgID]
	out := make([]Patient, len(list))
	copy(out, list)
	return out, nil
}
