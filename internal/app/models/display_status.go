package models

// DisplayStatus is the UI-facing classification of an appointment, derived
// from the raw backend status, the waiting-list flag, and the appointment
// date relative to a reference date. It is distinct from the wire status.
type DisplayStatus string

const (
	DisplayStatusTodayConfirmed    DisplayStatus = "TODAY_CONFIRMED"
	DisplayStatusTodayWaiting      DisplayStatus = "TODAY_WAITING"
	DisplayStatusUpcomingConfirmed DisplayStatus = "UPCOMING_CONFIRMED"
	DisplayStatusUpcomingWaiting   DisplayStatus = "UPCOMING_WAITING"
	DisplayStatusCompleted         DisplayStatus = "COMPLETED"
	DisplayStatusCancelled         DisplayStatus = "CANCELLED"
)

// Raw wire statuses, upper-cased canonical. The backend is case-insensitive
// and uses "cancelado" and "cancelled" interchangeably for cancellation.
const (
	AppointmentStatusPending   = "PENDING"
	AppointmentStatusConfirmed = "CONFIRMED"
	AppointmentStatusCancelled = "CANCELLED"
	AppointmentStatusCompleted = "COMPLETED"
)

func (s DisplayStatus) IsActive() bool {
	switch s {
	case DisplayStatusTodayConfirmed, DisplayStatusTodayWaiting,
		DisplayStatusUpcomingConfirmed, DisplayStatusUpcomingWaiting:
		return true
	}
	return false
}

func (s DisplayStatus) IsToday() bool {
	return s == DisplayStatusTodayConfirmed || s == DisplayStatusTodayWaiting
}

func (s DisplayStatus) IsWaiting() bool {
	return s == DisplayStatusTodayWaiting || s == DisplayStatusUpcomingWaiting
}
