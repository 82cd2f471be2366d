package appointments

import (
	"time"

	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/dto/responses"
	"mediconnect-service/internal/pkg/utils"
)

// Classify derives the display status of one appointment against a reference
// date. Terminal statuses win outright; active appointments split on calendar
// day and the waiting-list flag. A malformed or missing date never fails
// classification; such records land in the upcoming bucket and the caller
// logs them as anomalous.
func Classify(appointment responses.Appointment, referenceDate time.Time) models.DisplayStatus {
	switch appointment.Status {
	case models.AppointmentStatusCancelled:
		return models.DisplayStatusCancelled
	case models.AppointmentStatusCompleted:
		return models.DisplayStatusCompleted
	}

	isToday := false
	if date, err := utils.ParseLocalDate(appointment.Date); err == nil {
		isToday = utils.SameCalendarDay(date, referenceDate)
	}

	if isToday {
		if appointment.WaitingList {
			return models.DisplayStatusTodayWaiting
		}
		return models.DisplayStatusTodayConfirmed
	}
	if appointment.WaitingList {
		return models.DisplayStatusUpcomingWaiting
	}
	return models.DisplayStatusUpcomingConfirmed
}

// Partition stably splits one actor's appointments into disjoint buckets.
// Relative order within each bucket follows the input; the four buckets
// together cover the whole input set.
func Partition(appointments []responses.Appointment, referenceDate time.Time) responses.AppointmentBuckets {
	buckets := responses.AppointmentBuckets{
		Today:     []responses.Appointment{},
		Upcoming:  []responses.Appointment{},
		Completed: []responses.Appointment{},
		Cancelled: []responses.Appointment{},
	}

	for _, appointment := range appointments {
		displayStatus := Classify(appointment, referenceDate)
		appointment.DisplayStatus = displayStatus

		switch {
		case displayStatus == models.DisplayStatusCancelled:
			buckets.Cancelled = append(buckets.Cancelled, appointment)
		case displayStatus == models.DisplayStatusCompleted:
			buckets.Completed = append(buckets.Completed, appointment)
		case displayStatus.IsToday():
			buckets.Today = append(buckets.Today, appointment)
		default:
			buckets.Upcoming = append(buckets.Upcoming, appointment)
		}
	}

	return buckets
}
