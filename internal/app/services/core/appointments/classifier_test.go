package appointments

import (
	"testing"
	"time"

	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
)

var reference = time.Date(2025, 3, 10, 15, 0, 0, 0, time.Local)

func TestClassify(t *testing.T) {
	t.Run("cancelled wins over any date", func(t *testing.T) {
		appointment := responses.Appointment{Status: models.AppointmentStatusCancelled, Date: "2025-03-10"}
		assert.Equal(t, models.DisplayStatusCancelled, Classify(appointment, reference))
	})

	t.Run("completed wins over any date", func(t *testing.T) {
		appointment := responses.Appointment{Status: models.AppointmentStatusCompleted, Date: "2025-03-10"}
		assert.Equal(t, models.DisplayStatusCompleted, Classify(appointment, reference))
	})

	t.Run("same-day confirmed", func(t *testing.T) {
		appointment := responses.Appointment{Status: models.AppointmentStatusConfirmed, Date: "2025-03-10"}
		assert.Equal(t, models.DisplayStatusTodayConfirmed, Classify(appointment, reference))
	})

	t.Run("same-day waiting list", func(t *testing.T) {
		appointment := responses.Appointment{Status: models.AppointmentStatusPending, Date: "2025-03-10", WaitingList: true}
		assert.Equal(t, models.DisplayStatusTodayWaiting, Classify(appointment, reference))
	})

	t.Run("future date confirmed", func(t *testing.T) {
		appointment := responses.Appointment{Status: models.AppointmentStatusConfirmed, Date: "2025-03-12"}
		assert.Equal(t, models.DisplayStatusUpcomingConfirmed, Classify(appointment, reference))
	})

	t.Run("future date waiting list", func(t *testing.T) {
		appointment := responses.Appointment{Status: models.AppointmentStatusPending, Date: "2025-04-01", WaitingList: true}
		assert.Equal(t, models.DisplayStatusUpcomingWaiting, Classify(appointment, reference))
	})

	t.Run("malformed date falls back to upcoming", func(t *testing.T) {
		appointment := responses.Appointment{Status: models.AppointmentStatusConfirmed, Date: "not-a-date"}
		assert.Equal(t, models.DisplayStatusUpcomingConfirmed, Classify(appointment, reference))
	})

	t.Run("classification is idempotent", func(t *testing.T) {
		appointment := responses.Appointment{Status: models.AppointmentStatusConfirmed, Date: "2025-03-10"}
		first := Classify(appointment, reference)
		second := Classify(appointment, reference)
		assert.Equal(t, first, second)
	})
}

func TestPartition(t *testing.T) {
	input := []responses.Appointment{
		{ID: 1, Status: models.AppointmentStatusConfirmed, Date: "2025-03-10"},
		{ID: 2, Status: models.AppointmentStatusConfirmed, Date: "2025-03-15"},
		{ID: 3, Status: models.AppointmentStatusCompleted, Date: "2025-02-01"},
		{ID: 4, Status: models.AppointmentStatusCancelled, Date: "2025-03-10"},
		{ID: 5, Status: models.AppointmentStatusPending, Date: "2025-03-10", WaitingList: true},
		{ID: 6, Status: models.AppointmentStatusConfirmed, Date: "2025-03-20"},
	}

	buckets := Partition(input, reference)

	t.Run("buckets are a disjoint cover of the input", func(t *testing.T) {
		total := len(buckets.Today) + len(buckets.Upcoming) + len(buckets.Completed) + len(buckets.Cancelled)
		assert.Equal(t, len(input), total)
	})

	t.Run("relative order is preserved within each bucket", func(t *testing.T) {
		assert.Equal(t, []int{1, 5}, ids(buckets.Today))
		assert.Equal(t, []int{2, 6}, ids(buckets.Upcoming))
		assert.Equal(t, []int{3}, ids(buckets.Completed))
		assert.Equal(t, []int{4}, ids(buckets.Cancelled))
	})

	t.Run("cancelled never appears in active buckets", func(t *testing.T) {
		for _, appointment := range append(buckets.Today, buckets.Upcoming...) {
			assert.NotEqual(t, models.AppointmentStatusCancelled, appointment.Status)
		}
	})

	t.Run("display status is stamped on every record", func(t *testing.T) {
		assert.Equal(t, models.DisplayStatusTodayConfirmed, buckets.Today[0].DisplayStatus)
		assert.Equal(t, models.DisplayStatusTodayWaiting, buckets.Today[1].DisplayStatus)
		assert.Equal(t, models.DisplayStatusCompleted, buckets.Completed[0].DisplayStatus)
	})

	t.Run("empty input yields empty buckets", func(t *testing.T) {
		empty := Partition(nil, reference)
		assert.Empty(t, empty.Today)
		assert.Empty(t, empty.Upcoming)
		assert.Empty(t, empty.Completed)
		assert.Empty(t, empty.Cancelled)
	})
}

func ids(appointments []responses.Appointment) []int {
	result := make([]int, 0, len(appointments))
	for _, appointment := range appointments {
		result = append(result, appointment.ID)
	}
	return result
}
