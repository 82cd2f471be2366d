package appointments

import (
	"testing"

	"mediconnect-service/internal/app/models"
	"mediconnect-service/internal/pkg/backend_dto"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAppointment(t *testing.T) {
	t.Run("portuguese cancellation spelling folds into CANCELLED", func(t *testing.T) {
		raw := backend_dto.Appointment{ID: 7, Status: "cancelado"}
		normalized := normalizeAppointment(raw)
		assert.Equal(t, models.AppointmentStatusCancelled, normalized.Status)
	})

	t.Run("mixed-case cancelled is upper-cased", func(t *testing.T) {
		raw := backend_dto.Appointment{Status: "Cancelled"}
		assert.Equal(t, models.AppointmentStatusCancelled, normalizeAppointment(raw).Status)
	})

	t.Run("status is trimmed and upper-cased", func(t *testing.T) {
		raw := backend_dto.Appointment{Status: " confirmed "}
		assert.Equal(t, models.AppointmentStatusConfirmed, normalizeAppointment(raw).Status)
	})

	t.Run("valid time carries over as HH:MM", func(t *testing.T) {
		raw := backend_dto.Appointment{Time: backend_dto.FlexTime{Value: "09:30", Valid: true}}
		assert.Equal(t, "09:30", normalizeAppointment(raw).Time)
	})

	t.Run("absent time becomes empty string", func(t *testing.T) {
		raw := backend_dto.Appointment{Time: backend_dto.FlexTime{}}
		assert.Equal(t, "", normalizeAppointment(raw).Time)
	})

	t.Run("fee pointer is preserved", func(t *testing.T) {
		fee := 120.0
		raw := backend_dto.Appointment{ConsultationFee: &fee}
		normalized := normalizeAppointment(raw)
		assert.NotNil(t, normalized.ConsultationFee)
		assert.Equal(t, 120.0, *normalized.ConsultationFee)
	})
}
