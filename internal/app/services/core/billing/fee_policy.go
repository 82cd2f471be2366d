package billing

import (
	"strings"

	"mediconnect-service/internal/pkg/dto/responses"
)

// EvaluateFee decides whether a consultation fee is editable and what amount
// to present. Plans match on trimmed, lower-cased equality; a covered visit
// locks the fee at zero, an uncovered one keeps the stored amount editable.
// Two empty plans count as a match.
func EvaluateFee(doctorHealthPlan, patientHealthPlan string, storedFee *float64) responses.FeePolicy {
	if plansMatch(doctorHealthPlan, patientHealthPlan) {
		return responses.FeePolicy{Editable: false, Amount: 0}
	}

	amount := 0.0
	if storedFee != nil {
		amount = *storedFee
	}
	return responses.FeePolicy{Editable: true, Amount: amount}
}

func plansMatch(doctorHealthPlan, patientHealthPlan string) bool {
	return strings.ToLower(strings.TrimSpace(doctorHealthPlan)) ==
		strings.ToLower(strings.TrimSpace(patientHealthPlan))
}
