package services

import (
	"hotel-frontdesk/models"
)

// ComputeTotal aggregates the amount owed for a booking: the original quoted
// cost, plus every non-cancelled service-request price, plus the operator's
// extra charge. It does not fetch anything; callers supply the requests.
// A negative extra charge is rejected.
func ComputeTotal(b *models.Booking, requests []models.ServiceRequest, extraCharge float64) (float64, error) {
	if extraCharge < 0 {
		return 0, ErrInvalidInput
	}
	total := b.TotalCost + extraCharge
	for _, sr := range requests {
		if sr.Status == models.ServiceRequestCancelled {
			continue
		}
		total += sr.Price
	}
	return total, nil
}

// Reconcile compares total owed against what was already captured.
// Outstanding never goes negative; overpayment is a refund workflow owned
// elsewhere. A method selection is required exactly when something is
// still owed.
func Reconcile(totalOwed, alreadyPaid float64) (outstanding float64, requiresMethod bool) {
	outstanding = totalOwed - alreadyPaid
	if outstanding < 0 {
		outstanding = 0
	}
	return outstanding, outstanding > 0
}

// AmountAlreadyPaid is the single place the "paid means the full quoted
// cost was captured online" policy lives.
func AmountAlreadyPaid(b *models.Booking) float64 {
	if b.PaymentStatus == models.PaymentPaid {
		return b.TotalCost
	}
	return 0
}
