package scoring

import (
	"math"

	"github.com/Dan9191/loan-check/internal/models"
	"github.com/cockroachdb/errors"
)

// ErrPaymentOverflow means the installment does not fit in an int64. No
// household income can cover such a payment.
var ErrPaymentOverflow = errors.New("payment overflow")

// AnnuityPayment returns the fixed monthly installment, rounded up to a whole
// ruble, that repays amount over term months at the given monthly rate.
func AnnuityPayment(amount int64, rate float64, term int64) (int64, error) {
	if term <= 0 {
		return 0, errors.Wrapf(models.ErrInvalidInput, "term must be positive, got %d", term)
	}
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0, errors.Wrapf(models.ErrInvalidInput, "rate must be positive, got %v", rate)
	}
	if amount <= 0 {
		return 0, errors.Wrapf(models.ErrInvalidInput, "amount must be positive, got %d", amount)
	}

	var payment float64
	growth := math.Pow(1+rate, float64(term))
	if math.IsInf(growth, 1) {
		// growth / (growth - 1) tends to 1: interest-only installment
		payment = math.Ceil(float64(amount) * rate)
	} else {
		payment = math.Ceil(float64(amount) * (rate * growth) / (growth - 1))
	}
	if math.IsNaN(payment) || math.IsInf(payment, 0) || payment >= math.MaxInt64 {
		return 0, errors.Wrapf(ErrPaymentOverflow, "amount %d over %d months", amount, term)
	}
	return int64(payment), nil
}
