package usecase

import "time"

// SetNow overrides the clock used by ProcessChargeSuccess in tests.
func SetNow(u *PaymentUseCase, now func() time.Time) {
	u.now = now
}
