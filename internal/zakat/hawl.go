// internal/zakat/hawl.go
package zakat

import (
	"fmt"
	"time"

	"prospera/internal/domain"
	"prospera/internal/util"
)

// HawlDays is one lunar year, the holding period an asset must complete
// before it becomes zakat-eligible. Fixed at 354 days, not the solar 365.
const HawlDays = 354

// HawlStatus is the time-driven eligibility state of an asset.
// The transition Pending -> Eligible is one-way and re-evaluated on every
// query; it is never stored.
type HawlStatus string

const (
	HawlPending  HawlStatus = "PENDING"
	HawlEligible HawlStatus = "ELIGIBLE"
)

// Tracker answers hawl questions against a clock. The clock is injectable
// so boundary behavior can be tested deterministically.
type Tracker struct {
	now func() time.Time
}

// NewTracker returns a Tracker using the system clock.
func NewTracker() *Tracker {
	return &Tracker{now: time.Now}
}

// NewTrackerAt returns a Tracker using the given clock.
func NewTrackerAt(now func() time.Time) *Tracker {
	return &Tracker{now: now}
}

// CompletionDate returns the date the asset's hawl completes: purchase date
// plus 354 days. Fails with ErrMissingPurchaseDate when the asset has no
// purchase date.
func (t *Tracker) CompletionDate(asset *domain.Asset) (time.Time, error) {
	if asset.PurchaseDate == nil {
		return time.Time{}, fmt.Errorf("hawl for asset %s: %w", asset.ID, util.ErrMissingPurchaseDate)
	}
	return asset.PurchaseDate.AddDate(0, 0, HawlDays), nil
}

// HasPassed reports whether the asset's hawl has completed. The boundary is
// inclusive: an asset purchased exactly 354 days ago has passed.
func (t *Tracker) HasPassed(asset *domain.Asset) (bool, error) {
	completion, err := t.CompletionDate(asset)
	if err != nil {
		return false, err
	}
	return !t.now().Before(completion), nil
}

// Status returns the asset's current hawl state.
func (t *Tracker) Status(asset *domain.Asset) (HawlStatus, error) {
	passed, err := t.HasPassed(asset)
	if err != nil {
		return "", err
	}
	if passed {
		return HawlEligible, nil
	}
	return HawlPending, nil
}
