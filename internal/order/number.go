package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yzxsolutions/soofi-mandi-sub000/internal/model"
)

// Number formats a human-readable order number from the creation time and the
// order id, e.g. "SM-20260828-9F2C41". Uniqueness comes from the uuid order
// id; the number is presentation only.
func Number(at time.Time, id uuid.UUID) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))[:6]
	return fmt.Sprintf("SM-%s-%s", at.Format("20060102"), suffix)
}

// Advance moves the order one step forward in its lifecycle and appends the
// transition to the status history. Backward or skipping transitions are
// rejected; items and totals are never touched.
func Advance(o *model.Order, to model.OrderStatus, at time.Time) error {
	if o == nil {
		return model.ErrOrderNotFound
	}
	if !model.CanTransition(o.Status, to) {
		return model.ErrInvalidTransition
	}
	o.Status = to
	o.StatusHistory = append(o.StatusHistory, model.StatusChange{Status: to, At: at})
	return nil
}
