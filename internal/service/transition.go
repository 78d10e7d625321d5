package service

import (
	"fmt"

	"github.com/rinserepeat/ordertrack/internal/customerror"
	"github.com/rinserepeat/ordertrack/internal/models"
)

// TransitionWriteSet computes the write-set for moving an order to the target
// status:
//
//   - the status field becomes target;
//   - the date field bound to target is stamped with today, but only when it
//     is currently empty, so re-entering a status never rewrites history;
//   - the date fields of statuses after target are cleared, so stepping
//     backward invalidates progress recorded past that point.
//
// Date fields at or before target are untouched.
func TransitionWriteSet(order models.Order, target models.OrderStatus, today string) (models.WriteSet, error) {
	if !target.Valid() {
		return models.WriteSet{}, customerror.NewValidationError(fmt.Sprintf("unknown order status %q", target))
	}
	ws := models.WriteSet{
		Status: target,
		Clear:  models.StatusesAfter(target),
	}
	if order.DateFor(target) == "" {
		ws.StampDate = today
	}
	return ws, nil
}
