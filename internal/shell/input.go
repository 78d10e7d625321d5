package shell

import (
	"strconv"
	"strings"

	"github.com/rinserepeat/ordertrack/internal/customerror"
)

// ParseOrderID converts user input to a validated order id. The re-prompt
// loop lives in the shell, not here.
func ParseOrderID(input string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, customerror.NewValidationError("order ID must be a number")
	}
	if id <= 0 {
		return 0, customerror.NewValidationError("order ID must be greater than 0")
	}
	return id, nil
}

// ParseCount parses an item count. Empty input means zero.
func ParseCount(input string) (int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, nil
	}
	count, err := strconv.Atoi(trimmed)
	if err != nil || count < 0 {
		return 0, customerror.NewValidationError("number of items must be a positive number or empty/zero")
	}
	return count, nil
}
