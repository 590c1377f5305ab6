package services

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/yungbote/crm-backend/internal/platform/apierr"
)

// Accepted phone shapes: international (optional +, 10-15 digits) or grouped
// local form ddd-ddd-dddd.
var phonePattern = regexp.MustCompile(`^(\+?\d{10,15}|\d{3}-\d{3}-\d{4})$`)

// validPhone treats an absent phone as valid; the field is optional.
func validPhone(phone *string) bool {
	if phone == nil || *phone == "" {
		return true
	}
	return phonePattern.MatchString(*phone)
}

func validatePrice(price decimal.Decimal) error {
	if price.Sign() <= 0 {
		return apierr.InvalidInput("Price must be positive.")
	}
	return nil
}

func validateStock(stock int) error {
	if stock < 0 {
		return apierr.InvalidInput("Stock cannot be negative.")
	}
	return nil
}
