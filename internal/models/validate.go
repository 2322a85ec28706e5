package models

import (
	"fmt"
	"strings"
)

// FieldError names one invalid field in a payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors collects every invalid field so the caller sees the whole
// problem at once instead of fixing one field per round trip.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(parts, "; ")
}

// Validate checks the order against the schema rules. It assumes defaults
// (qty, payment status) have already been applied and returns nil when the
// order is persistable.
func (o Order) Validate() ValidationErrors {
	var errs ValidationErrors

	if len(o.Items) == 0 {
		errs = append(errs, FieldError{Field: "items", Message: "at least one item is required"})
	}

	for i, item := range o.Items {
		prefix := fmt.Sprintf("items[%d]", i)
		if strings.TrimSpace(item.ProductID) == "" {
			errs = append(errs, FieldError{Field: prefix + ".product_id", Message: "product_id is required"})
		}
		if strings.TrimSpace(item.Title) == "" {
			errs = append(errs, FieldError{Field: prefix + ".title", Message: "title is required"})
		}
		if item.Price < 0 {
			errs = append(errs, FieldError{Field: prefix + ".price", Message: "price cannot be negative"})
		}
		if item.Qty < 1 {
			errs = append(errs, FieldError{Field: prefix + ".qty", Message: "qty must be at least 1"})
		}
	}

	if o.Shipping < 0 {
		errs = append(errs, FieldError{Field: "shipping", Message: "shipping cannot be negative"})
	}

	errs = append(errs, o.Address.validate()...)
	errs = append(errs, o.Payment.validate()...)

	return errs
}

func (a Address) validate() ValidationErrors {
	var errs ValidationErrors

	required := []struct {
		field string
		value string
	}{
		{"address.name", a.Name},
		{"address.phone", a.Phone},
		{"address.line1", a.Line1},
		{"address.city", a.City},
		{"address.state", a.State},
		{"address.zip", a.Zip},
	}

	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, FieldError{Field: r.field, Message: "required"})
		}
	}

	return errs
}

func (p Payment) validate() ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(p.Method) == "" {
		errs = append(errs, FieldError{Field: "payment.method", Message: "method is required"})
	}
	if strings.TrimSpace(p.Status) == "" {
		errs = append(errs, FieldError{Field: "payment.status", Message: "status is required"})
	}

	return errs
}
