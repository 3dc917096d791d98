// Package validator checks a booking draft field by field before submission.
// Field errors are reported all at once, one message per field, using the
// exact strings the presentation layer renders inline. "Today" is always
// injected by the caller so the rules stay deterministic under test.
package validator

import (
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"

	"adbooking/internal/domains/booking/model"
	"adbooking/shared/datespan"
)

// MinBookingDays is the shortest bookable span.
const MinBookingDays = 7

// Field keys for the error set. General carries submission-time backend
// failures and is never produced by ValidateDraft itself.
const (
	FieldAdvertiserName  = "advertiserName"
	FieldAdvertiserEmail = "advertiserEmail"
	FieldStartDate       = "startDate"
	FieldEndDate         = "endDate"
	FieldGeneral         = "general"
)

var validate = val.New(val.WithRequiredStructEnabled())

// Errors is the field-keyed error set. The draft is submittable if and only
// if the set is empty.
type Errors map[string]string

func (e Errors) Empty() bool {
	return len(e) == 0
}

func (e Errors) Has(field string) bool {
	_, ok := e[field]

	return ok
}

// ValidateDraft evaluates every field rule independently against the given
// draft and calendar day. The time-of-day part of today is ignored.
func ValidateDraft(draft model.Draft, today time.Time) Errors {
	errs := Errors{}

	if strings.TrimSpace(draft.AdvertiserName) == "" {
		errs[FieldAdvertiserName] = "Name is required"
	}

	if strings.TrimSpace(draft.AdvertiserEmail) == "" {
		errs[FieldAdvertiserEmail] = "Email is required"
	} else if validate.Var(draft.AdvertiserEmail, "email") != nil {
		errs[FieldAdvertiserEmail] = "Invalid email format"
	}

	start, startErr := checkStartDate(draft.StartDate, today, errs)
	checkEndDate(draft.EndDate, start, startErr, errs)

	return errs
}

func checkStartDate(value string, today time.Time, errs Errors) (time.Time, bool) {
	if value == "" {
		errs[FieldStartDate] = "Start date is required"

		return time.Time{}, false
	}

	start, err := datespan.Parse(value)
	if err != nil {
		errs[FieldStartDate] = "Invalid start date"

		return time.Time{}, false
	}

	// start == today is rejected too: the earliest bookable day is tomorrow
	if datespan.DaysBetween(today, start) < 1 {
		errs[FieldStartDate] = "Start date must be at least tomorrow"
	}

	return start, true
}

func checkEndDate(value string, start time.Time, startParsed bool, errs Errors) {
	if value == "" {
		errs[FieldEndDate] = "End date is required"

		return
	}

	end, err := datespan.Parse(value)
	if err != nil {
		errs[FieldEndDate] = "Invalid end date"

		return
	}

	if !startParsed {
		// range checks are meaningless against a missing or unparsable start
		return
	}

	days := datespan.DaysBetween(start, end)
	if days <= 0 {
		errs[FieldEndDate] = "End date must be after start date"
	} else if days < MinBookingDays {
		errs[FieldEndDate] = "End date must be after start date. Minimum booking duration: 7 days"
	}
}
