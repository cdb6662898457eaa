package fp

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Validators return Either rather than error so callers can chain them with
// FlatMap: the first Left short-circuits and its message is the one surfaced.
// There is no automatic accumulation across independent validations.

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func ValidatePositive(value int, field string) Either[string, int] {
	if value > 0 {
		return Right[string](value)
	}
	return Left[string, int](fmt.Sprintf("%s must be positive", field))
}

func ValidateNonEmpty(value, field string) Either[string, string] {
	if strings.TrimSpace(value) != "" {
		return Right[string](value)
	}
	return Left[string, string](fmt.Sprintf("%s cannot be empty", field))
}

func ValidateEmail(email string) Either[string, string] {
	if emailPattern.MatchString(email) {
		return Right[string](email)
	}
	return Left[string, string]("invalid email format")
}

// DateRange is a validated (start, end) pair with start strictly before end.
type DateRange struct {
	Start string
	End   string
}

func ValidateDateRange(start, end string) Either[string, DateRange] {
	s, err := time.Parse(time.DateOnly, start)
	if err != nil {
		return Left[string, DateRange]("invalid date format")
	}
	e, err := time.Parse(time.DateOnly, end)
	if err != nil {
		return Left[string, DateRange]("invalid date format")
	}
	if !s.Before(e) {
		return Left[string, DateRange]("end date must be after start date")
	}
	return Right[string](DateRange{Start: start, End: end})
}
