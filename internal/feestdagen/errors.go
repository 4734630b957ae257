package feestdagen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Supported range for year input
const (
	MinYear = 1
	MaxYear = 9999
)

// ErrInvalidYear is matched by every *InvalidYearError via errors.Is
var ErrInvalidYear = errors.New("invalid year")

// InvalidYearError reports year input that is not an integer in [MinYear, MaxYear]
type InvalidYearError struct {
	Input  string
	Reason string
}

func (e *InvalidYearError) Error() string {
	return fmt.Sprintf("ongeldig jaar %q: %s", e.Input, e.Reason)
}

// Is makes errors.Is(err, ErrInvalidYear) succeed
func (e *InvalidYearError) Is(target error) bool {
	return target == ErrInvalidYear
}

// ParseYear converts user input to a year
func ParseYear(input string) (int, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, &InvalidYearError{Input: input, Reason: "geen jaar opgegeven"}
	}

	year, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &InvalidYearError{Input: input, Reason: "geen geheel getal"}
	}

	if err := ValidateYear(year); err != nil {
		return 0, err
	}
	return year, nil
}

// ValidateYear checks that year is within [MinYear, MaxYear]
func ValidateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return &InvalidYearError{
			Input:  strconv.Itoa(year),
			Reason: fmt.Sprintf("buiten bereik %d-%d", MinYear, MaxYear),
		}
	}
	return nil
}
