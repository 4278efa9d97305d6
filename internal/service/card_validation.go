package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"circula/internal/dto"
	"circula/internal/model"
)

var (
	nonDigit    = regexp.MustCompile(`\D`)
	cvvPattern  = regexp.MustCompile(`^\d{3}$`)
	expiryShape = regexp.MustCompile(`^(\d{2})/(\d{2})$`)
)

// validateCardDetails checks a checkout card and returns it in stored form.
// now decides whether the expiry month has elapsed.
func validateCardDetails(details dto.CardDetails, now time.Time) (*model.Card, error) {
	if !cvvPattern.MatchString(details.CVV) {
		return nil, fmt.Errorf("%w: cvv must be 3 digits", model.ErrInvalidCard)
	}

	return validateCard(details.CardNumber, details.ExpiryDate, details.CardHolderName, now)
}

func validateCard(number, expiry, holder string, now time.Time) (*model.Card, error) {
	digits := nonDigit.ReplaceAllString(number, "")
	if len(digits) != 16 {
		return nil, fmt.Errorf("%w: card number must have 16 digits, got %d", model.ErrInvalidCard, len(digits))
	}

	expiresAt, err := parseExpiry(expiry, now)
	if err != nil {
		return nil, err
	}

	holder = strings.TrimSpace(holder)
	if utf8.RuneCountInString(holder) < 3 {
		return nil, fmt.Errorf("%w: card holder name too short", model.ErrInvalidCard)
	}

	return &model.Card{
		CardNumber:     digits,
		ExpiryDate:     expiresAt,
		CardHolderName: holder,
	}, nil
}

// parseExpiry accepts MM/YY. A card is still valid during its expiry month.
func parseExpiry(expiry string, now time.Time) (time.Time, error) {
	m := expiryShape.FindStringSubmatch(expiry)
	if m == nil {
		return time.Time{}, fmt.Errorf("%w: expiry must be MM/YY", model.ErrInvalidCard)
	}

	month, _ := strconv.Atoi(m[1])
	yy, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("%w: expiry month out of range", model.ErrInvalidCard)
	}

	year := 2000 + yy
	if year < now.Year() || year == now.Year() && month < int(now.Month()) {
		return time.Time{}, fmt.Errorf("%w: card expired", model.ErrInvalidCard)
	}

	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), nil
}
