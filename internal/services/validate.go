package services

import (
	"math"
	"strings"
)

func requireNumber(field string, v *float64) (float64, error) {
	if v == nil {
		return 0, ErrBadRequest(field + " is required")
	}
	return checkNumber(field, *v)
}

func optionalNumber(field string, v *float64, fallback float64) (float64, error) {
	if v == nil {
		return fallback, nil
	}
	return checkNumber(field, *v)
}

func checkNumber(field string, v float64) (float64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrBadRequest(field + " must be a number")
	}
	if v < 0 {
		return 0, ErrBadRequest(field + " must not be negative")
	}
	return v, nil
}

func requireText(field, v string) (string, error) {
	value := strings.TrimSpace(v)
	if value == "" {
		return "", ErrBadRequest(field + " is required")
	}
	return value, nil
}

func requireID(field string, id int64) error {
	if id <= 0 {
		return ErrBadRequest(field + " is required")
	}
	return nil
}

// optionalText trims v and maps blank to nil.
func optionalText(v *string) *string {
	if v == nil {
		return nil
	}
	value := strings.TrimSpace(*v)
	if value == "" {
		return nil
	}
	return &value
}
