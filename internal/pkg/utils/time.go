package utils

import (
	"preop-service/internal/pkg/constvars"
	"time"
)

// CalculateAge returns completed years between birthDate and now. It reports
// false when the date cannot be parsed or lies in the future.
func CalculateAge(birthDate string, now time.Time) (int, bool) {
	born, err := time.ParseInLocation(constvars.AppDateLayout, birthDate, now.Location())
	if err != nil || born.After(now) {
		return 0, false
	}

	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	return age, true
}
