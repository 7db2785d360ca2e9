// Package age считает полный возраст в годах по дате рождения.
package age

import (
	"time"
)

// FullYears возвращает количество полных лет между датой рождения и датой now.
// Считается по календарю, а не делением количества дней: год прибавляется
// только после того, как день рождения в текущем году уже наступил.
func FullYears(birthDate, now time.Time) int {
	years := now.Year() - birthDate.Year()

	// Если день рождения в этом году еще не наступил, вычитаем год
	if now.Month() < birthDate.Month() ||
		(now.Month() == birthDate.Month() && now.Day() < birthDate.Day()) {
		years--
	}

	if years < 0 {
		return 0
	}
	return years
}
