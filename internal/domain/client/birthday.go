package client

import (
	"sort"
	"time"

	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
)

// BirthdayWindowMonths é a janela padrão, em meses, de aniversários próximos
const BirthdayWindowMonths = 3

// Birthday é um aniversário próximo de um cliente
type Birthday struct {
	Client        *Client   `json:"client"`
	NextBirthday  time.Time `json:"next_birthday"`
	DaysRemaining int       `json:"days_remaining"`
	Age           int       `json:"age"`
}

// NextBirthday calcula o próximo aniversário a partir de now.
// O aniversário de hoje conta como próximo. 29/02 cai em 28/02 nos anos não bissextos.
func NextBirthday(birth, now time.Time) time.Time {
	today := entity.StartOfDay(now)
	next := birthdayIn(birth, today.Year(), today.Location())
	if today.After(next) {
		next = birthdayIn(birth, today.Year()+1, today.Location())
	}
	return next
}

func birthdayIn(birth time.Time, year int, loc *time.Location) time.Time {
	month, day := birth.Month(), birth.Day()
	if month == time.February && day == 29 && !isLeap(year) {
		day = 28
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// UpcomingBirthdays lista os clientes cujo próximo aniversário cai antes de now + months meses,
// ordenados pelos dias restantes
func UpcomingBirthdays(clients []*Client, now time.Time, months int) []Birthday {
	today := entity.StartOfDay(now)
	limit := today.AddDate(0, months, 0)

	out := make([]Birthday, 0)
	for _, c := range clients {
		if c == nil || c.BirthDate == nil {
			continue
		}
		next := NextBirthday(*c.BirthDate, today)
		if !next.Before(limit) {
			continue
		}
		out = append(out, Birthday{
			Client:        c,
			NextBirthday:  next,
			DaysRemaining: int(next.Sub(today).Hours() / 24),
			Age:           next.Year() - c.BirthDate.Year(),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NextBirthday.Before(out[j].NextBirthday)
	})
	return out
}
