package entity

import "time"

// StartOfDay retorna a meia-noite do dia de t no mesmo fuso
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay compara apenas a data de calendário, no fuso de a
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// MonthKey devolve a chave "yyyy-MM" usada nos gráficos mensais
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// LastMonths devolve as chaves dos últimos n meses, do mais antigo ao atual
func LastMonths(now time.Time, n int) []string {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	keys := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		keys = append(keys, MonthKey(first.AddDate(0, -i, 0)))
	}
	return keys
}
