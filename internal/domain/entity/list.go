// Package entity define o contrato comum de listagem das entidades.
package entity

import (
	"errors"
	"strings"
)

// ErrInvalidSort indica um campo de ordenação não permitido
var ErrInvalidSort = errors.New("campo de ordenação inválido")

// DefaultSortField é usado quando nenhuma ordenação é informada
const DefaultSortField = "created_date"

// Sort representa uma ordenação no formato "-campo" (decrescente) ou "campo"
type Sort struct {
	Field string
	Desc  bool
}

// ParseSort interpreta a especificação de ordenação. Vazio retorna a ordenação padrão.
func ParseSort(raw string) Sort {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Sort{Field: DefaultSortField, Desc: true}
	}
	if strings.HasPrefix(raw, "-") {
		return Sort{Field: strings.TrimPrefix(raw, "-"), Desc: true}
	}
	return Sort{Field: strings.TrimPrefix(raw, "+")}
}

// String devolve a especificação no formato original
func (s Sort) String() string {
	if s.Desc {
		return "-" + s.Field
	}
	return s.Field
}

// ListOptions agrupa os parâmetros de listagem
type ListOptions struct {
	Sort   Sort
	Search string
}

// NewListOptions monta ListOptions a partir dos parâmetros de consulta
func NewListOptions(sortParam, search string) ListOptions {
	return ListOptions{Sort: ParseSort(sortParam), Search: strings.TrimSpace(search)}
}

// ContainsFold informa se substr aparece em s ignorando maiúsculas/minúsculas
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// Filter retorna os itens que satisfazem match. Busca vazia devolve tudo.
func Filter[T any](items []T, search string, match func(T, string) bool) []T {
	if search == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if match(it, search) {
			out = append(out, it)
		}
	}
	return out
}

// IndexBy constrói um mapa id -> registro para exibir chaves estrangeiras
func IndexBy[T any](items []T, id func(T) string) map[string]T {
	out := make(map[string]T, len(items))
	for _, it := range items {
		out[id(it)] = it
	}
	return out
}
