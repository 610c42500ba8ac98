package repository

import (
	"errors"
	"fmt"

	"github.com/hugohenrick/gestor-pme/internal/domain/entity"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation é o código do PostgreSQL para chave duplicada
const uniqueViolation = "23505"

// scanner é satisfeito por pgx.Row e pgx.Rows
type scanner interface {
	Scan(dest ...any) error
}

// orderBy traduz a ordenação pedida para a cláusula ORDER BY usando apenas colunas permitidas.
// O desempate é sempre pela coluna de "id".
func orderBy(s entity.Sort, allowed map[string]string) (string, error) {
	if s.Field == "" {
		s = entity.ParseSort("")
	}
	column, ok := allowed[s.Field]
	if !ok {
		return "", fmt.Errorf("%w: %s", entity.ErrInvalidSort, s.Field)
	}
	direction := "ASC"
	if s.Desc {
		direction = "DESC"
	}
	tiebreak, ok := allowed["id"]
	if !ok {
		tiebreak = "id"
	}
	return fmt.Sprintf(" ORDER BY %s %s, %s", column, direction, tiebreak), nil
}

// baseSortColumns são as colunas de ordenação comuns a todas as tabelas
func baseSortColumns(extra ...string) map[string]string {
	cols := map[string]string{
		"created_date": "created_date",
		"updated_date": "updated_date",
	}
	for _, c := range extra {
		cols[c] = c
	}
	return cols
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// collect percorre as linhas aplicando scan a cada uma
func collect[T any](rows pgx.Rows, scan func(scanner) (T, error)) ([]T, error) {
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer resultados: %w", err)
	}
	return out, nil
}

// affected devolve notFound quando o comando não alterou nenhuma linha
func affected(tag pgconn.CommandTag, notFound error) error {
	if tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}
