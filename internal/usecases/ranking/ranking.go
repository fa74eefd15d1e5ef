// Package ranking contém os utilitários de ordenação e seleção usados pelos calculadores
package ranking

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Direction define o sentido da ordenação
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// SortByKey ordena items de forma estável pela chave numérica informada.
// Itens com a mesma chave mantêm a ordem de entrada.
func SortByKey[T any](items []T, direction Direction, key func(T) decimal.Decimal) {
	sort.SliceStable(items, func(i, j int) bool {
		if direction == Descending {
			return key(items[i]).GreaterThan(key(items[j]))
		}
		return key(items[i]).LessThan(key(items[j]))
	})
}

// SortByPriority ordena items de forma estável pela prioridade inteira informada
func SortByPriority[T any](items []T, direction Direction, priority func(T) int) {
	sort.SliceStable(items, func(i, j int) bool {
		if direction == Descending {
			return priority(items[i]) > priority(items[j])
		}
		return priority(items[i]) < priority(items[j])
	})
}

// Top retorna os n primeiros itens (ou todos, se houver menos)
func Top[T any](items []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	if len(items) < n {
		n = len(items)
	}

	out := make([]T, n)
	copy(out, items[:n])
	return out
}

// Tail retorna os n últimos itens em ordem inversa (o último item vem primeiro)
func Tail[T any](items []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	if len(items) < n {
		n = len(items)
	}

	out := make([]T, 0, n)
	for i := len(items) - 1; i >= len(items)-n; i-- {
		out = append(out, items[i])
	}
	return out
}

// Filter retorna os itens que satisfazem o predicado, preservando a ordem
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
