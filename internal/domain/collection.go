package domain

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Entity é qualquer registro endereçável por ID dentro de uma coleção.
type Entity interface {
	GetID() string
}

// Record é uma entidade validável que sabe receber um ID.
type Record[T any] interface {
	Entity
	Validate() error
	WithID(id string) T
}

// Collection é uma lista ordenada por inserção. O valor zero é uma coleção vazia pronta para uso.
// Não há índice: toda busca é linear.
type Collection[T Entity] struct {
	items []T
}

func NewCollection[T Entity](items ...T) Collection[T] {
	c := Collection[T]{items: make([]T, 0, len(items))}
	c.items = append(c.items, items...)
	return c
}

// Add acrescenta a entidade ao final da coleção.
func (c *Collection[T]) Add(e T) {
	c.items = append(c.items, e)
}

// Update substitui a entidade com o mesmo ID. Não insere quando o ID não existe.
func (c *Collection[T]) Update(e T) bool {
	for i := range c.items {
		if c.items[i].GetID() == e.GetID() {
			c.items[i] = e
			return true
		}
	}
	return false
}

// Remove filtra a entidade com o ID informado.
func (c *Collection[T]) Remove(id string) bool {
	kept := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if item.GetID() != id {
			kept = append(kept, item)
		}
	}
	removed := len(kept) != len(c.items)
	c.items = kept
	return removed
}

// ImportMany insere a lista no início da coleção, preservando a ordem da lista.
func (c *Collection[T]) ImportMany(list []T) {
	if len(list) == 0 {
		return
	}
	merged := make([]T, 0, len(list)+len(c.items))
	merged = append(merged, list...)
	merged = append(merged, c.items...)
	c.items = merged
}

func (c Collection[T]) Find(id string) (T, bool) {
	for _, item := range c.items {
		if item.GetID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (c Collection[T]) Filter(pred func(T) bool) []T {
	out := make([]T, 0)
	for _, item := range c.items {
		if pred(item) {
			out = append(out, item)
		}
	}
	return out
}

// All retorna uma cópia dos itens.
func (c Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c Collection[T]) Len() int {
	return len(c.items)
}

func (c Collection[T]) Clone() Collection[T] {
	return Collection[T]{items: c.All()}
}

func (c Collection[T]) MarshalJSON() ([]byte, error) {
	if c.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.items)
}

// UnmarshalJSON aceita null como coleção vazia.
func (c *Collection[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	if items == nil {
		items = make([]T, 0)
	}
	c.items = items
	return nil
}
