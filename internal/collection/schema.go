package collection

import (
	"slices"
	"strings"
	"time"
)

// Op вид сравнения в предикате фильтра.
type Op int

const (
	// Exact точное совпадение значения поля.
	Exact Op = iota
	// Contains подстрока без учёта регистра.
	Contains
	// AnyOf пересечение значений поля с набором.
	AnyOf
)

// Predicate условие фильтра. Условие выполняется, если хотя бы одно из
// перечисленных полей подходит. Поле, не объявленное в схеме, не подходит никогда.
type Predicate struct {
	Fields []string
	Op     Op
	Values []string
}

// Eq условие точного совпадения поля.
func Eq(field, value string) Predicate {
	return Predicate{Fields: []string{field}, Op: Exact, Values: []string{value}}
}

// Search условие поиска подстроки в любом из полей.
func Search(value string, fields ...string) Predicate {
	return Predicate{Fields: fields, Op: Contains, Values: []string{value}}
}

// In условие «значение поля входит в набор».
func In(field string, values ...string) Predicate {
	return Predicate{Fields: []string{field}, Op: AnyOf, Values: values}
}

// Scope область действия ограничения уникальности.
type Scope int

const (
	// Global ключ уникален среди записей всех владельцев.
	Global Scope = iota
	// Owner ключ уникален среди записей одного владельца.
	Owner
)

// Constraint ограничение уникальности. Key возвращает ok=false для
// записей, которые в проверке не участвуют.
type Constraint[T any] struct {
	Name  string
	Scope Scope
	Key   func(*T) (key string, ok bool)
	Err   error
}

// Schema описание типа сущности для движка коллекций.
type Schema[T any] struct {
	// Name префикс ключей кэша и имя коллекции в хранилище.
	Name string
	// Fields поля, по которым разрешена фильтрация.
	Fields map[string]func(*T) []string
	// Status текущий тег статуса записи.
	Status func(*T) string
	// Terminal тег статуса мягко удалённой записи.
	Terminal string
	// SoftDelete переводит запись в терминальный статус.
	SoftDelete func(*T)
	// Less порядок выдачи списка. nil означает порядок вставки.
	Less func(a, b *T) bool
	// Constraints проверяются перед каждой записью.
	Constraints []Constraint[T]
	// Defaults заполняет опущенные поля при создании.
	Defaults func(item *T, now time.Time)
	// OnUpdate вызывается после применения патча, до проверки ограничений.
	OnUpdate func(before, after *T, now time.Time)
}

// Filter условия отбора записей.
type Filter struct {
	// Status пустая строка выбирает записи не в терминальном статусе,
	// StatusAll выбирает все, иначе точное совпадение статуса.
	Status     string
	Predicates []Predicate
}

// StatusAll селектор статуса, выбирающий все записи.
const StatusAll = "all"

func (s *Schema[T]) terminal(item *T) bool {
	return s.Status != nil && s.Status(item) == s.Terminal
}

func (s *Schema[T]) matchStatus(item *T, selector string) bool {
	switch selector {
	case StatusAll:
		return true
	case "":
		return !s.terminal(item)
	default:
		return s.Status != nil && s.Status(item) == selector
	}
}

func (s *Schema[T]) match(item *T, p Predicate) bool {
	for _, name := range p.Fields {
		accessor, ok := s.Fields[name]
		if !ok {
			continue
		}
		if matchValues(accessor(item), p) {
			return true
		}
	}
	return false
}

func matchValues(values []string, p Predicate) bool {
	switch p.Op {
	case Exact:
		if len(p.Values) == 0 {
			return false
		}
		return slices.Contains(values, p.Values[0])
	case Contains:
		for _, needle := range p.Values {
			needle = strings.ToLower(needle)
			for _, v := range values {
				if strings.Contains(strings.ToLower(v), needle) {
					return true
				}
			}
		}
		return false
	case AnyOf:
		for _, v := range values {
			if slices.Contains(p.Values, v) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func (s *Schema[T]) matchAll(item *T, f Filter) bool {
	if !s.matchStatus(item, f.Status) {
		return false
	}
	for _, p := range f.Predicates {
		if !s.match(item, p) {
			return false
		}
	}
	return true
}
