// Package collection реализует обобщённую коллекцию сущностей с областью
// видимости по владельцу: выборку с фильтрами и пагинацией, создание и
// частичное обновление с проверкой уникальности, мягкое удаление через
// смену статуса.
//
// Каждая коллекция защищена собственным RWMutex: мутации держат запись
// на всём отрезке «проверка ограничений, затем запись», чтения держат чтение.
package collection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"github.com/cobusiness02/forgefyt/internal/lib/sl"
)

const (
	// DefaultLimit размер страницы, если он не задан.
	DefaultLimit = 10
	// MaxLimit наибольший допустимый размер страницы.
	MaxLimit = 100
)

// Cache кэш чтения записей по id.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// Patch частичное обновление сущности с закрытым набором полей.
type Patch[T any] interface {
	Apply(*T)
}

// Options необязательные зависимости коллекции.
type Options struct {
	Clock    clock.Clock
	NewID    func() string
	Cache    Cache
	CacheTTL time.Duration
	Logger   *slog.Logger
}

// Query выборка одной страницы.
type Query struct {
	Filter
	Page  int
	Limit int
}

// Page страница результата. Total считается после фильтрации, до нарезки.
type Page[T any] struct {
	Items      []T
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// Collection коллекция сущностей одного типа.
type Collection[T any, P Entity[T]] struct {
	mu       sync.RWMutex
	schema   Schema[T]
	store    Store[T]
	clock    clock.Clock
	newID    func() string
	cache    Cache
	cacheTTL time.Duration
	log      *slog.Logger
}

// New создаёт коллекцию поверх хранилища.
func New[T any, P Entity[T]](schema Schema[T], store Store[T], opts Options) *Collection[T, P] {
	c := &Collection[T, P]{
		schema:   schema,
		store:    store,
		clock:    opts.Clock,
		newID:    opts.NewID,
		cache:    opts.Cache,
		cacheTTL: opts.CacheTTL,
		log:      opts.Logger,
	}
	if c.clock == nil {
		c.clock = clock.New()
	}
	if c.newID == nil {
		c.newID = uuid.NewString
	}
	if c.cacheTTL == 0 {
		c.cacheTTL = 5 * time.Minute
	}
	if c.log == nil {
		c.log = slog.Default()
	}
	c.log = c.log.With(slog.String("collection", schema.Name))
	return c
}

// Now текущее время по часам коллекции.
func (c *Collection[T, P]) Now() time.Time {
	return c.clock.Now()
}

// List возвращает страницу записей владельца.
func (c *Collection[T, P]) List(ctx context.Context, owner string, q Query) (Page[T], error) {
	const op = "collection.List"

	if q.Page == 0 {
		q.Page = 1
	}
	if q.Limit == 0 {
		q.Limit = DefaultLimit
	}
	if q.Page < 1 {
		return Page[T]{}, fmt.Errorf("%s: %w", op, &ValidationError{Field: "page", Message: "must be at least 1"})
	}
	if q.Limit < 1 || q.Limit > MaxLimit {
		return Page[T]{}, fmt.Errorf("%s: %w", op, &ValidationError{Field: "limit", Message: "must be between 1 and 100"})
	}

	c.mu.RLock()
	items, err := c.selectLocked(ctx, &owner, q.Filter)
	c.mu.RUnlock()
	if err != nil {
		return Page[T]{}, fmt.Errorf("%s: %w", op, err)
	}

	total := len(items)
	start := min((q.Page-1)*q.Limit, total)
	end := min(start+q.Limit, total)
	pageItems := make([]T, end-start)
	copy(pageItems, items[start:end])

	return Page[T]{
		Items:      pageItems,
		Page:       q.Page,
		Limit:      q.Limit,
		Total:      total,
		TotalPages: (total + q.Limit - 1) / q.Limit,
	}, nil
}

// Select возвращает все подходящие записи владельца в порядке выдачи списка.
func (c *Collection[T, P]) Select(ctx context.Context, owner string, f Filter) ([]T, error) {
	const op = "collection.Select"
	c.mu.RLock()
	defer c.mu.RUnlock()
	items, err := c.selectLocked(ctx, &owner, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// Lookup ищет подходящие записи среди всех владельцев.
func (c *Collection[T, P]) Lookup(ctx context.Context, f Filter) ([]T, error) {
	const op = "collection.Lookup"
	c.mu.RLock()
	defer c.mu.RUnlock()
	items, err := c.selectLocked(ctx, nil, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return items, nil
}

// Get возвращает запись владельца по id.
func (c *Collection[T, P]) Get(ctx context.Context, owner, id string) (*T, error) {
	const op = "collection.Get"

	if item, ok := c.cached(id); ok {
		if P(item).Meta().OwnerID != owner {
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		}
		return item, nil
	}

	c.mu.RLock()
	item, err := c.getLocked(ctx, owner, id)
	c.mu.RUnlock()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.remember(item)
	return item, nil
}

// Create сохраняет новую запись владельца: назначает id и метки времени,
// заполняет значения по умолчанию и проверяет ограничения.
func (c *Collection[T, P]) Create(ctx context.Context, owner string, item T) (*T, error) {
	const op = "collection.Create"

	c.mu.Lock()
	defer c.mu.Unlock()

	id, err := c.freshIDLocked(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	now := c.clock.Now()
	meta := P(&item).Meta()
	meta.ID = id
	meta.OwnerID = owner
	meta.CreatedAt = now
	meta.UpdatedAt = now
	if c.schema.Defaults != nil {
		c.schema.Defaults(&item, now)
	}

	if err := c.checkLocked(ctx, &item); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := c.store.Put(ctx, item); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.remember(&item)
	return &item, nil
}

// Update применяет патч к записи владельца. updatedAt строго растёт.
func (c *Collection[T, P]) Update(ctx context.Context, owner, id string, patch Patch[T]) (*T, error) {
	const op = "collection.Update"

	c.mu.Lock()
	defer c.mu.Unlock()

	current, err := c.getLocked(ctx, owner, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	before := *current
	after := *current
	patch.Apply(&after)

	now := c.nextStamp(P(&before).Meta().UpdatedAt)
	*P(&after).Meta() = *P(&before).Meta()
	P(&after).Meta().UpdatedAt = now
	if c.schema.OnUpdate != nil {
		c.schema.OnUpdate(&before, &after, now)
	}

	if err := c.checkLocked(ctx, &after); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err := c.store.Put(ctx, after); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.remember(&after)
	return &after, nil
}

// SoftDelete переводит запись в терминальный статус. Повторный вызов
// возвращает запись без изменений и без ошибки.
func (c *Collection[T, P]) SoftDelete(ctx context.Context, owner, id string) (*T, error) {
	const op = "collection.SoftDelete"

	c.mu.Lock()
	defer c.mu.Unlock()

	item, err := c.getLocked(ctx, owner, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if c.schema.terminal(item) {
		return item, nil
	}
	c.schema.SoftDelete(item)
	meta := P(item).Meta()
	meta.UpdatedAt = c.nextStamp(meta.UpdatedAt)

	if err := c.store.Put(ctx, *item); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c.remember(item)
	return item, nil
}

// Remove физически удаляет запись владельца.
func (c *Collection[T, P]) Remove(ctx context.Context, owner, id string) error {
	const op = "collection.Remove"

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.getLocked(ctx, owner, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := c.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	c.forget(id)
	return nil
}

// Seed записывает готовые записи как есть, без проверки ограничений.
// Запись с id, уже лежащим в хранилище, пропускается: повторный запуск
// не затирает изменения. Пустой id назначается, пустые метки времени
// выставляются в текущее время. Записанное попадает в кэш.
func (c *Collection[T, P]) Seed(ctx context.Context, items ...T) error {
	const op = "collection.Seed"

	c.mu.Lock()
	defer c.mu.Unlock()

	written := 0
	for _, item := range items {
		meta := P(&item).Meta()
		if meta.ID == "" {
			id, err := c.freshIDLocked(ctx)
			if err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			meta.ID = id
		} else {
			_, err := c.store.Get(ctx, meta.ID)
			if err == nil {
				continue
			}
			if !errors.Is(err, ErrNotFound) {
				return fmt.Errorf("%s: %w", op, err)
			}
		}
		if meta.CreatedAt.IsZero() {
			meta.CreatedAt = c.clock.Now()
		}
		if meta.UpdatedAt.Before(meta.CreatedAt) {
			meta.UpdatedAt = meta.CreatedAt
		}
		if err := c.store.Put(ctx, item); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		c.remember(&item)
		written++
	}
	c.log.Debug("seeded", slog.Int("written", written), slog.Int("skipped", len(items)-written))
	return nil
}

func (c *Collection[T, P]) selectLocked(ctx context.Context, owner *string, f Filter) ([]T, error) {
	all, err := c.store.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(all))
	for i := range all {
		item := &all[i]
		if owner != nil && P(item).Meta().OwnerID != *owner {
			continue
		}
		if c.schema.matchAll(item, f) {
			out = append(out, *item)
		}
	}
	if c.schema.Less != nil {
		sort.SliceStable(out, func(i, j int) bool {
			a, b := &out[i], &out[j]
			if c.schema.Less(a, b) {
				return true
			}
			if c.schema.Less(b, a) {
				return false
			}
			return P(a).Meta().ID < P(b).Meta().ID
		})
	}
	return out, nil
}

func (c *Collection[T, P]) getLocked(ctx context.Context, owner, id string) (*T, error) {
	item, err := c.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if P(&item).Meta().OwnerID != owner {
		return nil, ErrNotFound
	}
	return &item, nil
}

func (c *Collection[T, P]) checkLocked(ctx context.Context, item *T) error {
	if len(c.schema.Constraints) == 0 {
		return nil
	}
	all, err := c.store.List(ctx)
	if err != nil {
		return err
	}
	meta := P(item).Meta()
	for _, cons := range c.schema.Constraints {
		key, ok := cons.Key(item)
		if !ok {
			continue
		}
		for i := range all {
			other := &all[i]
			om := P(other).Meta()
			if om.ID == meta.ID {
				continue
			}
			if cons.Scope == Owner && om.OwnerID != meta.OwnerID {
				continue
			}
			if otherKey, ok := cons.Key(other); ok && otherKey == key {
				return &ConflictError{Constraint: cons.Name, Key: key, Err: cons.Err}
			}
		}
	}
	return nil
}

func (c *Collection[T, P]) freshIDLocked(ctx context.Context) (string, error) {
	for {
		id := c.newID()
		_, err := c.store.Get(ctx, id)
		if errors.Is(err, ErrNotFound) {
			return id, nil
		}
		if err != nil {
			return "", err
		}
	}
}

// nextStamp возвращает текущее время, но строго позже prev.
func (c *Collection[T, P]) nextStamp(prev time.Time) time.Time {
	now := c.clock.Now()
	if !now.After(prev) {
		now = prev.Add(time.Nanosecond)
	}
	return now
}

func (c *Collection[T, P]) cacheKey(id string) string {
	return c.schema.Name + ":" + id
}

func (c *Collection[T, P]) cached(id string) (*T, bool) {
	if c.cache == nil {
		return nil, false
	}
	var item T
	found, err := c.cache.Get(c.cacheKey(id), &item)
	if err != nil {
		c.log.Warn("cache read failed", slog.String("id", id), sl.Err(err))
		return nil, false
	}
	if !found {
		return nil, false
	}
	return &item, true
}

func (c *Collection[T, P]) remember(item *T) {
	if c.cache == nil {
		return
	}
	id := P(item).Meta().ID
	if err := c.cache.Set(c.cacheKey(id), item, c.cacheTTL); err != nil {
		c.log.Warn("cache write failed", slog.String("id", id), sl.Err(err))
	}
}

func (c *Collection[T, P]) forget(id string) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Invalidate(c.cacheKey(id)); err != nil {
		c.log.Warn("cache invalidate failed", slog.String("id", id), sl.Err(err))
	}
}
