package usecase_test

import (
	"context"
	"time"

	"github.com/agromanager/agromanager-api/internal/domain/entity"
	"github.com/agromanager/agromanager-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória compartilhados pelos testes do pacote
// ──────────────────────────────────────────────────────────────────────────────

type memCategoryRepo struct {
	categories map[string]*entity.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{categories: map[string]*entity.Category{}}
}

func (r *memCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *memCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *memCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	r.categories[c.ID] = c
	return nil
}

func (r *memCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		copied := *c
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memCategoryRepo) Delete(_ context.Context, id string) error {
	delete(r.categories, id)
	return nil
}

type memItemRepo struct {
	items map[string]*entity.Item
}

func newMemItemRepo() *memItemRepo {
	return &memItemRepo{items: map[string]*entity.Item{}}
}

func (r *memItemRepo) Create(_ context.Context, item *entity.Item) error {
	r.items[item.ID] = item
	return nil
}

func (r *memItemRepo) GetByID(_ context.Context, id string) (*entity.Item, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	copied := *item
	return &copied, nil
}

func (r *memItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.Item, error) {
	return r.GetByID(ctx, id)
}

func (r *memItemRepo) Update(_ context.Context, item *entity.Item) error {
	r.items[item.ID] = item
	return nil
}

func (r *memItemRepo) UpdateQuantity(_ context.Context, id string, quantity int64) error {
	r.items[id].QuantityCurrent = quantity
	return nil
}

func (r *memItemRepo) List(_ context.Context, filter repository.ItemFilter) ([]*entity.Item, error) {
	out := make([]*entity.Item, 0, len(r.items))
	for _, item := range r.items {
		if filter.CategoryID != "" && item.CategoryID != filter.CategoryID {
			continue
		}
		if filter.Active != nil && item.Active != *filter.Active {
			continue
		}
		if filter.LowStock && !item.LowStock() {
			continue
		}
		copied := *item
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memItemRepo) Deactivate(_ context.Context, id string) error {
	r.items[id].Active = false
	return nil
}

func (r *memItemRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

type memMovementRepo struct {
	countByItem map[string]int64
}

func newMemMovementRepo() *memMovementRepo {
	return &memMovementRepo{countByItem: map[string]int64{}}
}

func (r *memMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	r.countByItem[m.ItemID]++
	return nil
}

func (r *memMovementRepo) GetByID(_ context.Context, _ string) (*entity.StockMovement, error) {
	return nil, nil
}

func (r *memMovementRepo) History(_ context.Context, _ repository.MovementFilter) ([]*repository.MovementWithItem, error) {
	return nil, nil
}

func (r *memMovementRepo) Count(_ context.Context, _ repository.MovementFilter) (int64, error) {
	return 0, nil
}

func (r *memMovementRepo) CountByItem(_ context.Context, itemID string) (int64, error) {
	return r.countByItem[itemID], nil
}

func (r *memMovementRepo) SumByItem(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

type memActivityRepo struct {
	activities map[string]*entity.Activity
	logs       []*entity.ActivityLog
}

func newMemActivityRepo() *memActivityRepo {
	return &memActivityRepo{activities: map[string]*entity.Activity{}}
}

func (r *memActivityRepo) Create(_ context.Context, a *entity.Activity) error {
	r.activities[a.ID] = a
	return nil
}

func (r *memActivityRepo) GetByID(_ context.Context, id string) (*entity.Activity, error) {
	a, ok := r.activities[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (r *memActivityRepo) Update(_ context.Context, a *entity.Activity) error {
	r.activities[a.ID] = a
	return nil
}

func (r *memActivityRepo) List(_ context.Context, filter repository.ActivityFilter) ([]*entity.Activity, error) {
	out := make([]*entity.Activity, 0, len(r.activities))
	for _, a := range r.activities {
		if !filter.IncludeDeleted && a.Deleted() {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		if filter.Priority != "" && a.Priority != filter.Priority {
			continue
		}
		copied := *a
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memActivityRepo) AppendLog(_ context.Context, log *entity.ActivityLog) error {
	r.logs = append(r.logs, log)
	return nil
}

func (r *memActivityRepo) ListLogs(_ context.Context, activityID string) ([]*entity.ActivityLog, error) {
	var out []*entity.ActivityLog
	for i := len(r.logs) - 1; i >= 0; i-- {
		if r.logs[i].ActivityID == activityID {
			copied := *r.logs[i]
			out = append(out, &copied)
		}
	}
	return out, nil
}

type memAnimalRepo struct {
	animals map[string]*entity.Animal
}

func newMemAnimalRepo() *memAnimalRepo {
	return &memAnimalRepo{animals: map[string]*entity.Animal{}}
}

func (r *memAnimalRepo) Create(_ context.Context, a *entity.Animal) error {
	r.animals[a.ID] = a
	return nil
}

func (r *memAnimalRepo) GetByID(_ context.Context, id string) (*entity.Animal, error) {
	a, ok := r.animals[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (r *memAnimalRepo) GetByIdentification(_ context.Context, identification string) (*entity.Animal, error) {
	for _, a := range r.animals {
		if a.Identification == identification {
			copied := *a
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memAnimalRepo) Update(_ context.Context, a *entity.Animal) error {
	r.animals[a.ID] = a
	return nil
}

func (r *memAnimalRepo) List(_ context.Context, species string, _, _ int) ([]*entity.Animal, error) {
	out := make([]*entity.Animal, 0, len(r.animals))
	for _, a := range r.animals {
		if species != "" && a.Species != species {
			continue
		}
		copied := *a
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memAnimalRepo) Delete(_ context.Context, id string) error {
	delete(r.animals, id)
	return nil
}

type memWeatherRepo struct {
	readings []*entity.WeatherReading
}

func (r *memWeatherRepo) Create(_ context.Context, reading *entity.WeatherReading) error {
	r.readings = append(r.readings, reading)
	return nil
}

func (r *memWeatherRepo) Latest(_ context.Context, source string) (*entity.WeatherReading, error) {
	for i := len(r.readings) - 1; i >= 0; i-- {
		if source == "" || r.readings[i].Source == source {
			copied := *r.readings[i]
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memWeatherRepo) ListSince(_ context.Context, since time.Time) ([]*entity.WeatherReading, error) {
	var out []*entity.WeatherReading
	for _, reading := range r.readings {
		if reading.CollectedAt.Before(since) {
			continue
		}
		copied := *reading
		out = append(out, &copied)
	}
	return out, nil
}

func (r *memWeatherRepo) StatsSince(ctx context.Context, since time.Time) (*repository.WeatherStats, error) {
	readings, _ := r.ListSince(ctx, since)
	if len(readings) == 0 {
		return nil, nil
	}
	stats := &repository.WeatherStats{
		MaxTemperature: readings[0].Temperature,
		MinTemperature: readings[0].Temperature,
	}
	for _, reading := range readings {
		stats.AvgTemperature += reading.Temperature
		stats.AvgWindSpeed += reading.WindSpeed
		if reading.Temperature > stats.MaxTemperature {
			stats.MaxTemperature = reading.Temperature
		}
		if reading.Temperature < stats.MinTemperature {
			stats.MinTemperature = reading.Temperature
		}
	}
	stats.AvgTemperature /= float64(len(readings))
	stats.AvgWindSpeed /= float64(len(readings))
	return stats, nil
}
