package menuscraper

import (
	"context"
	"fmt"
	"log/slog"

	"lunchboard-backend/lib/menus"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("services/menuscraper")

type Service struct {
	registry Registry
	config   Config
}

func NewService(config Config, registry Registry) Service {
	return Service{
		registry: registry,
		config:   config,
	}
}

// BuildBatch fetches every roster restaurant in order and collects the
// non-empty menus. One restaurant failing, panicking or having an
// unknown type never stops the rest of the roster.
func (s Service) BuildBatch(ctx context.Context, week menus.Week) menus.MenuBatch {
	ctx, span := tracer.Start(ctx, "BuildBatch")
	defer span.End()

	var batch menus.MenuBatch
	for _, spec := range s.config.Restaurants {
		adapter, ok := s.registry[spec.Type]
		if !ok {
			slog.WarnContext(ctx, "unknown restaurant type", "name", spec.Name, "type", spec.Type)
			continue
		}

		menu, err := fetchGuarded(ctx, adapter, spec, week)
		if err != nil {
			slog.WarnContext(ctx, "restaurant fetch failed", "name", spec.Name, "err", err)
			continue
		}
		if menu.Empty() {
			slog.DebugContext(ctx, "restaurant produced no menu", "name", spec.Name)
			continue
		}

		slog.DebugContext(ctx, "restaurant scraped", "name", spec.Name, "days", len(menu))
		batch = append(batch, menus.RestaurantMenu{Name: spec.Name, Menu: menu})
	}

	span.SetAttributes(
		attribute.Int("roster_size", len(s.config.Restaurants)),
		attribute.Int("batch_size", len(batch)),
	)
	return batch
}

// fetchGuarded boxes an adapter invocation so that a panicking
// third-party parser costs one restaurant, not the run.
func fetchGuarded(ctx context.Context, adapter Adapter, spec RestaurantSpec, week menus.Week) (menu menus.DayMenu, err error) {
	defer func() {
		if r := recover(); r != nil {
			menu = nil
			err = fmt.Errorf("adapter panic: %v", r)
		}
	}()
	return adapter.FetchWeek(ctx, spec, week)
}
