package menuscraper

import (
	"context"
	"fmt"
	"regexp"

	"lunchboard-backend/lib/menus"
	"lunchboard-backend/lib/scrapers/feed"
	"lunchboard-backend/lib/scrapers/markup"
)

// Adapter turns one upstream menu source into the common DayMenu
// shape. Implementations recover fetch and parse failures internally,
// an unreachable or unparseable source is an empty menu. The error
// return exists for adapters layered on top of external code, the
// aggregator treats it as "skip this restaurant".
type Adapter interface {
	FetchWeek(ctx context.Context, spec RestaurantSpec, week menus.Week) (menus.DayMenu, error)
}

type AdapterFunc func(ctx context.Context, spec RestaurantSpec, week menus.Week) (menus.DayMenu, error)

func (f AdapterFunc) FetchWeek(ctx context.Context, spec RestaurantSpec, week menus.Week) (menus.DayMenu, error) {
	return f(ctx, spec, week)
}

// Registry maps a provider type tag to its adapter. Adding a provider
// means registering an implementation here, nothing dispatch-related
// changes.
type Registry map[string]Adapter

const (
	amicaFeedUrl  = "https://www.amica.fi/modules/json/json/Index"
	sodexoFeedUrl = "https://www.sodexo.fi/ruokalistat/output/daily_json/"
	antellMenuUrl = "http://www.antell.fi/lounaslistat/lounaslista.html?owner=%s"
)

var antellProfile = markup.TableProfile{
	Anchor:     "#lunch-content-table",
	MinTextLen: 6,
	MinCourses: 3,
}

var taffaProfile = markup.DatedSectionProfile{
	TodaySelector: ".todays-menu",
	WeekSelector:  "#week",
	MinTextLen:    3,
	MinCourses:    3,
}

var metropolProfile = markup.SectionProfile{
	DayIDs:       [5]string{"day-ma", "day-ti", "day-ke", "day-to", "day-pe"},
	ItemSelector: "li",
	// dish name up to the trailing "<euros>,<cents>" price token
	DishPattern: regexp.MustCompile(`^([\p{L}0-9\s:;,-]+?)\s+\d+,\d+`),
	MinCourses:  2,
}

// DefaultRegistry wires every known provider type on top of the two
// adapter families.
func DefaultRegistry() Registry {
	weekFeed := feed.NewClient(feed.ClientOptions{BaseUrl: amicaFeedUrl})
	dailyFeed := feed.NewDailyClient(feed.ClientOptions{BaseUrl: sodexoFeedUrl})
	pages := markup.NewClient(markup.ClientOptions{})

	return Registry{
		"amica": AdapterFunc(func(ctx context.Context, spec RestaurantSpec, week menus.Week) (menus.DayMenu, error) {
			return weekFeed.FetchWeek(ctx, feed.WeekRequest{
				CostNumber: spec.CostNumber,
				Language:   spec.Language,
			}, week), nil
		}),
		"sodexo": AdapterFunc(func(ctx context.Context, spec RestaurantSpec, week menus.Week) (menus.DayMenu, error) {
			id := spec.Id
			if id == "" {
				id = spec.RestaurantNumber
			}
			return dailyFeed.FetchWeek(ctx, feed.DailyRequest{
				RestaurantId: id,
				Language:     spec.Language,
			}, week), nil
		}),
		"antell": AdapterFunc(func(ctx context.Context, spec RestaurantSpec, week menus.Week) (menus.DayMenu, error) {
			url := fmt.Sprintf(antellMenuUrl, spec.Id)
			return pages.ScrapeTables(ctx, url, antellProfile, week), nil
		}),
		"taffa": AdapterFunc(func(ctx context.Context, spec RestaurantSpec, week menus.Week) (menus.DayMenu, error) {
			return pages.ScrapeDatedSections(ctx, spec.Url, taffaProfile, week), nil
		}),
		"metropol": AdapterFunc(func(ctx context.Context, spec RestaurantSpec, week menus.Week) (menus.DayMenu, error) {
			return pages.ScrapeSections(ctx, spec.Url, metropolProfile, week), nil
		}),
	}
}
