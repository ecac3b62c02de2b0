// Package feed scrapes the structured JSON menu feeds: providers that
// publish a whole week through one API call, and providers that
// publish one JSON document per day.
package feed

import (
	"context"
	"fmt"
	"time"

	"lunchboard-backend/lib/menus"
	"lunchboard-backend/lib/telemetry"
	"lunchboard-backend/lib/textutil"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/feed")

type Client struct {
	http *resty.Client
}

type ClientOptions struct {
	BaseUrl string
	Timeout time.Duration
}

func NewClient(opts ClientOptions) *Client {
	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.SetHeader("user-agent", "lunchboard-scraper/1.0")
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Second * 10
	}
	client.SetTimeout(timeout)

	telemetry.InstrumentResty(client, "scrapers/feed/http")

	return &Client{http: client}
}

// wire shape of the weekly feed, field names follow the upstream API
type weekResponse struct {
	MenusForDays []dayEntry `json:"MenusForDays"`
}

type dayEntry struct {
	Date     string    `json:"Date"`
	Weekday  string    `json:"Weekday"`
	SetMenus []setMenu `json:"SetMenus"`
}

type setMenu struct {
	Name       string   `json:"Name"`
	Components []string `json:"Components"`
}

type WeekRequest struct {
	CostNumber string
	Language   string
}

// FetchWeek requests the whole week in one call and flattens each
// day's set menu groups into course strings, one per component with
// the group label prefixed, source order preserved. A day whose
// flattened list ends up empty is treated as closed and omitted. Any
// total failure yields an empty menu, never an error past this
// boundary.
func (c *Client) FetchWeek(ctx context.Context, req WeekRequest, week menus.Week) menus.DayMenu {
	ctx, span := tracer.Start(ctx, "FetchWeek")
	defer span.End()

	language := req.Language
	if language == "" {
		language = "fi"
	}

	var body weekResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"costNumber": req.CostNumber,
			"firstDay":   week.DayISO(0),
			"lastDay":    week.DayISO(4),
			"language":   language,
		}).
		SetResult(&body).
		Get("")
	if err != nil {
		span.RecordError(err)
		return menus.DayMenu{}
	}
	if !res.IsSuccess() {
		span.RecordError(fmt.Errorf("bad status: %s", res.Status()))
		return menus.DayMenu{}
	}

	menu := menus.DayMenu{}
	for _, day := range body.MenusForDays {
		date, ok := week.ParseDate(day.Date)
		if !ok {
			// some feeds only carry a weekday label
			date, ok = week.ByWeekday(day.Weekday)
		}
		if !ok {
			continue
		}

		var courses []string
		for _, group := range day.SetMenus {
			label := textutil.CleanCourse(group.Name)
			for _, component := range group.Components {
				component = textutil.CleanCourse(component)
				if component == "" {
					continue
				}
				if label != "" {
					courses = append(courses, fmt.Sprintf("%s: %s", label, component))
				} else {
					courses = append(courses, component)
				}
			}
		}
		if len(courses) == 0 {
			continue
		}
		menu[date] = courses
	}
	return menu
}
