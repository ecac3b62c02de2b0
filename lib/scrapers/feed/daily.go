package feed

import (
	"context"
	"fmt"
	"time"

	"lunchboard-backend/lib/menus"
	"lunchboard-backend/lib/telemetry"
	"lunchboard-backend/lib/textutil"

	"github.com/go-resty/resty/v2"
)

// a day needs more than this many courses to count as open, a closed
// restaurant still publishes a stub document with one or two rows
const dailyMinCourses = 2

type DailyClient struct {
	http *resty.Client
}

func NewDailyClient(opts ClientOptions) *DailyClient {
	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.SetHeader("user-agent", "lunchboard-scraper/1.0")
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Second * 10
	}
	client.SetTimeout(timeout)

	telemetry.InstrumentResty(client, "scrapers/feed/daily/http")

	return &DailyClient{http: client}
}

type dailyResponse struct {
	Courses []dailyCourse `json:"courses"`
}

type dailyCourse struct {
	Title   string `json:"title_fi"`
	TitleEn string `json:"title_en"`
}

type DailyRequest struct {
	RestaurantId string
	Language     string
}

// FetchWeek issues one request per weekday against the per-day feed
// (`{base}/{id}/{yyyy}/{mm}/{dd}/{lang}`). A day that fails to fetch
// or parse is simply skipped, it is indistinguishable from a closed
// day on purpose.
func (c *DailyClient) FetchWeek(ctx context.Context, req DailyRequest, week menus.Week) menus.DayMenu {
	ctx, span := tracer.Start(ctx, "DailyFetchWeek")
	defer span.End()

	language := req.Language
	if language == "" {
		language = "fi"
	}

	menu := menus.DayMenu{}
	for i := 0; i < 5; i++ {
		day := week.Day(i)

		var body dailyResponse
		res, err := c.http.R().
			SetContext(ctx).
			SetResult(&body).
			Get(fmt.Sprintf(
				"%s/%04d/%02d/%02d/%s",
				req.RestaurantId,
				day.Year(), day.Month(), day.Day(),
				language,
			))
		if err != nil {
			span.RecordError(err)
			continue
		}
		if !res.IsSuccess() {
			continue
		}
		if len(body.Courses) <= dailyMinCourses {
			continue
		}

		courses := make([]string, 0, len(body.Courses))
		for _, course := range body.Courses {
			title := course.Title
			if language == "en" && course.TitleEn != "" {
				title = course.TitleEn
			}
			if title = textutil.CleanCourse(title); title != "" {
				courses = append(courses, title)
			}
		}
		if len(courses) <= dailyMinCourses {
			continue
		}
		menu[week.DayISO(i)] = courses
	}
	return menu
}
