package markup

import (
	"context"
	"regexp"
	"unicode/utf8"

	"lunchboard-backend/lib/htmlutil"
	"lunchboard-backend/lib/menus"

	"github.com/PuerkitoBio/goquery"
)

// TableProfile describes a page holding one <table> per weekday under
// a single anchor element, Monday first. The first surviving cell of a
// table is the day header, the rest are courses.
type TableProfile struct {
	// goquery selector for the element containing the five day tables
	Anchor string
	// cell text at or below this length is noise (whitespace, prices)
	MinTextLen int
	// a day is kept when it has at least this many courses left
	MinCourses int
}

// ScrapeTables extracts a week from a table-per-day page. Missing
// anchor, short table list or a failed fetch all produce an empty
// menu, the caller cannot tell a broken page from a closed week.
func (c *Client) ScrapeTables(ctx context.Context, url string, profile TableProfile, week menus.Week) menus.DayMenu {
	ctx, span := tracer.Start(ctx, "ScrapeTables")
	defer span.End()

	doc, err := c.fetchDocument(ctx, url)
	if err != nil {
		return menus.DayMenu{}
	}

	tables := doc.Find(profile.Anchor).First().Find("table")
	menu := menus.DayMenu{}

	for i := 0; i < 5 && i < tables.Length(); i++ {
		var cells []string
		tables.Eq(i).Find("td").Each(func(_ int, cell *goquery.Selection) {
			text := htmlutil.CleanText(cell.Text())
			if utf8.RuneCountInString(text) > profile.MinTextLen {
				cells = append(cells, text)
			}
		})
		if len(cells) == 0 {
			continue
		}

		// cells[0] is the day heading
		courses := cells[1:]
		if len(courses) < profile.MinCourses {
			continue
		}
		menu[week.DayISO(i)] = courses
	}
	return menu
}

// SectionProfile describes a page with one element per weekday,
// addressed by id, holding the day's courses as list items.
type SectionProfile struct {
	// element ids in weekday order, Monday first
	DayIDs [5]string
	// selector for course items within a day section, e.g. "li"
	ItemSelector string
	// optional, keeps only items matching it and extracts the first
	// capture group (the dish name before a trailing price)
	DishPattern *regexp.Regexp
	MinCourses  int
}

func (c *Client) ScrapeSections(ctx context.Context, url string, profile SectionProfile, week menus.Week) menus.DayMenu {
	ctx, span := tracer.Start(ctx, "ScrapeSections")
	defer span.End()

	doc, err := c.fetchDocument(ctx, url)
	if err != nil {
		return menus.DayMenu{}
	}

	menu := menus.DayMenu{}
	for i, id := range profile.DayIDs {
		section := doc.Find("#" + id).First()
		if section.Length() == 0 {
			continue
		}

		var courses []string
		section.Find(profile.ItemSelector).Each(func(_ int, item *goquery.Selection) {
			text := htmlutil.CleanText(item.Text())
			if profile.DishPattern != nil {
				match := profile.DishPattern.FindStringSubmatch(text)
				if len(match) < 2 {
					return
				}
				text = htmlutil.CleanText(match[1])
			}
			if text != "" {
				courses = append(courses, text)
			}
		})
		if len(courses) < profile.MinCourses {
			continue
		}
		menu[week.DayISO(i)] = courses
	}
	return menu
}

// DatedSectionProfile describes a page where days appear as sections
// labeled with a d.m.yyyy date: one highlighted section for the
// current day plus a container with the rest of the week. Days are
// keyed by their parsed label, anything outside the reference week is
// discarded.
type DatedSectionProfile struct {
	// selector for the current day block, its first <p> is the label
	TodaySelector string
	// selector for the container of the remaining days, labels in <p>
	// elements with the courses in the list element that follows
	WeekSelector string
	MinTextLen   int
	MinCourses   int
}

func (c *Client) ScrapeDatedSections(ctx context.Context, url string, profile DatedSectionProfile, week menus.Week) menus.DayMenu {
	ctx, span := tracer.Start(ctx, "ScrapeDatedSections")
	defer span.End()

	doc, err := c.fetchDocument(ctx, url)
	if err != nil {
		return menus.DayMenu{}
	}

	menu := menus.DayMenu{}

	today := doc.Find(profile.TodaySelector).First()
	if today.Length() > 0 {
		label := htmlutil.CleanText(today.Find("p").First().Text())
		c.collectDatedDay(menu, week, profile, label, today.Find("ul li"))
	}

	doc.Find(profile.WeekSelector).First().Find("p").Each(func(_ int, p *goquery.Selection) {
		label := htmlutil.CleanText(p.Text())
		items := p.NextFiltered("ul").Find("li")
		c.collectDatedDay(menu, week, profile, label, items)
	})

	return menu
}

func (c *Client) collectDatedDay(menu menus.DayMenu, week menus.Week, profile DatedSectionProfile, label string, items *goquery.Selection) {
	date, ok := labelDate(week, label)
	if !ok || !week.ContainsISO(date) {
		return
	}

	var courses []string
	items.Each(func(_ int, item *goquery.Selection) {
		text := htmlutil.CleanText(item.Text())
		if utf8.RuneCountInString(text) > profile.MinTextLen {
			courses = append(courses, text)
		}
	})
	if len(courses) < profile.MinCourses {
		return
	}
	menu[date] = courses
}

var labelDateRegex = regexp.MustCompile(`\d{1,2}\.\d{1,2}\.\d{4}`)

// labels look like "Maanantai 11.4.2016", the date token is what counts
func labelDate(week menus.Week, label string) (string, bool) {
	token := labelDateRegex.FindString(label)
	if token == "" {
		return "", false
	}
	return week.ParseDate(token)
}
