package timezone

import "time"

var Location *time.Location

func init() {
	var err error
	Location, err = time.LoadLocation("Europe/Helsinki")
	if err != nil {
		panic(err)
	}
}

// force the timezone to be Helsinki, the restaurants we scrape publish
// their menus in finnish local time and the week anchor would shift if
// the job happens to run on a server in another zone
func Now() time.Time {
	return time.Now().In(Location)
}
