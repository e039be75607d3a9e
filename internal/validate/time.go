package validate

import "time"

type parseDatetimeFunc func(string) (time.Time, error)
type nowFunc func() time.Time

func nowUTC() time.Time {
	return time.Now().UTC()
}
