package ethiopic

import (
	"sort"
	"time"

	cal "github.com/rickar/cal/v2"
)

// Holiday tags.
const (
	TagPublic    = "public"
	TagReligious = "religious"
	TagChristian = "christian"
	TagMuslim    = "muslim"
	TagCultural  = "cultural"
	TagNational  = "national"
)

// Holiday is one occurrence of a named holiday in an Ethiopian year.
type Holiday struct {
	Key         string
	Name        string
	Description string
	Tags        []string
	Date        Date
}

// Gregorian returns the Gregorian day the holiday falls on.
func (h Holiday) Gregorian() time.Time {
	t, _ := h.Date.Gregorian()
	return t
}

// rule binds a holiday definition to its metadata. The cal.Holiday Func is
// evaluated with an Ethiopian year, not a Gregorian one.
type rule struct {
	key         string
	description string
	tags        []string
	def         *cal.Holiday
}

// fixed holidays on a given Ethiopian month and day.
func fixed(month, day int) cal.HolidayFn {
	return func(_ *cal.Holiday, year int) time.Time {
		return gregorianOf(toJDN(year, month, day))
	}
}

// shiftedAfterLeap is a fixed holiday observed a day earlier in the year that
// follows a leap year, which keeps it on the same Julian calendar date.
func shiftedAfterLeap(month, day int) cal.HolidayFn {
	return func(_ *cal.Holiday, year int) time.Time {
		if IsLeap(year - 1) {
			return gregorianOf(toJDN(year, month, day-1))
		}
		return gregorianOf(toJDN(year, month, day))
	}
}

// gregorianFixed holidays fall on a Gregorian month and day inside the
// Ethiopian year, which always spans January through August of year+8.
func gregorianFixed(month time.Month, day int) cal.HolidayFn {
	return func(_ *cal.Holiday, year int) time.Time {
		return time.Date(year+8, month, day, 0, 0, 0, 0, time.UTC)
	}
}

func easterOffset(offset int) cal.HolidayFn {
	return func(_ *cal.Holiday, year int) time.Time {
		return gregorianOf(OrthodoxEasterJDN(year+8) + offset)
	}
}

// islamic returns the n-th occurrence (0-based) of a Hijri month and day inside
// the Ethiopian year, or the zero time if there is none.
func islamic(month, day, n int) cal.HolidayFn {
	return func(_ *cal.Holiday, year int) time.Time {
		start := toJDN(year, 1, 1)
		end := toJDN(year+1, 1, 1)
		seen := 0
		for hy := HijriYear(start) - 1; hy <= HijriYear(end)+1; hy++ {
			jdn := HijriToJDN(hy, month, day)
			if jdn < start || jdn >= end {
				continue
			}
			if seen == n {
				return gregorianOf(jdn)
			}
			seen++
		}
		return time.Time{}
	}
}

func gregorianOf(jdn int) time.Time {
	return JDNToGregorian(jdn)
}

var rules = []rule{
	{
		key:         "enkutatash",
		description: "Ethiopian New Year",
		tags:        []string{TagPublic, TagCultural, TagNational},
		def:         &cal.Holiday{Name: "Enkutatash", Func: fixed(1, 1)},
	},
	{
		key:         "meskel",
		description: "Finding of the True Cross",
		tags:        []string{TagPublic, TagReligious, TagChristian},
		def:         &cal.Holiday{Name: "Meskel", Func: fixed(1, 17)},
	},
	{
		key:         "genna",
		description: "Ethiopian Christmas",
		tags:        []string{TagPublic, TagReligious, TagChristian},
		def:         &cal.Holiday{Name: "Genna", Func: shiftedAfterLeap(4, 29)},
	},
	{
		key:         "timket",
		description: "Epiphany",
		tags:        []string{TagPublic, TagReligious, TagChristian},
		def:         &cal.Holiday{Name: "Timket", Func: shiftedAfterLeap(5, 11)},
	},
	{
		key:         "adwa",
		description: "Victory of Adwa",
		tags:        []string{TagPublic, TagNational},
		def:         &cal.Holiday{Name: "Adwa Victory Day", Func: fixed(6, 23)},
	},
	{
		key:         "siklet",
		description: "Good Friday",
		tags:        []string{TagPublic, TagReligious, TagChristian},
		def:         &cal.Holiday{Name: "Siklet", Func: easterOffset(-2)},
	},
	{
		key:         "fasika",
		description: "Ethiopian Easter",
		tags:        []string{TagPublic, TagReligious, TagChristian},
		def:         &cal.Holiday{Name: "Fasika", Func: easterOffset(0)},
	},
	{
		key:         "workersDay",
		description: "International Workers' Day",
		tags:        []string{TagPublic},
		def:         &cal.Holiday{Name: "International Workers' Day", Func: gregorianFixed(time.May, 1)},
	},
	{
		key:         "patriotsDay",
		description: "Ethiopian Patriots' Victory Day",
		tags:        []string{TagPublic, TagNational},
		def:         &cal.Holiday{Name: "Patriots' Victory Day", Func: fixed(8, 27)},
	},
	{
		key:         "dergDownfall",
		description: "Downfall of the Derg",
		tags:        []string{TagPublic, TagNational},
		def:         &cal.Holiday{Name: "Downfall of the Derg", Func: fixed(9, 20)},
	},
}

func init() {
	for _, hd := range []struct {
		key, name, description string
		month, day             int
	}{
		{"eidAlFitr", "Eid al-Fitr", "End of Ramadan", 10, 1},
		{"eidAlAdha", "Eid al-Adha", "Feast of the Sacrifice", 12, 10},
		{"mawlid", "Mawlid", "Birth of the Prophet", 3, 12},
	} {
		// A Hijri year is eleven days shorter, so a holiday can occur twice.
		for n := 0; n < 2; n++ {
			rules = append(rules, rule{
				key:         hd.key,
				description: hd.description,
				tags:        []string{TagPublic, TagReligious, TagMuslim},
				def:         &cal.Holiday{Name: hd.name, Func: islamic(hd.month, hd.day, n)},
			})
		}
	}
}

// HolidaysForYear returns every holiday of the Ethiopian year, sorted by date.
func HolidaysForYear(year int) []Holiday {
	if year < 1 {
		return nil
	}

	var result []Holiday
	for _, r := range rules {
		actual, _ := r.def.Calc(year)
		if actual.IsZero() {
			continue
		}
		d, err := FromGregorian(actual)
		if err != nil {
			continue
		}
		tags := make([]string, len(r.tags))
		copy(tags, r.tags)
		result = append(result, Holiday{
			Key:         r.key,
			Name:        r.def.Name,
			Description: r.description,
			Tags:        tags,
			Date:        d,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Date.JDN() < result[j].Date.JDN()
	})
	return result
}
