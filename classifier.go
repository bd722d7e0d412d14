package ethcal

import (
	"sort"
	"sync"
	"time"

	cal "github.com/rickar/cal/v2"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/tomroth04/ethcal/ethiopic"
	. "github.com/tomroth04/ethcal/types"
)

// DefaultWeekendDays are the days without class unless configured otherwise.
var DefaultWeekendDays = []time.Weekday{time.Sunday, time.Saturday}

// customHolidayKey is the key of school-declared holidays.
const customHolidayKey = "school"

// HolidayGenerator returns every holiday of an Ethiopian year.
type HolidayGenerator func(ethYear int) []ethiopic.Holiday

// HolidayCache holds holiday lookup tables keyed by Gregorian year, each table
// keyed by YYYY-MM-DD. It is safe for concurrent use.
type HolidayCache struct {
	mu    sync.RWMutex
	years map[int]map[string]Holiday
}

func NewHolidayCache() *HolidayCache {
	return &HolidayCache{years: make(map[int]map[string]Holiday)}
}

// Get returns the cached table for a Gregorian year.
func (c *HolidayCache) Get(year int) (map[string]Holiday, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	table, ok := c.years[year]
	return table, ok
}

// Put stores the table of a Gregorian year, replacing any previous one.
func (c *HolidayCache) Put(year int, table map[string]Holiday) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.years[year] = table
}

// Clear drops every cached year.
func (c *HolidayCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.years = make(map[int]map[string]Holiday)
}

// Len returns the number of cached years.
func (c *HolidayCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.years)
}

// Classifier decides whether a day is a no-class day.
// Create one with NewClassifier. All methods are safe for concurrent use.
type Classifier struct {
	conv     *Converter
	cache    *HolidayCache
	generate HolidayGenerator
	weekend  []time.Weekday
	workweek *cal.BusinessCalendar
	logger   *zerolog.Logger

	mu     sync.RWMutex
	custom map[string]Holiday
}

// ClassifierOption configures a Classifier.
type ClassifierOption func(*Classifier)

// WithConverter sets the converter used for Ethiopian dates of custom holidays.
func WithConverter(conv *Converter) ClassifierOption {
	return func(c *Classifier) { c.conv = conv }
}

// WithHolidayCache shares a cache between classifiers. Tables are keyed by
// Gregorian year only, so classifiers sharing a cache must use the same
// holiday generator.
func WithHolidayCache(cache *HolidayCache) ClassifierOption {
	return func(c *Classifier) { c.cache = cache }
}

// WithHolidayGenerator replaces the built-in Ethiopian holiday table.
func WithHolidayGenerator(gen HolidayGenerator) ClassifierOption {
	return func(c *Classifier) { c.generate = gen }
}

// WithWeekendDays sets the weekend used when a call does not name one.
// Called with no days, the classifier has no weekend at all.
func WithWeekendDays(days ...time.Weekday) ClassifierOption {
	return func(c *Classifier) { c.weekend = append([]time.Weekday(nil), days...) }
}

// WithClassifierLogger sets the logger lookups failures are reported to.
func WithClassifierLogger(l zerolog.Logger) ClassifierOption {
	return func(c *Classifier) { c.logger = &l }
}

func NewClassifier(opts ...ClassifierOption) *Classifier {
	c := &Classifier{
		conv:     defaultConverter,
		cache:    NewHolidayCache(),
		generate: ethiopic.HolidaysForYear,
		weekend:  DefaultWeekendDays,
		custom:   make(map[string]Holiday),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = &c.conv.logger
	}
	c.workweek = newWorkweek(c.weekend, c.logger)
	return c
}

// newWorkweek builds a business calendar whose only non-workdays are the weekend.
// Days outside Sunday..Saturday are ignored.
func newWorkweek(weekend []time.Weekday, logger *zerolog.Logger) *cal.BusinessCalendar {
	b := cal.NewBusinessCalendar()
	for d := time.Sunday; d <= time.Saturday; d++ {
		b.SetWorkday(d, true)
	}
	for _, d := range weekend {
		if d < time.Sunday || d > time.Saturday {
			logger.Warn().Int("weekday", int(d)).Msg("ignoring invalid weekend day")
			continue
		}
		b.SetWorkday(d, false)
	}
	return b
}

func (c *Classifier) parse(dateISO string) (time.Time, bool) {
	t, err := ParseISODate(dateISO)
	if err != nil {
		c.logger.Warn().Err(err).Str("date", dateISO).Msg("error classifying date")
		return time.Time{}, false
	}
	return t, true
}

// IsWeekend reports whether the date falls on one of weekendDays, or on the
// classifier's weekend when none are given. An empty weekend can only be set
// on the classifier, with WithWeekendDays().
func (c *Classifier) IsWeekend(dateISO string, weekendDays ...time.Weekday) bool {
	t, ok := c.parse(dateISO)
	if !ok {
		return false
	}
	return c.isWeekend(t, weekendDays)
}

func (c *Classifier) isWeekend(t time.Time, weekendDays []time.Weekday) bool {
	ww := c.workweek
	if len(weekendDays) > 0 {
		ww = newWorkweek(weekendDays, c.logger)
	}
	return !ww.IsWorkday(t)
}

// holidayTable returns the lookup table of a Gregorian year, building and caching
// it on first use. Both Ethiopian years overlapping the Gregorian year contribute,
// not only the one containing January 1, so September to December holidays are
// found too. Only holidays that fall inside the Gregorian year are kept.
func (c *Classifier) holidayTable(year int) map[string]Holiday {
	if table, ok := c.cache.Get(year); ok {
		return table
	}

	table := make(map[string]Holiday)
	jan1, err := ethiopic.FromGregorian(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		c.logger.Error().Err(err).Int("year", year).Msg("error building holiday table")
		c.cache.Put(year, table)
		return table
	}

	for _, ey := range []int{jan1.Year(), jan1.Year() + 1} {
		for _, h := range c.generate(ey) {
			g := h.Gregorian()
			if g.Year() != year {
				continue
			}
			iso := FormatISODate(g)
			// first rule wins when two holidays share a day
			if _, ok := table[iso]; ok {
				continue
			}
			table[iso] = toHoliday(h)
		}
	}

	c.cache.Put(year, table)
	return table
}

func toHoliday(h ethiopic.Holiday) Holiday {
	return Holiday{
		Key:           h.Key,
		Name:          h.Name,
		Description:   h.Description,
		Tags:          h.Tags,
		EthiopianDate: toEthiopianDate(h.Date),
		GregorianDate: FormatISODate(h.Gregorian()),
	}
}

// HolidayForDate returns the holiday on the date, school-declared ones first.
func (c *Classifier) HolidayForDate(dateISO string) (Holiday, bool) {
	t, ok := c.parse(dateISO)
	if !ok {
		return Holiday{}, false
	}
	return c.holidayFor(t)
}

func (c *Classifier) holidayFor(t time.Time) (Holiday, bool) {
	iso := FormatISODate(t)

	c.mu.RLock()
	h, ok := c.custom[iso]
	c.mu.RUnlock()
	if ok {
		return h, true
	}

	h, ok = c.holidayTable(t.Year())[iso]
	return h, ok
}

// IsNoClassDay classifies the date. When it is both a weekend and a holiday the
// holiday name is reported.
func (c *Classifier) IsNoClassDay(dateISO string, weekendDays ...time.Weekday) NoClassClassification {
	t, ok := c.parse(dateISO)
	if !ok {
		return NoClassClassification{}
	}
	return c.classify(t, weekendDays)
}

func (c *Classifier) classify(t time.Time, weekendDays []time.Weekday) NoClassClassification {
	weekend := c.isWeekend(t, weekendDays)
	holiday, isHoliday := c.holidayFor(t)

	switch {
	case weekend && isHoliday:
		return NoClassClassification{IsNoClass: true, Reason: ReasonWeekendHoliday, HolidayName: holiday.Name}
	case weekend:
		return NoClassClassification{IsNoClass: true, Reason: ReasonWeekend, HolidayName: t.Weekday().String()}
	case isHoliday:
		return NoClassClassification{IsNoClass: true, Reason: ReasonHoliday, HolidayName: holiday.Name}
	}
	return NoClassClassification{}
}

// ClearHolidayCache drops the generated holiday tables. School-declared holidays
// are kept.
func (c *Classifier) ClearHolidayCache() {
	c.cache.Clear()
}

// HolidaysInYear returns the holidays of a Gregorian year, school-declared ones
// included, sorted by date.
func (c *Classifier) HolidaysInYear(year int) []Holiday {
	merged := make(map[string]Holiday)
	for iso, h := range c.holidayTable(year) {
		merged[iso] = h
	}
	c.mu.RLock()
	for iso, h := range c.custom {
		if h.Year() == year {
			merged[iso] = h
		}
	}
	c.mu.RUnlock()

	result := make([]Holiday, 0, len(merged))
	for _, h := range merged {
		result = append(result, h)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].GregorianDate < result[j].GregorianDate
	})
	return result
}

// AddCustomHoliday registers a school-declared holiday. It takes precedence over
// a generated holiday on the same day and replaces an earlier custom one.
func (c *Classifier) AddCustomHoliday(dateISO, name string) error {
	t, err := ParseISODate(dateISO)
	if err != nil {
		return eris.Wrap(err, "adding custom holiday")
	}
	iso := FormatISODate(t)
	h := Holiday{
		Key:           customHolidayKey,
		Name:          name,
		Tags:          []string{customHolidayKey},
		EthiopianDate: c.conv.GregorianToEthiopian(iso),
		GregorianDate: iso,
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.custom[iso] = h
	return nil
}

// RemoveCustomHoliday removes a school-declared holiday, if any.
func (c *Classifier) RemoveCustomHoliday(dateISO string) {
	t, err := ParseISODate(dateISO)
	if err != nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.custom, FormatISODate(t))
}

// NextClassDay returns the first class day on or after the date, looking at
// most a year ahead.
func (c *Classifier) NextClassDay(dateISO string) (string, bool) {
	t, ok := c.parse(dateISO)
	if !ok {
		return "", false
	}
	for i := 0; i < 366; i++ {
		if !c.classify(t, nil).IsNoClass {
			return FormatISODate(t), true
		}
		t = t.AddDate(0, 0, 1)
	}
	return "", false
}

// CountClassDays counts class days between two dates, both included.
func (c *Classifier) CountClassDays(fromISO, toISO string) (int, error) {
	from, err := ParseISODate(fromISO)
	if err != nil {
		return 0, eris.Wrap(err, "counting class days")
	}
	to, err := ParseISODate(toISO)
	if err != nil {
		return 0, eris.Wrap(err, "counting class days")
	}
	if to.Before(from) {
		return 0, eris.Errorf("range end %s is before start %s", toISO, fromISO)
	}

	n := 0
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		if !c.classify(d, nil).IsNoClass {
			n++
		}
	}
	return n, nil
}

// --- Package-level convenience functions ---

var defaultClassifier = NewClassifier()

// IsWeekend reports whether the date falls on a weekend, Saturday and Sunday by default.
func IsWeekend(dateISO string, weekendDays ...time.Weekday) bool {
	return defaultClassifier.IsWeekend(dateISO, weekendDays...)
}

// HolidayForDate returns the holiday on the date.
func HolidayForDate(dateISO string) (Holiday, bool) {
	return defaultClassifier.HolidayForDate(dateISO)
}

// IsNoClassDay classifies the date.
func IsNoClassDay(dateISO string, weekendDays ...time.Weekday) NoClassClassification {
	return defaultClassifier.IsNoClassDay(dateISO, weekendDays...)
}

// ClearHolidayCache drops the default classifier's holiday tables.
func ClearHolidayCache() { defaultClassifier.ClearHolidayCache() }
