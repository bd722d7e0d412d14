package ethcal

import (
	"fmt"
	"time"
)

var ethiopianMonthNames = [...]string{
	"Meskerem", "Tikimt", "Hidar", "Tahsas", "Tir", "Yekatit", "Megabit",
	"Miazia", "Ginbot", "Sene", "Hamle", "Nehase", "Pagume",
}

var ethiopianMonthNamesAmharic = [...]string{
	"መስከረም", "ጥቅምት", "ኅዳር", "ታኅሣሥ", "ጥር", "የካቲት", "መጋቢት",
	"ሚያዝያ", "ግንቦት", "ሰኔ", "ሐምሌ", "ነሐሴ", "ጳጉሜ",
}

// indexed by time.Weekday
var amharicWeekdays = [...]string{
	"እሑድ", "ሰኞ", "ማክሰኞ", "ረቡዕ", "ሐሙስ", "ዓርብ", "ቅዳሜ",
}

// EthiopianMonthName returns the English transliteration of month (1-13),
// or "Month n" for anything else.
func EthiopianMonthName(month int) string {
	return monthName(ethiopianMonthNames[:], month)
}

// EthiopianMonthNameAmharic returns the Amharic name of month (1-13),
// or "Month n" for anything else.
func EthiopianMonthNameAmharic(month int) string {
	return monthName(ethiopianMonthNamesAmharic[:], month)
}

// AmharicWeekday returns the Amharic name of a weekday.
func AmharicWeekday(d time.Weekday) string {
	if d < time.Sunday || d > time.Saturday {
		return d.String()
	}
	return amharicWeekdays[d]
}

func monthName(names []string, month int) string {
	if month < 1 || month > len(names) {
		return fmt.Sprintf("Month %d", month)
	}
	return names[month-1]
}
