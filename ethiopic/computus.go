package ethiopic

// julianToJDN returns the JDN of a date in the Julian calendar.
func julianToJDN(year, month, day int) int {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	return day + (153*m+2)/5 + 365*y + floorDiv(y, 4) - 32083
}

// OrthodoxEasterJDN returns the JDN of Easter Sunday (Fasika) in the given
// Gregorian year, using the Julian computus of the Orthodox churches.
func OrthodoxEasterJDN(year int) int {
	a := year % 4
	b := year % 7
	c := year % 19
	d := (19*c + 15) % 30
	e := (2*a + 4*b - d + 34) % 7
	month := (d + e + 114) / 31
	day := (d+e+114)%31 + 1
	return julianToJDN(year, month, day)
}

// islamicEpochJDN is the JDN of 1 Muharram 1 AH in the civil tabular calendar.
const islamicEpochJDN = 1948440

// HijriToJDN converts a date of the tabular Islamic calendar to a JDN.
// Observed dates depend on moon sighting and may differ by a day.
func HijriToJDN(year, month, day int) int {
	return day + (59*(month-1)+1)/2 + (year-1)*354 + floorDiv(3+11*year, 30) + islamicEpochJDN - 1
}

// HijriYear returns the tabular Islamic year containing jdn.
func HijriYear(jdn int) int {
	return floorDiv(30*(jdn-islamicEpochJDN)+10646, 10631)
}
