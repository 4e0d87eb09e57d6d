// Package utils holds the small field converters shared by the scrapers.
package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var logoURLRe = regexp.MustCompile(`/logos/(\d+)_\d+\.png`)

// TimeToSeconds converts "MM:SS" or "HH:MM:SS" to total seconds.
// Malformed input yields 0.
func TimeToSeconds(s string) int {
	if s == "" {
		return 0
	}
	parts := strings.Split(s, ":")
	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0
		}
		total = total*60 + n
	}
	if len(parts) < 2 || len(parts) > 3 {
		return 0
	}
	return total
}

// PeriodNumber normalizes the feed's assorted period spellings ("1", "1st",
// "OT1", "SO") to a number. Overtimes count up from 4, shootout is 7.
func PeriodNumber(s string) int {
	s = strings.TrimSpace(s)
	switch s {
	case "OT1", "OT":
		return 4
	case "OT2":
		return 5
	case "OT3":
		return 6
	case "SO":
		return 7
	}
	n, err := strconv.Atoi(StripOrdinal(s))
	if err != nil {
		return 0
	}
	return n
}

// StripOrdinal removes an English ordinal suffix ("1st" -> "1").
func StripOrdinal(s string) string {
	for _, suffix := range []string{"st", "nd", "rd", "th"} {
		if v, ok := strings.CutSuffix(s, suffix); ok {
			return v
		}
	}
	return s
}

// SplitBirthplace splits "Kleinburg, Ontario, Canada" into the town and the
// remainder. Splitting happens on the first comma only.
func SplitBirthplace(s string) (town, region string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ""
	}
	town, region, found := strings.Cut(s, ",")
	if !found {
		return strings.TrimSpace(s), ""
	}
	return strings.TrimSpace(town), strings.TrimSpace(region)
}

// TeamIDFromLogoURL pulls the team id out of a logo URL like
// ".../logos/123_5.png". Returns 0 when the URL does not match.
func TeamIDFromLogoURL(u string) int {
	m := logoURLRe.FindStringSubmatch(u)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}
