package service

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"giftdash/internal/model"
)

// ParseGeoLocation splits s on its first comma and reads a leading decimal
// number from each half. Leading whitespace is skipped and trailing text after
// the number is ignored. ok is false when either half has no number or the
// value is not finite.
func ParseGeoLocation(s string) (lat, lon float64, ok bool) {
	latText, lonText, found := strings.Cut(s, ",")
	if !found {
		return 0, 0, false
	}
	lat, ok = parseLeadingFloat(latText)
	if !ok {
		return 0, 0, false
	}
	lon, ok = parseLeadingFloat(lonText)
	if !ok {
		return 0, 0, false
	}
	return lat, lon, true
}

// GeoAggregate groups cards by their exact parsed coordinates. Groups appear in
// order of first occurrence and keep their cards in input order. Cards whose
// location does not parse are left out.
func GeoAggregate(cards []model.GiftCard) []model.GeoPoint {
	points := make([]model.GeoPoint, 0)
	index := make(map[[2]float64]int)

	for _, card := range cards {
		lat, lon, ok := ParseGeoLocation(card.GeoLocation)
		if !ok {
			continue
		}
		key := [2]float64{lat, lon}
		i, seen := index[key]
		if !seen {
			i = len(points)
			index[key] = i
			points = append(points, model.GeoPoint{Lat: lat, Lon: lon})
		}
		points[i].Cards = append(points[i].Cards, card)
	}
	return points
}

func parseLeadingFloat(s string) (float64, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	n := numberPrefixLen(s)
	if n == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(s[:n], 64)
	if err != nil && !isRangeErr(err) {
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// numberPrefixLen returns the length of the longest prefix of s of the form
// [+-]digits[.digits][(e|E)[+-]digits], requiring at least one mantissa digit.
func numberPrefixLen(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		j := i + 1
		frac := 0
		for j < len(s) && isDigit(s[j]) {
			j++
			frac++
		}
		if digits+frac > 0 {
			i = j
			digits += frac
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}
	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isRangeErr(err error) bool {
	numErr, ok := err.(*strconv.NumError)
	return ok && numErr.Err == strconv.ErrRange
}
