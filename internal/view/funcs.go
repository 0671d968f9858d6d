package view

import (
	"errors"
	"html/template"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

const dateLayout = "Jan 2, 2006 15:04"

func funcMap() template.FuncMap {
	return template.FuncMap{
		"ago":     ago,
		"date":    date,
		"stars":   stars,
		"comma":   humanize.Comma,
		"percent": percent,
		"dict":    dict,
	}
}

// ago renders a relative time such as "3 days ago"
func ago(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return humanize.Time(t)
}

func date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateLayout)
}

// stars draws rating filled stars followed by empty ones up to max
func stars(rating, max int) string {
	if max < 0 {
		max = 0
	}
	if rating < 0 {
		rating = 0
	}
	if rating > max {
		rating = max
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", max-rating)
}

func percent(part, total int64) int {
	if total <= 0 || part <= 0 {
		return 0
	}
	return int(part * 100 / total)
}

// dict builds a map from key/value pairs so a partial can take several values
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, errors.New("dict needs an even number of arguments")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, errors.New("dict keys must be strings")
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}
