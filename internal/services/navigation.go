package services

import (
	"net/url"
	"strings"
)

// CourseQueryParam carries the course title on the detail URL.
const CourseQueryParam = "course"

const defaultCoursePath = "/course"

// CourseURL is the detail link for a course title: the configured path plus
// ?course=<title>. Spaces are written as %20, not +, so both percent-decoding
// and form-decoding the value give back the exact title.
func CourseURL(path string, title string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = defaultCoursePath
	}
	return path + "?" + CourseQueryParam + "=" + escapeComponent(title)
}

// escapeComponent percent-encodes s for a query value. A literal '+' is
// already %2B after QueryEscape, so every remaining '+' is a space.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// CourseTitle reads the title back out of a detail URL's query.
func CourseTitle(q url.Values) (string, bool) {
	title := q.Get(CourseQueryParam)
	if strings.TrimSpace(title) == "" {
		return "", false
	}
	return title, true
}
