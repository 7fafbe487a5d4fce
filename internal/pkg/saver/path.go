package saver

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9가-힣]`)

//GeneratePath builds the object path for a student recording,
//"{student}/{date}/{subtest}/{millis}.webm". Student names are sanitized,
//Korean letters are kept
func GeneratePath(student, subtest string, at time.Time) string {
	name := unsafeChars.ReplaceAllString(student, "_")
	if name == "" {
		name = "unknown"
	}
	return fmt.Sprintf("%s/%s/%s/%d.webm", name, at.Format("2006-01-02"),
		strings.ToLower(subtest), at.UnixMilli())
}
