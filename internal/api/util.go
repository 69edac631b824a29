package api

import (
	"regexp"
	"strings"
)

var battleCodeRegex = regexp.MustCompile("^[A-Z0-9]{8}$")

func normalizeBattleCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
