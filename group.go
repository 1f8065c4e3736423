package brew

import (
	"strconv"
	"strings"
)

const descriptionSeparator = ", "

// GroupDescription collapses repeated tokens of a comma separated description.
// Tokens keep the order in which they first appear; repeats are rendered as
// "Double X", "Triple X" and "<n>x X". Every token is treated alike, including
// the drink name.
func GroupDescription(description string) string {
	if strings.TrimSpace(description) == "" {
		return description
	}

	var order []string
	counts := make(map[string]int)
	for _, token := range strings.Split(description, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if counts[token] == 0 {
			order = append(order, token)
		}
		counts[token]++
	}

	parts := make([]string, 0, len(order))
	for _, token := range order {
		parts = append(parts, groupedToken(token, counts[token]))
	}
	return strings.Join(parts, descriptionSeparator)
}

func groupedToken(token string, count int) string {
	switch {
	case count <= 1:
		return token
	case count == 2:
		return "Double " + token
	case count == 3:
		return "Triple " + token
	default:
		return strconv.Itoa(count) + "x " + token
	}
}
