// Package format renders amounts, dates and campaign text the way the
// donation UI shows them.
package format

import (
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	noDeadline  = "No deadline"
	invalidDate = "Invalid date"
)

// ist is the display timezone for due dates.
var ist = loadIST()

func loadIST() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.FixedZone("IST", 5*3600+1800)
	}
	return loc
}

// Currency renders an amount as "₹" plus en-IN digit grouping (last three
// digits, then groups of two). Negative or missing amounts render as ₹0.
// Fractions are kept to two decimals only when present.
func Currency(amount float64) string {
	if amount <= 0 {
		return "₹0"
	}
	rupees := int64(amount)
	frac := amount - float64(rupees)
	s := "₹" + groupIndian(rupees)
	if frac > 0.004 {
		s += fmt.Sprintf(".%02d", int(math.Round(frac*100)))
	}
	return s
}

// CurrencyPtr is Currency for optional amounts; nil renders as ₹0.
func CurrencyPtr(amount *float64) string {
	if amount == nil {
		return "₹0"
	}
	return Currency(*amount)
}

// groupIndian inserts commas in the lakh/crore pattern: 1234567 → 12,34,567.
func groupIndian(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	head := s[:len(s)-3]
	tail := s[len(s)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	parts = append([]string{head}, parts...)
	return strings.Join(parts, ",") + "," + tail
}

// Date renders a due date as "DD MMM YYYY" uppercased in IST.
// A nil date means the campaign has no deadline.
func Date(t *time.Time) string {
	if t == nil {
		return noDeadline
	}
	return strings.ToUpper(t.In(ist).Format("02 Jan 2006"))
}

// DateString parses an upstream date string before rendering; empty input
// yields the no-deadline sentinel and unparsable input the invalid sentinel.
func DateString(s string) string {
	if s == "" {
		return noDeadline
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		if t, err = time.Parse("2006-01-02", s); err != nil {
			return invalidDate
		}
	}
	return Date(&t)
}

// Progress returns the collected-vs-target percentage, rounded and clamped
// to [0,100]. A missing or zero target yields 0.
func Progress(collected float64, target *float64) int {
	if target == nil || *target == 0 {
		return 0
	}
	p := int(math.Round(collected / *target * 100))
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

// CleanDescription strips quote characters, trims whitespace and truncates
// to maxLen runes with a "..." suffix when cut.
func CleanDescription(text string, maxLen int) string {
	if text == "" {
		return ""
	}
	cleaned := strings.NewReplacer(`"`, "", `'`, "").Replace(text)
	cleaned = strings.TrimSpace(cleaned)
	runes := []rune(cleaned)
	if maxLen > 0 && len(runes) > maxLen {
		cleaned = string(runes[:maxLen]) + "..."
	}
	return cleaned
}
