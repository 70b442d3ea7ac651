package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	assert.Equal(t, "₹0", Currency(0))
	assert.Equal(t, "₹0", Currency(-50))
	assert.Equal(t, "₹500", Currency(500))
	assert.Equal(t, "₹1,000", Currency(1000))
	assert.Equal(t, "₹12,345", Currency(12345))
	assert.Equal(t, "₹1,00,000", Currency(100000))
	assert.Equal(t, "₹12,34,567", Currency(1234567))
	assert.Equal(t, "₹1,02,000", Currency(102000))
	assert.Equal(t, "₹1,020.50", Currency(1020.50))
}

func TestCurrencyPtr(t *testing.T) {
	assert.Equal(t, "₹0", CurrencyPtr(nil))
	amount := 5000.0
	assert.Equal(t, "₹5,000", CurrencyPtr(&amount))
}

func TestDate(t *testing.T) {
	assert.Equal(t, "No deadline", Date(nil))

	// Midnight UTC on 15 Jan is already 05:30 on the 15th in IST.
	d := time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "15 JAN 2025", Date(&d))

	// 20:00 UTC crosses midnight IST into the next day.
	d = time.Date(2025, time.March, 1, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "02 MAR 2025", Date(&d))
}

func TestDateString(t *testing.T) {
	assert.Equal(t, "No deadline", DateString(""))
	assert.Equal(t, "Invalid date", DateString("not-a-date"))
	assert.Equal(t, "15 JAN 2025", DateString("2025-01-15"))
	assert.Equal(t, "15 JAN 2025", DateString("2025-01-15T00:00:00Z"))
}

func TestProgress(t *testing.T) {
	target := 1000.0
	assert.Equal(t, 0, Progress(0, &target))
	assert.Equal(t, 50, Progress(500, &target))
	assert.Equal(t, 33, Progress(333, &target))
	assert.Equal(t, 68, Progress(675, &target))
	assert.Equal(t, 100, Progress(1000, &target))

	// Over-collection clamps to 100.
	assert.Equal(t, 100, Progress(1500, &target))

	// Missing or zero target guards divide-by-zero.
	assert.Equal(t, 0, Progress(500, nil))
	zero := 0.0
	assert.Equal(t, 0, Progress(500, &zero))
}

func TestProgressStaysInRange(t *testing.T) {
	target := 777.0
	for collected := 0.0; collected <= target; collected += 7 {
		p := Progress(collected, &target)
		assert.GreaterOrEqual(t, p, 0)
		assert.LessOrEqual(t, p, 100)
	}
}

func TestCleanDescription(t *testing.T) {
	assert.Equal(t, "", CleanDescription("", 100))
	assert.Equal(t, "hello world", CleanDescription(`  "hello" 'world'  `, 100))
	assert.Equal(t, "abcde...", CleanDescription("abcdefghij", 5))
	// Truncation counts runes, not bytes.
	assert.Equal(t, "സംഭാവന...", CleanDescription("സംഭാവനകൾ", 6))
	assert.Equal(t, "short", CleanDescription("short", 10))
}
