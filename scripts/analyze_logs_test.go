package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeErrorLine(t *testing.T) {
	stats := newLogStats()
	lines := []string{
		"ERROR: 2026/10/16 10:00:00 user_auth_login_controller.go:42: Login attempt failed - Invalid password for user: a@x.com",
		"ERROR: 2026/10/16 10:00:01 user_auth_login_controller.go:42: Login attempt failed - Invalid password for user: A@x.com",
		"ERROR: 2026/10/16 10:00:02 order_controller.go:90: Order rejected for user 3: coupon has expired",
		"ERROR: 2026/10/16 10:00:03 order_controller.go:90: Order rejected for user 3: insufficient stock: product 7",
		"ERROR: 2026/10/16 10:00:04 coupon_apply_controller.go:50: Coupon SAVE10 rejected for user 3: coupon is inactive",
		"ERROR: 2026/10/16 10:00:05 user_password_controller.go:80: Email fallback: reset code for b@x.com is 123456 (dial tcp: refused)",
		"goroutine 1 [running]:",
	}
	for _, l := range lines {
		analyzeErrorLine(l, stats)
	}

	assert.Equal(t, 6, stats.TotalErrors)
	assert.Equal(t, 2, stats.LoginFailures)
	assert.Equal(t, 2, stats.OrdersRejected)
	assert.Equal(t, 2, stats.CouponRejections)
	assert.Equal(t, 1, stats.EmailFallbacks)
	assert.Equal(t, 2, stats.UserActivities["a@x.com"])
	assert.Equal(t, 2, stats.ErrorPatterns["Order rejected for user 3"])
}

func TestAnalyzeInfoLine(t *testing.T) {
	stats := newLogStats()
	analyzeInfoLine("INFO: 2026/10/16 10:00:00 user_auth_login_controller.go:65: User logged in successfully: a@x.com (customer)", stats)
	analyzeInfoLine("INFO: 2026/10/16 10:00:01 order.go:274: Order 12 placed by user 3: total 10.00", stats)
	analyzeInfoLine("INFO: 2026/10/16 10:00:02 logger.go:85: Request x: GET /health", stats)

	assert.Equal(t, 1, stats.LoginSuccess)
	assert.Equal(t, 1, stats.OrdersPlaced)
}

func TestTopEntries(t *testing.T) {
	got := topEntries(map[string]int{"b": 2, "a": 2, "c": 5, "d": 1}, 3)
	assert.Equal(t, []entry{{"c", 5}, {"a", 2}, {"b", 2}}, got)
}

func TestPrintReport(t *testing.T) {
	stats := newLogStats()
	stats.OrdersPlaced = 4
	var buf bytes.Buffer
	printReport(&buf, "2026-10-16", stats, 5)
	assert.Contains(t, buf.String(), "Placed: 4")
}
