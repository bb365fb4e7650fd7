package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

type LogStats struct {
	TotalErrors       int
	LoginSuccess      int
	LoginFailures     int
	OTPFailures       int
	OrdersPlaced      int
	OrdersRejected    int
	CouponRejections  int
	EmailFallbacks    int
	ConfirmationFails int
	Panics            int
	UserActivities    map[string]int
	ErrorPatterns     map[string]int
}

func newLogStats() *LogStats {
	return &LogStats{
		UserActivities: make(map[string]int),
		ErrorPatterns:  make(map[string]int),
	}
}

var (
	emailRegex   = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	messageRegex = regexp.MustCompile(`^\S+: \S+ \S+ \S+\.go:\d+: (.*)$`)
)

func main() {
	logDir := flag.String("dir", "./logs", "directory holding the daily log files")
	day := flag.String("date", time.Now().Format("2006-01-02"), "day to analyze (YYYY-MM-DD)")
	top := flag.Int("top", 5, "entries shown in the top lists")
	flag.Parse()

	stats := newLogStats()
	analyzeFile(filepath.Join(*logDir, fmt.Sprintf("error-%s.log", *day)), stats, analyzeErrorLine)
	analyzeFile(filepath.Join(*logDir, fmt.Sprintf("info-%s.log", *day)), stats, analyzeInfoLine)

	printReport(os.Stdout, *day, stats, *top)
}

func analyzeFile(logFile string, stats *LogStats, analyze func(string, *LogStats)) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		analyze(scanner.Text(), stats)
	}
}

func analyzeErrorLine(line string, stats *LogStats) {
	if !strings.HasPrefix(line, "ERROR: ") {
		// continuation of a stack trace
		return
	}
	stats.TotalErrors++

	switch {
	case strings.Contains(line, "Login attempt failed"):
		stats.LoginFailures++
		extractUserActivity(line, stats)
	case strings.Contains(line, "OTP verification failed"):
		stats.OTPFailures++
		extractUserActivity(line, stats)
	case strings.Contains(line, "Order rejected"):
		stats.OrdersRejected++
		if strings.Contains(strings.ToLower(line), "coupon") {
			stats.CouponRejections++
		}
	case strings.Contains(line, "Coupon") && strings.Contains(line, "rejected"):
		stats.CouponRejections++
	case strings.Contains(line, "Email fallback"):
		stats.EmailFallbacks++
		extractUserActivity(line, stats)
	case strings.Contains(line, "Failed to send confirmation"):
		stats.ConfirmationFails++
	case strings.Contains(line, "Stack Trace"):
		stats.Panics++
	}

	extractErrorPattern(line, stats)
}

func analyzeInfoLine(line string, stats *LogStats) {
	switch {
	case strings.Contains(line, "User logged in successfully"):
		stats.LoginSuccess++
		extractUserActivity(line, stats)
	case strings.Contains(line, "placed by user"):
		stats.OrdersPlaced++
	}
}

func extractUserActivity(line string, stats *LogStats) {
	if email := emailRegex.FindString(line); email != "" {
		stats.UserActivities[strings.ToLower(email)]++
	}
}

// extractErrorPattern keys an error line by its message up to the first colon,
// so lines that differ only in ids or emails group together
func extractErrorPattern(line string, stats *LogStats) {
	msg := line
	if m := messageRegex.FindStringSubmatch(line); m != nil {
		msg = m[1]
	}
	if i := strings.Index(msg, ":"); i > 0 {
		msg = msg[:i]
	}
	msg = strings.TrimSpace(msg)
	if msg != "" {
		stats.ErrorPatterns[msg]++
	}
}

func printReport(w io.Writer, day string, stats *LogStats, limit int) {
	fmt.Fprintln(w, "\n=== Log Analysis Report ===")
	fmt.Fprintf(w, "Day: %s  Generated: %s\n", day, time.Now().Format("2006-01-02 15:04:05"))

	fmt.Fprintln(w, "\n1. Authentication Statistics:")
	fmt.Fprintf(w, "   Successful Logins: %d\n", stats.LoginSuccess)
	fmt.Fprintf(w, "   Failed Logins: %d\n", stats.LoginFailures)
	fmt.Fprintf(w, "   Failed OTP Verifications: %d\n", stats.OTPFailures)

	fmt.Fprintln(w, "\n2. Orders:")
	fmt.Fprintf(w, "   Placed: %d\n", stats.OrdersPlaced)
	fmt.Fprintf(w, "   Rejected: %d\n", stats.OrdersRejected)
	fmt.Fprintf(w, "   Coupon Rejections: %d\n", stats.CouponRejections)

	fmt.Fprintln(w, "\n3. Email:")
	fmt.Fprintf(w, "   Reset Code Fallbacks: %d\n", stats.EmailFallbacks)
	fmt.Fprintf(w, "   Failed Confirmations: %d\n", stats.ConfirmationFails)

	fmt.Fprintln(w, "\n4. Error Statistics:")
	fmt.Fprintf(w, "   Total Errors: %d\n", stats.TotalErrors)
	fmt.Fprintf(w, "   Recovered Panics: %d\n", stats.Panics)

	fmt.Fprintln(w, "\n5. Most Active Users:")
	for _, e := range topEntries(stats.UserActivities, limit) {
		fmt.Fprintf(w, "   %s: %d activities\n", e.key, e.count)
	}

	fmt.Fprintln(w, "\n6. Most Common Errors:")
	for _, e := range topEntries(stats.ErrorPatterns, limit) {
		fmt.Fprintf(w, "   %s: %d occurrences\n", e.key, e.count)
	}
}

type entry struct {
	key   string
	count int
}

// topEntries returns the limit largest counts, ties broken alphabetically
func topEntries(counts map[string]int, limit int) []entry {
	entries := make([]entry, 0, len(counts))
	for k, v := range counts {
		entries = append(entries, entry{k, v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].key < entries[j].key
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
