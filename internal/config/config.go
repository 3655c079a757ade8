// Package config resolves the tool's settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds the resolved settings for a run. Calendar-related values are
// validated when the calendar is constructed, not here.
type Config struct {
	Token             string
	WorkingHoursStart int
	WorkingHoursEnd   int
	WeekendDays       []string
	IgnoreUsers       []string
}

// FromEnv reads configuration from the environment:
//
//	GITHUB_TOKEN        API token (may be empty; callers decide if required)
//	WORKING_HOURS_START work-day start hour, default 9
//	WORKING_HOURS_END   work-day end hour, default 18
//	WEEKEND_DAYS        comma-separated weekday names, default "Friday,Saturday"
//	IGNORE_USERS        comma-separated logins whose activity never counts
func FromEnv() (*Config, error) {
	cfg := &Config{
		Token:             os.Getenv("GITHUB_TOKEN"),
		WorkingHoursStart: 9,
		WorkingHoursEnd:   18,
		WeekendDays:       []string{"Friday", "Saturday"},
		IgnoreUsers:       splitList(os.Getenv("IGNORE_USERS")),
	}

	if v := os.Getenv("WORKING_HOURS_START"); v != "" {
		hour, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid WORKING_HOURS_START %q: %w", v, err)
		}
		cfg.WorkingHoursStart = hour
	}

	if v := os.Getenv("WORKING_HOURS_END"); v != "" {
		hour, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid WORKING_HOURS_END %q: %w", v, err)
		}
		cfg.WorkingHoursEnd = hour
	}

	if v := os.Getenv("WEEKEND_DAYS"); v != "" {
		cfg.WeekendDays = splitList(v)
	}

	return cfg, nil
}

// splitList splits a comma-separated value, trimming whitespace and dropping
// empty entries.
func splitList(value string) []string {
	var result []string
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
