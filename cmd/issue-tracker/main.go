package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/reillywatson/issuetracker/internal/businesstime"
	"github.com/reillywatson/issuetracker/internal/cache"
	"github.com/reillywatson/issuetracker/internal/config"
	"github.com/reillywatson/issuetracker/internal/github"
	"github.com/reillywatson/issuetracker/internal/metrics"
	"github.com/reillywatson/issuetracker/internal/report"
)

func main() {
	// Define command line flags
	startDateStr := flag.String("since", "", "Start date in YYYY-MM-DD format (defaults to 30 days ago)")
	endDateStr := flag.String("until", "", "End date in YYYY-MM-DD format (defaults to now)")
	excludeStr := flag.String("exclude", "", "Comma-separated list of GitHub usernames to ignore (adds to IGNORE_USERS)")
	discussions := flag.Bool("discussions", false, "Measure the repository's discussions instead of issues and pull requests")
	outputPath := flag.String("output", "", "Write a markdown report to this path")

	// Parse flags
	flag.Parse()

	// Check for repository argument
	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("Usage: issue-tracker [flags] owner/repo")
		fmt.Println("Flags:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	repoArg := args[0]
	parts := strings.Split(repoArg, "/")
	if len(parts) != 2 {
		log.Fatal("Invalid repository format. Use 'owner/repo'")
	}
	owner := parts[0]
	repo := parts[1]

	// Parse start date
	startDate := time.Now().AddDate(0, 0, -30) // Default to 30 days ago
	if *startDateStr != "" {
		parsedDate, err := time.Parse("2006-01-02", *startDateStr)
		if err != nil {
			log.Fatalf("Invalid date format. Please use YYYY-MM-DD: %v", err)
		}
		startDate = parsedDate
	}
	endDate := time.Now() // Default to now
	if *endDateStr != "" {
		parsedDate, err := time.Parse("2006-01-02", *endDateStr)
		if err != nil {
			log.Fatalf("Invalid date format. Please use YYYY-MM-DD: %v", err)
		}
		endDate = parsedDate
	}
	if startDate.After(endDate) {
		log.Fatal("Start date cannot be after end date")
	}

	// Resolve environment configuration
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Error reading configuration: %v", err)
	}
	if cfg.Token == "" {
		log.Fatal("GITHUB_TOKEN environment variable not set")
	}

	ignoreUsers := cfg.IgnoreUsers
	if *excludeStr != "" {
		for _, user := range strings.Split(*excludeStr, ",") {
			if trimmed := strings.TrimSpace(user); trimmed != "" {
				ignoreUsers = append(ignoreUsers, trimmed)
			}
		}
	}

	// The calendar is built once and shared by every calculation.
	cal, err := businesstime.NewCalendar(cfg.WorkingHoursStart, cfg.WorkingHoursEnd, cfg.WeekendDays)
	if err != nil {
		log.Fatalf("Invalid working hours configuration: %v", err)
	}

	var results []metrics.IssueMetrics
	var numOpen, numClosed int

	if *discussions {
		client := github.NewDiscussionClient(cfg.Token)

		fmt.Printf("Fetching discussions for %s/%s from %s to %s...\n", owner, repo, startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
		fetched, err := client.FetchDiscussions(owner, repo, startDate, endDate)
		if err != nil {
			log.Fatalf("Error fetching discussions: %v", err)
		}
		fmt.Printf("Found %d discussions for %s/%s\n", len(fetched), owner, repo)

		results, numOpen, numClosed = metrics.ProcessDiscussions(fetched, cal, ignoreUsers)
	} else {
		// Create cache
		cacheImpl, err := cache.NewDefaultCache()
		if err != nil {
			log.Fatalf("Error creating cache: %v", err)
		}
		defer cacheImpl.Close()

		// Create a cached GitHub client
		client := github.NewCachedGitHubClient(cfg.Token, cacheImpl)
		defer client.Close()

		fmt.Printf("Fetching issues for %s/%s from %s to %s...\n", owner, repo, startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
		fetched, err := github.FetchRepoIssues(client, owner, repo, startDate, endDate)
		if err != nil {
			log.Fatalf("Error fetching issues: %v", err)
		}
		fmt.Printf("Found %d issues and pull requests for %s/%s\n", len(fetched), owner, repo)

		results, numOpen, numClosed = metrics.ProcessIssues(fetched, cal, ignoreUsers)
	}

	summary := summarize(results, numOpen, numClosed)

	printResults(summary)

	if *outputPath != "" {
		if err := writeReport(*outputPath, owner, repo, summary); err != nil {
			log.Fatalf("Error writing report: %v", err)
		}
		fmt.Printf("\nReport written to %s\n", *outputPath)
	}
}

// summarize aggregates per-item measurements into summary statistics.
func summarize(results []metrics.IssueMetrics, numOpen, numClosed int) *report.Summary {
	var firstResponses, closes, answers []*time.Duration
	for _, r := range results {
		firstResponses = append(firstResponses, r.TimeToFirstResponse)
		closes = append(closes, r.TimeToClose)
		answers = append(answers, r.TimeToAnswer)
	}

	return &report.Summary{
		Results:       results,
		FirstResponse: metrics.Summarize(firstResponses),
		TimeToClose:   metrics.Summarize(closes),
		TimeToAnswer:  metrics.Summarize(answers),
		NumOpen:       numOpen,
		NumClosed:     numClosed,
	}
}

// printResults outputs the analysis results in a readable format
func printResults(summary *report.Summary) {
	if len(summary.Results) == 0 {
		fmt.Println("No items found")
		return
	}

	fmt.Println("\nPer-item metrics:")
	fmt.Println("-----------------")
	for _, item := range summary.Results {
		fmt.Printf("%s (%s)\n", item.Title, item.URL)
		fmt.Printf("  Time to First Response: %s\n", report.FormatDuration(item.TimeToFirstResponse))
		fmt.Printf("  Time to Close: %s\n", report.FormatDuration(item.TimeToClose))
		if item.TimeToAnswer != nil {
			fmt.Printf("  Time to Answer: %s\n", report.FormatDuration(item.TimeToAnswer))
		}
		fmt.Println()
	}

	fmt.Println("\nSummary Statistics:")
	fmt.Println("-----------------")
	printStats("Time to First Response", summary.FirstResponse)
	printStats("Time to Close", summary.TimeToClose)
	printStats("Time to Answer", summary.TimeToAnswer)
	fmt.Printf("Items open: %d, items closed: %d\n", summary.NumOpen, summary.NumClosed)
}

func printStats(name string, stats *metrics.Stats) {
	if stats == nil {
		fmt.Printf("%s: No data\n", name)
		return
	}
	fmt.Printf("%s:\n", name)
	fmt.Printf("  Mean: %v\n", stats.Average)
	fmt.Printf("  Median: %v\n", stats.Median)
	fmt.Printf("  90th percentile: %v\n", stats.P90)
}

func writeReport(path, owner, repo string, summary *report.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	title := fmt.Sprintf("Issue Metrics for %s/%s", owner, repo)
	if err := report.WriteMarkdown(f, title, summary); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
