package main

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(newsCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(leadersCmd)
	rootCmd.AddCommand(publishCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the players on the club roster",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players")
	},
}

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "List the team news bulletin",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/news")
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Show the match schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/schedule")
	},
}

var leadersCmd = &cobra.Command{
	Use:   "leaders",
	Short: "Show the club leaders board",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/leaders")
	},
}

var publishCmd = &cobra.Command{
	Use:   "publish [title]",
	Short: "Publish a team news item",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := strings.Join(args, " ")
		body := fmt.Sprintf(`{"title": %q}`, title)
		return performPostRequest("/news", body)
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint, body string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
