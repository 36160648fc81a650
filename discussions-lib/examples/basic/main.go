// ABOUTME: Basic example showing a discussion lookup with the library
// ABOUTME: Demonstrates minimal configuration and per-lookup search modes

package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	discussions "discussions-app-api/discussions-lib"
)

func main() {
	pageURL := "https://go.dev/blog/go1.22"
	if len(os.Args) > 1 {
		pageURL = os.Args[1]
	}

	client, err := discussions.NewClient(
		discussions.WithCacheTTL(10 * time.Minute),
	)
	if err != nil {
		log.Fatal("Failed to create client:", err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := client.Lookup(ctx, pageURL, "", discussions.WithAllModes())
	if err != nil {
		log.Fatal("Lookup failed:", err)
	}

	fmt.Println("=== Hacker News ===")
	fmt.Println(result.HackerNews.Text())

	fmt.Println("\n=== Reddit ===")
	fmt.Println(result.Reddit.Text())
}
