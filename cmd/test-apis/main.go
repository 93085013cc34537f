package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/Anway-Kapoor/SentiNews/internal/config"
	"github.com/Anway-Kapoor/SentiNews/internal/models"
	"github.com/Anway-Kapoor/SentiNews/internal/sources"
)

func main() {
	topic := flag.String("topic", "technology", "Topic to search")
	timeRange := flag.String("range", "week", "Time range (day, week, month)")
	flag.Parse()

	fmt.Println("🔍 SentiNews - Provider Connectivity Test")
	fmt.Println("=========================================")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fmt.Printf("\n📡 Searching providers for %q...\n", *topic)
	fmt.Println(strings.Repeat("-", 40))

	tr := models.ParseTimeRange(*timeRange)
	testProvider(ctx, sources.NewNewsAPISource(cfg.NewsAPIKey), *topic, tr)
	testProvider(ctx, sources.NewHackerNewsSource(), *topic, tr)

	fmt.Println("\n✅ Provider connectivity test completed!")
}

func testProvider(ctx context.Context, provider sources.Provider, topic string, timeRange models.TimeRange) {
	fmt.Printf("🔸 Testing %s... ", provider.Name())

	if !provider.Enabled() {
		fmt.Printf("⚠️  DISABLED (missing API key)\n")
		return
	}

	posts, err := provider.Search(ctx, topic, timeRange)
	if err != nil {
		fmt.Printf("❌ ERROR: %v\n", err)
		return
	}

	fmt.Printf("✅ SUCCESS (%d posts found)\n", len(posts))
	if len(posts) > 0 {
		fmt.Printf("   📝 Sample: %q\n", posts[0].Text)
	}
}
