package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/brandpulse/social-monitor/internal/ai"
	"github.com/brandpulse/social-monitor/internal/config"
	"github.com/brandpulse/social-monitor/internal/platforms"
	"github.com/brandpulse/social-monitor/internal/search"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("🔍 Social Monitor - API Connectivity Test")
	fmt.Println("=========================================")

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	fmt.Println("\n📡 Testing Serper search...")
	fmt.Println(strings.Repeat("-", 40))

	serperClient := search.NewSerperClient(cfg.SerperAPIKey, cfg.SerperURL)
	for _, platform := range []string{"Reddit", "Quora"} {
		query := fmt.Sprintf("best crm software site:%s", platforms.Domain(platform))
		fmt.Printf("🔸 Testing %s... ", platform)

		hits, err := serperClient.Search(ctx, query, "", 3)
		if err != nil {
			fmt.Printf("❌ ERROR: %v\n", err)
			continue
		}

		fmt.Printf("✅ SUCCESS (%d hits)\n", len(hits))
		if len(hits) > 0 {
			fmt.Printf("   📝 Sample: %q\n", hits[0].Title)
		}
	}

	fmt.Println("\n🤖 Testing LLM provider...")
	fmt.Println(strings.Repeat("-", 40))

	aiClient := ai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIURL)
	fmt.Printf("🔸 Testing %s... ", cfg.DefaultModel)

	text, err := aiClient.Complete(ctx, ai.CompletionRequest{
		Model:     cfg.DefaultModel,
		System:    "You are a connectivity probe. Reply with a single short sentence.",
		User:      "Say hello.",
		MaxTokens: 20,
	})
	if err != nil {
		fmt.Printf("❌ ERROR: %v\n", err)
	} else {
		fmt.Printf("✅ SUCCESS\n   📝 Reply: %q\n", strings.TrimSpace(text))
	}

	fmt.Println("\n✅ API connectivity test completed!")
	fmt.Println("\n💡 Next steps:")
	fmt.Println("   • Configure missing API keys in .env file")
	fmt.Println("   • Run the server with: make run")
}
