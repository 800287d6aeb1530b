package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"

	"github.com/promptward/promptward/pkg/config"
	"github.com/promptward/promptward/pkg/guard"
	"github.com/promptward/promptward/pkg/telemetry"
)

const Version = "0.1.0"

// Exit codes for scan mode, so shell hooks can gate on the verdict
// without parsing output.
const (
	exitAllowed     = 0
	exitBlocked     = 2
	exitBlockNotify = 3
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "scan":
		if len(os.Args) < 3 {
			fmt.Println("Usage: promptward scan [flags] <text>")
			os.Exit(1)
		}
		runScan(os.Args[2:])
	case "serve":
		port := ""
		if len(os.Args) > 2 {
			port = os.Args[2]
		}
		runServer(port)
	case "version":
		fmt.Printf("promptward v%s\n", Version)
		fmt.Println("Deterministic prompt-injection detection engine")
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf("promptward v%s - prompt-injection detection engine\n\n", Version)
	fmt.Println("Usage:")
	fmt.Println("  promptward scan [flags] <text>   Classify one message and exit")
	fmt.Println("  promptward serve [port]          Start the HTTP API (default: 8787)")
	fmt.Println("  promptward version               Show version")
	fmt.Println("")
	fmt.Println("Scan flags:")
	fmt.Println("  --user <id>   Attribute the message to a user (default: cli)")
	fmt.Println("  --owner       Evaluate in owner context")
	fmt.Println("  --group       Evaluate in group-chat context")
	fmt.Println("  --json        Emit the full verdict as JSON")
	fmt.Println("")
	fmt.Println("Exit codes (scan): 0 allowed/logged/warned, 2 blocked, 3 blocked with notify")
	fmt.Println("")
	fmt.Println("Environment Variables:")
	fmt.Println("  PROMPTWARD_CONFIG       Path to the YAML configuration file")
	fmt.Println("  PROMPTWARD_SENSITIVITY  Override sensitivity: low, medium, high, paranoid")
	fmt.Println("  PROMPTWARD_OWNER_IDS    Comma-separated owner user ids")
}

func loadConfig() *config.Config {
	cfg, err := config.Load(os.Getenv("PROMPTWARD_CONFIG"))
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

// ============================================================================
// CLI Mode
// ============================================================================

func runScan(args []string) {
	mctx := guard.Context{UserID: "cli"}
	asJSON := false

	var words []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--user":
			if i+1 >= len(args) {
				log.Fatal("--user requires a value")
			}
			i++
			mctx.UserID = args[i]
		case "--owner":
			mctx.IsOwner = true
		case "--group":
			mctx.IsGroup = true
		case "--json":
			asJSON = true
		default:
			words = append(words, args[i])
		}
	}
	if len(words) == 0 {
		log.Fatal("no text to scan")
	}
	text := strings.Join(words, " ")

	eng, err := guard.New(loadConfig())
	if err != nil {
		log.Fatalf("engine: %v", err)
	}

	result := eng.Evaluate(context.Background(), text, mctx)
	eng.Close()

	if asJSON {
		output, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(output))
	} else {
		fmt.Printf("severity=%s action=%s", result.Severity, result.Action)
		if len(result.Reasons) > 0 {
			fmt.Printf(" reasons=%s", strings.Join(result.Reasons, ","))
		}
		if result.Fingerprint != "" {
			fmt.Printf(" fingerprint=%s", result.Fingerprint)
		}
		fmt.Println()
	}

	switch result.Action {
	case guard.ActionBlockNotify:
		os.Exit(exitBlockNotify)
	case guard.ActionBlock:
		os.Exit(exitBlocked)
	default:
		os.Exit(exitAllowed)
	}
}

// ============================================================================
// HTTP Server Mode
// ============================================================================

func runServer(port string) {
	cfg := loadConfig()
	if port == "" {
		port = fmt.Sprintf("%d", cfg.Server.Port)
	}

	metrics := telemetry.New()
	eng, err := guard.New(cfg, guard.WithMetrics(metrics))
	if err != nil {
		log.Fatalf("engine: %v", err)
	}
	defer eng.Close()

	// Hot reload: edits to the config file swap the policy without a
	// restart. Only available when a file path was given.
	if path := os.Getenv("PROMPTWARD_CONFIG"); path != "" {
		watcher, err := config.Watch(path, func(next *config.Config) {
			if err := eng.Reload(next); err != nil {
				log.Printf("[WARN] config reload rejected: %v", err)
				return
			}
			log.Printf("configuration reloaded from %s", path)
		})
		if err != nil {
			log.Printf("[WARN] config watcher disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	app := fiber.New(fiber.Config{
		AppName: "promptward",
	})

	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "version": Version})
	})

	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	app.Post("/check", func(c fiber.Ctx) error {
		var req struct {
			Text    string `json:"text"`
			UserID  string `json:"user_id"`
			IsOwner bool   `json:"is_owner"`
			IsGroup bool   `json:"is_group"`
			ChatID  string `json:"chat_id"`
		}
		if err := c.Bind().Body(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "invalid request"})
		}
		if req.Text == "" {
			return c.Status(400).JSON(fiber.Map{"error": "text field is required"})
		}
		if req.UserID == "" {
			req.UserID = "anonymous"
		}

		result := eng.Evaluate(c.Context(), req.Text, guard.Context{
			UserID:  req.UserID,
			IsOwner: req.IsOwner,
			IsGroup: req.IsGroup,
			ChatID:  req.ChatID,
		})
		return c.JSON(result)
	})

	log.Printf("promptward HTTP server starting on :%s", port)
	log.Printf("Endpoints:")
	log.Printf("  GET  /health   - Health check")
	log.Printf("  GET  /metrics  - Prometheus metrics")
	log.Printf("  POST /check    - Classify one message")

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
