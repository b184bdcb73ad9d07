package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/tattlebot/tattle/internal/config"
	"github.com/tattlebot/tattle/internal/irc"
)

// Version information - set at build time via ldflags
var (
	version   = "dev"
	buildDate = "unknown"
	gitCommit = "unknown"
)

func main() {
	// Command line flags
	configPath := flag.String("c", "./config.yaml", "Path to configuration file")
	showVersion := flag.Bool("v", false, "Show version information and exit")
	showVersionLong := flag.Bool("version", false, "Show version information and exit")
	flag.Parse()

	// Show version and exit
	if *showVersion || *showVersionLong {
		fmt.Printf("tattle version %s\n", version)
		fmt.Printf("Built: %s\n", buildDate)
		fmt.Printf("Commit: %s\n", gitCommit)
		os.Exit(0)
	}

	// Set version info in irc package
	irc.Version = version
	irc.BuildDate = buildDate
	irc.GitCommit = gitCommit

	// Optional .env for secrets kept out of the YAML file
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	// Write PID file
	if err := writePIDFile(); err != nil {
		log.Printf("Warning: could not write PID file: %v", err)
	}

	run(*configPath)
}

func writePIDFile() error {
	pid := os.Getpid()
	return os.WriteFile("pid.txt", []byte(fmt.Sprintf("%d\n", pid)), 0644)
}

func run(configPath string) {
	// Make config path absolute
	if !filepath.IsAbs(configPath) {
		wd, _ := os.Getwd()
		configPath = filepath.Join(wd, configPath)
	}

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Environment overrides for credentials
	if s := os.Getenv("TATTLE_SECRET"); s != "" {
		cfg.Secret = s
	}
	if p := os.Getenv("TATTLE_SERVER_PASS"); p != "" {
		cfg.ServerPass = p
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	// Create IRC client
	client, err := irc.NewClient(cfg)
	if err != nil {
		log.Fatalf("Failed to create IRC client: %v", err)
	}

	// Signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Printf("Received signal %v, shutting down...", sig)
		client.Quit()
		os.Exit(0)
	}()

	// Connect and run
	log.Printf("Connecting to %s:%d...", cfg.Server, cfg.Port)
	if err := client.Connect(); err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}

	log.Println("Connected, entering main loop...")
	client.Loop()
}
