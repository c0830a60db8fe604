package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/ocr-batch-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("ocr-batch-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("ocr-batch-mcp - MCP server for batch text recognition")
			fmt.Println()
			fmt.Println("Usage: ocr-batch-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  OCR_MCP_LOG_LEVEL=debug    Enable debug logging")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	logLevel := os.Getenv("OCR_MCP_LOG_LEVEL")
	if logLevel == "debug" {
		log.Println("Debug logging enabled")
	}

	log.Printf("ocr-batch-mcp %s starting", Version)

	s := server.New()
	if err := s.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
