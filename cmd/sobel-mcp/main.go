package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/image-sobel/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	debug := false

	for _, arg := range os.Args[1:] {
		switch arg {
		case "--version", "-v", "version":
			fmt.Printf("sobel-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("sobel-mcp - MCP server for Sobel edge maps")
			fmt.Println()
			fmt.Println("Usage: sobel-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --debug          Log startup details to stderr")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client.")
			return
		case "--debug":
			debug = true
		default:
			fmt.Fprintf(os.Stderr, "sobel-mcp: unknown argument %q\n", arg)
			os.Exit(2)
		}
	}

	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if debug {
		log.Printf("Sobel MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	srv := server.New()
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
