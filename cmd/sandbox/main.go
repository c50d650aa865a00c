package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"sandbox3d/internal/config"
	"sandbox3d/internal/game"
)

func init() {
	// raylib needs the GL context on the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to the sandbox YAML config")
	flag.Parse()

	// Change working directory to executable location for deployed builds so relative
	// asset paths resolve. Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			if abs, err := filepath.Abs(*configPath); err == nil {
				*configPath = abs
			}
			if err := os.Chdir(execDir); err != nil {
				log.Printf("Sandbox: staying in working directory: %v", err)
			}
		}
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Sandbox: %v", err)
	}

	g, err := game.New(cfg)
	if err != nil {
		log.Fatalf("Sandbox: %v", err)
	}
	if err := g.Run(); err != nil {
		log.Fatalf("Sandbox: %v", err)
	}
}
