package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"questacademy/internal/config"
	"questacademy/internal/database"
	"questacademy/internal/kvstore"
)

func main() {
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)

	exportOutput := exportCmd.String("output", "", "Output file path (default: backup_YYYYMMDD_HHMMSS.json)")
	importInput := importCmd.String("input", "", "Input file path (required)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.EnsureSchema(); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		handleExport(db, *exportOutput)

	case "import":
		importCmd.Parse(os.Args[2:])
		if *importInput == "" {
			fmt.Println("Error: -input flag is required")
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		handleImport(db, *importInput)

	default:
		printUsage()
		os.Exit(1)
	}
}

func handleExport(db *database.DB, outputPath string) {
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = fmt.Sprintf("backup_%s.json", timestamp)
	}

	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}

	rows, err := db.Query("SELECT k, v FROM kv ORDER BY k")
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}
	defer rows.Close()

	entries := map[string]string{}
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		entries[k] = v
	}
	if err := rows.Err(); err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}
	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	log.Printf("Exported %d keys to %s", len(entries), outputPath)
}

func handleImport(db *database.DB, inputPath string) {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		log.Fatalf("Failed to read input file: %v", err)
	}

	entries := map[string]string{}
	if err := json.Unmarshal(raw, &entries); err != nil {
		log.Fatalf("Failed to decode input file: %v", err)
	}

	store := kvstore.NewSQLStore(db)
	for k, v := range entries {
		if err := store.Set(k, v); err != nil {
			log.Fatalf("Import failed at key %q: %v", k, err)
		}
	}

	log.Printf("Imported %d keys from %s", len(entries), inputPath)
}

func printUsage() {
	fmt.Println("QuestAcademy Data Backup Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  backup export [options]    Export all stored keys to a JSON file")
	fmt.Println("  backup import [options]    Import keys from a JSON file (upserts)")
	fmt.Println()
	fmt.Println("Export Options:")
	fmt.Println("  -output <file>    Output file path (default: backup_YYYYMMDD_HHMMSS.json)")
	fmt.Println()
	fmt.Println("Import Options:")
	fmt.Println("  -input <file>     Input file path (required)")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  DB_TYPE    Database type: sqlite, postgres, or mysql (default: sqlite)")
	fmt.Println("  DB_PATH    SQLite database path (default: ./questacademy.db)")
	fmt.Println("  DB_URL     PostgreSQL or MySQL connection URL")
}
