package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/newsbrief/newsbrief/internal/application"
	"github.com/newsbrief/newsbrief/internal/service"
)

func main() {
	var (
		language = flag.String("language", "english", "Output language for the summary")
		length   = flag.String("length", "medium", "Summary length tier: short, medium, or detailed")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <article-url>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	// Create application (contains all the clients)
	app, err := application.New()
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer app.Close()

	result, err := app.SummaryService.Process(context.Background(), service.Request{
		URL:           flag.Arg(0),
		Language:      *language,
		SummaryLength: *length,
	})
	if err != nil {
		log.Fatalf("Summarization failed: %v", err)
	}

	fmt.Println(result.Summary)
}
