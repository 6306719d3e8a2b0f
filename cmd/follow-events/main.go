package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"vofc-ingest-be/pkg/events"
	pktNats "vofc-ingest-be/pkg/nats"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

// follow-events tails the pipeline event stream from NATS, for
// operators watching runs from a machine without database access.
// Only NATS_URL is needed, so the full pipeline config is not loaded.
func main() {
	subject := flag.String("subject", "pipeline.>", "subject filter within the pipeline stream")
	durable := flag.String("durable", "follow-events", "durable consumer name")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	natsURL := os.Getenv("NATS_URL")
	if natsURL == "" {
		log.Fatal("Error: NATS_URL is not set")
	}

	sub, err := pktNats.NewSubscriber(natsURL)
	if err != nil {
		log.Fatalf("Error: Failed to connect to NATS: %v", err)
	}
	defer sub.Close()

	err = sub.Subscribe(*subject, *durable, func(_ context.Context, event events.Event) error {
		switch event.EventType() {
		case "pipeline." + events.TypeRunFailed:
			color.Red("%s  %v", event.EventType(), event.Payload())
		case "pipeline." + events.TypeRunCompleted:
			color.Green("%s  %v", event.EventType(), event.Payload())
		default:
			color.Cyan("%s  %v", event.EventType(), event.Payload())
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	log.Printf("[INFO] Following %s, press Ctrl+C to stop", *subject)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
}
