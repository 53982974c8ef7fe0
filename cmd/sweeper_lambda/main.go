package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/barter-exchange/pkg/models"
	"github.com/chris/barter-exchange/pkg/storage"
	dydbstore "github.com/chris/barter-exchange/pkg/storage/dynamodb"
	"github.com/joho/godotenv"
)

var store storage.Storage

const staleProposalThreshold = 30 * 24 * time.Hour

func init() {
	// Load environment variables for local testing.
	godotenv.Load()

	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)

	exchangesTable := os.Getenv("DYNAMODB_EXCHANGES_TABLE_NAME")
	itemsTable := os.Getenv("DYNAMODB_ITEMS_TABLE_NAME")
	reviewsTable := os.Getenv("DYNAMODB_REVIEWS_TABLE_NAME")
	accountsTable := os.Getenv("DYNAMODB_ACCOUNTS_TABLE_NAME")

	store = dydbstore.New(dbClient, exchangesTable, itemsTable, reviewsTable, accountsTable)
}

// HandleRequest is triggered by an EventBridge Schedule. It cancels
// proposals that have sat unanswered in PENDING past the threshold.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting sweep for stale pending exchanges...")

	stale, err := store.GetStaleExchanges(ctx, staleProposalThreshold)
	if err != nil {
		log.Printf("ERROR: failed to get stale exchanges: %v", err)
		return err
	}

	if len(stale) == 0 {
		log.Println("No stale exchanges found.")
		return nil
	}

	log.Printf("Found %d stale exchanges. Cancelling them...", len(stale))

	for _, ex := range stale {
		if _, err := store.UpdateExchangeStatus(ctx, ex.Id, models.CANCELLED); err != nil {
			log.Printf("ERROR: failed to cancel exchange %s: %v", ex.Id, err)
			// Continue to the next exchange, don't let one failure stop the whole batch.
			continue
		}
		log.Printf("Successfully cancelled exchange %s", ex.Id)
	}

	log.Println("Sweep finished.")
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
