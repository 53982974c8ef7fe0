package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/barter-exchange/pkg/handlers"
	"github.com/chris/barter-exchange/pkg/notify"
	dydbstore "github.com/chris/barter-exchange/pkg/storage/dynamodb"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// AWS Session
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(cfg)
	exchangesTable := os.Getenv("DYNAMODB_EXCHANGES_TABLE_NAME")
	itemsTable := os.Getenv("DYNAMODB_ITEMS_TABLE_NAME")
	reviewsTable := os.Getenv("DYNAMODB_REVIEWS_TABLE_NAME")
	accountsTable := os.Getenv("DYNAMODB_ACCOUNTS_TABLE_NAME")

	if exchangesTable == "" || itemsTable == "" || reviewsTable == "" || accountsTable == "" {
		log.Fatal("One or more DynamoDB table name environment variables are not set")
	}

	// SQS Client and Notifier
	sqsClient := sqs.NewFromConfig(cfg)
	sqsQueueURL := os.Getenv("SQS_QUEUE_URL")
	if sqsQueueURL == "" {
		log.Fatal("SQS_QUEUE_URL environment variable not set")
	}
	notifier := notify.NewSQSNotifier(sqsClient, sqsQueueURL)

	// Create our storage implementation
	store := dydbstore.New(dbClient, exchangesTable, itemsTable, reviewsTable, accountsTable)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	router := handlers.NewRouter(store, notifier, logger)

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info("Starting exchange API", "port", port)
	if err := http.ListenAndServe(":"+port, router); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
