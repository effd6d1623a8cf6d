package database

import (
	"context"
	"fmt"
	"log"
	"preop-service/internal/app/config"
	"preop-service/internal/pkg/constvars"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func NewMongoDB(driverConfig *config.DriverConfig) *mongo.Client {
	connectionString := fmt.Sprintf(
		"mongodb://%s:%s@%s:%s",
		driverConfig.MongoDB.Username,
		driverConfig.MongoDB.Password,
		driverConfig.MongoDB.Host,
		driverConfig.MongoDB.Port,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbOptions := options.Client().ApplyURI(connectionString)
	client, err := mongo.Connect(ctx, dbOptions)
	if err != nil {
		log.Fatalf("Failed to connect to mongo database: %s", err.Error())
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatalf("Failed to ping or test the connection to mongo database: %s", err.Error())
	}
	log.Println("Successfully connected to mongo database")
	return client
}

// EnsureIndexes creates the indexes the dashboard queries rely on. Creating an
// existing index is a no-op for MongoDB.
func EnsureIndexes(ctx context.Context, client *mongo.Client, dbName string) error {
	questionnaires := client.Database(dbName).Collection(constvars.MongoCollectionQuestionnaires)
	_, err := questionnaires.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "submittedAt", Value: -1}}},
		{Keys: bson.D{{Key: "reviewed", Value: 1}, {Key: "submittedAt", Value: -1}}},
	})
	if err != nil {
		return err
	}

	medications := client.Database(dbName).Collection(constvars.MongoCollectionMedications)
	_, err = medications.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}},
	})
	if err != nil {
		return err
	}

	log.Println("Successfully ensured mongo indexes")
	return nil
}
