package medications

import (
	"context"
	"preop-service/internal/app/contracts"
	"preop-service/internal/app/models"
	"preop-service/internal/pkg/constvars"
	"preop-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MedicationMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicationMongoRepository(db *mongo.Client, dbName string) contracts.MedicationRepository {
	return &MedicationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMedications),
	}
}

func (repo *MedicationMongoRepository) FindAll(ctx context.Context) ([]models.Medication, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	medications := make([]models.Medication, 0)
	err = cursor.All(ctx, &medications)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return medications, nil
}
