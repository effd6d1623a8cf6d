package questionnaires

import (
	"context"
	"preop-service/internal/app/contracts"
	"preop-service/internal/app/models"
	"preop-service/internal/pkg/constvars"
	"preop-service/internal/pkg/dto/requests"
	"preop-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuestionnaireMongoRepository struct {
	Collection *mongo.Collection
}

func NewQuestionnaireMongoRepository(db *mongo.Client, dbName string) contracts.QuestionnaireRepository {
	return &QuestionnaireMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionQuestionnaires),
	}
}

func (repo *QuestionnaireMongoRepository) CreateQuestionnaire(ctx context.Context, entityQuestionnaire *models.Questionnaire) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, entityQuestionnaire)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *QuestionnaireMongoRepository) FindAll(ctx context.Context, filter *requests.QuestionnaireFilter) ([]models.Questionnaire, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	if filter.PageSize > 0 {
		findOptions.SetSkip(filter.Skip()).SetLimit(int64(filter.PageSize))
	}

	cursor, err := repo.Collection.Find(ctx, buildQuestionnaireFilter(filter), findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	questionnaires := make([]models.Questionnaire, 0)
	err = cursor.All(ctx, &questionnaires)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return questionnaires, nil
}

func (repo *QuestionnaireMongoRepository) CountAll(ctx context.Context, filter *requests.QuestionnaireFilter) (int, error) {
	total, err := repo.Collection.CountDocuments(ctx, buildQuestionnaireFilter(filter))
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return int(total), nil
}

func (repo *QuestionnaireMongoRepository) FindByID(ctx context.Context, questionnaireID string) (*models.Questionnaire, error) {
	var questionnaire models.Questionnaire
	objectID, err := primitive.ObjectIDFromHex(questionnaireID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&questionnaire)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &questionnaire, nil
}

func (repo *QuestionnaireMongoRepository) UpdateReviewed(ctx context.Context, questionnaireID string, reviewed bool) error {
	return repo.updateByID(ctx, questionnaireID, bson.M{
		"reviewed":  reviewed,
		"updatedAt": time.Now(),
	})
}

func (repo *QuestionnaireMongoRepository) UpdatePhysicianNotes(ctx context.Context, questionnaireID string, notes *models.PhysicianNotes) error {
	return repo.updateByID(ctx, questionnaireID, bson.M{
		"data.physician": notes,
		"updatedAt":      time.Now(),
	})
}

func (repo *QuestionnaireMongoRepository) updateByID(ctx context.Context, questionnaireID string, fields bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(questionnaireID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	result, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": fields})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrQuestionnaireNotFound(nil, questionnaireID)
	}
	return nil
}

func buildQuestionnaireFilter(filter *requests.QuestionnaireFilter) bson.M {
	query := bson.M{}
	if filter != nil && filter.Reviewed != nil {
		query["reviewed"] = *filter.Reviewed
	}
	return query
}
