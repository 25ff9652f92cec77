package surveys

import (
	"context"
	"vitaliv-service/internal/app/contracts"
	"vitaliv-service/internal/app/models"
	"vitaliv-service/internal/pkg/constvars"
	"vitaliv-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SurveyResponseMongoRepository struct {
	Collection *mongo.Collection
}

func NewSurveyResponseMongoRepository(db *mongo.Client, dbName string) contracts.SurveyResponseRepository {
	return &SurveyResponseMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSurveyResponses),
	}
}

func (repo *SurveyResponseMongoRepository) CreateSurveyResponse(ctx context.Context, response *models.SurveyResponse) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, response)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *SurveyResponseMongoRepository) FindByUserAndSurvey(ctx context.Context, userID, surveyID string, page, pageSize int) ([]models.SurveyResponse, error) {
	filter := bson.M{
		"userId":   userID,
		"surveyId": surveyID,
	}
	findOptions := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	surveyResponses := []models.SurveyResponse{}
	if err := cursor.All(ctx, &surveyResponses); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return surveyResponses, nil
}

func (repo *SurveyResponseMongoRepository) CountByUserAndSurvey(ctx context.Context, userID, surveyID string) (int64, error) {
	filter := bson.M{
		"userId":   userID,
		"surveyId": surveyID,
	}
	total, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return total, nil
}
