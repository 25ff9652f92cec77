package checklists

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

type ChecklistMongoRepository struct {
	Collection *mongo.Collection
}

func NewChecklistMongoRepository(db *mongo.Client, dbName string) contracts.ChecklistRepository {
	return &ChecklistMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionChecklistItems),
	}
}

func (repo *ChecklistMongoRepository) CreateItem(ctx context.Context, item *models.ChecklistItem) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, item)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *ChecklistMongoRepository) FindItemByID(ctx context.Context, itemID string) (*models.ChecklistItem, error) {
	objectID, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var item models.ChecklistItem
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&item)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &item, nil
}

func (repo *ChecklistMongoRepository) FindItemsByUserID(ctx context.Context, userID string) ([]models.ChecklistItem, error) {
	findOptions := options.Find().SetSort(bson.M{"createdAt": 1})

	cursor, err := repo.Collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	items := []models.ChecklistItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return items, nil
}

func (repo *ChecklistMongoRepository) UpdateItem(ctx context.Context, item *models.ChecklistItem) error {
	objectID, err := primitive.ObjectIDFromHex(item.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{
		"$set": bson.M{
			"done":      item.Done,
			"updatedAt": item.UpdatedAt,
		},
	}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *ChecklistMongoRepository) DeleteItemByID(ctx context.Context, itemID string) error {
	objectID, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
