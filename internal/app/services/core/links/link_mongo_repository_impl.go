package links

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

type LinkMongoRepository struct {
	Collection *mongo.Collection
}

func NewLinkMongoRepository(db *mongo.Client, dbName string) contracts.LinkRepository {
	return &LinkMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionLinks),
	}
}

func (repo *LinkMongoRepository) CreateLink(ctx context.Context, link *models.Link) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, link)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *LinkMongoRepository) FindLinkByID(ctx context.Context, linkID string) (*models.Link, error) {
	objectID, err := primitive.ObjectIDFromHex(linkID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var link models.Link
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&link)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &link, nil
}

func (repo *LinkMongoRepository) FindAllLinks(ctx context.Context) ([]models.Link, error) {
	findOptions := options.Find().SetSort(bson.M{"createdAt": 1})

	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	links := []models.Link{}
	if err := cursor.All(ctx, &links); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return links, nil
}

func (repo *LinkMongoRepository) UpdateLink(ctx context.Context, link *models.Link) error {
	objectID, err := primitive.ObjectIDFromHex(link.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{
		"$set": bson.M{
			"title":     link.Title,
			"url":       link.URL,
			"updatedAt": link.UpdatedAt,
		},
	}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *LinkMongoRepository) DeleteLinkByID(ctx context.Context, linkID string) error {
	objectID, err := primitive.ObjectIDFromHex(linkID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
