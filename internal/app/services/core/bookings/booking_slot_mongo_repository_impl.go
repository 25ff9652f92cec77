package bookings

import (
	"context"
	"vitaliv-service/internal/app/contracts"
	"vitaliv-service/internal/app/models"
	"vitaliv-service/internal/pkg/constvars"
	"vitaliv-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookingSlotMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingSlotMongoRepository(db *mongo.Client, dbName string) contracts.BookingSlotRepository {
	return &BookingSlotMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBookingSlots),
	}
}

func (repo *BookingSlotMongoRepository) FindSlot(ctx context.Context, date, startTime string) (*models.BookingSlot, error) {
	filter := bson.M{
		"date":      date,
		"startTime": startTime,
	}

	var slot models.BookingSlot
	err := repo.Collection.FindOne(ctx, filter).Decode(&slot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &slot, nil
}

func (repo *BookingSlotMongoRepository) FindSlotsByDateRange(ctx context.Context, fromDate, toDate string) ([]models.BookingSlot, error) {
	filter := bson.M{
		"date": bson.M{"$gte": fromDate, "$lte": toDate},
	}

	cursor, err := repo.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	slots := []models.BookingSlot{}
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return slots, nil
}

func (repo *BookingSlotMongoRepository) UpsertSlot(ctx context.Context, slot *models.BookingSlot) error {
	filter := bson.M{
		"date":      slot.Date,
		"startTime": slot.StartTime,
	}
	update := bson.M{
		"$set": bson.M{
			"open":      slot.Open,
			"updatedAt": slot.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"date":      slot.Date,
			"startTime": slot.StartTime,
			"createdAt": slot.CreatedAt,
		},
	}

	_, err := repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
