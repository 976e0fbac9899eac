package slots

import (
	"context"
	"time"

	"lexbook-service/internal/app/contracts"
	"lexbook-service/internal/app/models"
	"lexbook-service/internal/pkg/constvars"
	"lexbook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SlotMongoRepository struct {
	Collection *mongo.Collection
}

func NewSlotMongoRepository(db *mongo.Client, dbName string) contracts.SlotRepository {
	return &SlotMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionTimeSlots),
	}
}

func (r *SlotMongoRepository) FindByID(ctx context.Context, slotID string) (*models.TimeSlot, error) {
	objectID, err := primitive.ObjectIDFromHex(slotID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var slot models.TimeSlot
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&slot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &slot, nil
}

func (r *SlotMongoRepository) FindByLawyer(ctx context.Context, lawyerID string, date string, availableOnly bool) ([]models.TimeSlot, error) {
	filter := bson.M{"lawyerId": lawyerID}
	if date != "" {
		filter["date"] = date
	}
	if availableOnly {
		filter["isAvailable"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	slots := make([]models.TimeSlot, 0)
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return slots, nil
}

func (r *SlotMongoRepository) FindAvailableDates(ctx context.Context, lawyerID string) ([]string, error) {
	filter := bson.M{"lawyerId": lawyerID, "isAvailable": true}
	raw, err := r.Collection.Distinct(ctx, "date", filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	dates := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			dates = append(dates, s)
		}
	}
	return dates, nil
}

func (r *SlotMongoRepository) Insert(ctx context.Context, slot *models.TimeSlot) (string, error) {
	slot.SetCreatedAtUpdatedAt()
	result, err := r.Collection.InsertOne(ctx, slot)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *SlotMongoRepository) Delete(ctx context.Context, slotID string) error {
	objectID, err := primitive.ObjectIDFromHex(slotID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *SlotMongoRepository) ConditionalSetAvailable(ctx context.Context, slotID string, expected, value bool) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(slotID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	filter := bson.M{"_id": objectID, "isAvailable": expected}
	update := bson.M{"$set": bson.M{"isAvailable": value, "updatedAt": time.Now()}}
	result, err := r.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.ModifiedCount == 1, nil
}

func (r *SlotMongoRepository) SetAvailable(ctx context.Context, slotID string, value bool) error {
	objectID, err := primitive.ObjectIDFromHex(slotID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{"isAvailable": value, "updatedAt": time.Now()}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
