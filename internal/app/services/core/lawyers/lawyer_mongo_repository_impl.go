package lawyers

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

type LawyerMongoRepository struct {
	Collection *mongo.Collection
}

func NewLawyerMongoRepository(db *mongo.Client, dbName string) contracts.LawyerRepository {
	return &LawyerMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionLawyers),
	}
}

func (r *LawyerMongoRepository) FindByID(ctx context.Context, lawyerID string) (*models.Lawyer, error) {
	objectID, err := primitive.ObjectIDFromHex(lawyerID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var lawyer models.Lawyer
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&lawyer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &lawyer, nil
}

func (r *LawyerMongoRepository) FindAll(ctx context.Context, activeOnly bool) ([]models.Lawyer, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}

	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "fullname", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	lawyers := make([]models.Lawyer, 0)
	if err := cursor.All(ctx, &lawyers); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return lawyers, nil
}

// FindAllWithStats joins appointments through the lawyer's slots. Slot and
// appointment documents reference each other by hex string ids, hence the
// $toString conversions.
func (r *LawyerMongoRepository) FindAllWithStats(ctx context.Context) ([]models.LawyerWithStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$addFields", Value: bson.M{"lawyerIdStr": bson.M{"$toString": "$_id"}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         constvars.MongoCollectionTimeSlots,
			"localField":   "lawyerIdStr",
			"foreignField": "lawyerId",
			"as":           "slots",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"slotIds": bson.M{"$map": bson.M{
				"input": "$slots",
				"as":    "slot",
				"in":    bson.M{"$toString": "$$slot._id"},
			}},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         constvars.MongoCollectionAppointments,
			"localField":   "slotIds",
			"foreignField": "timeSlotId",
			"as":           "appointments",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"totalAppointments": bson.M{"$size": "$appointments"},
			"confirmedAppointments": bson.M{"$size": bson.M{"$filter": bson.M{
				"input": "$appointments",
				"as":    "appointment",
				"cond":  bson.M{"$eq": bson.A{"$$appointment.status", models.AppointmentStatusConfirmed}},
			}}},
		}}},
		{{Key: "$project", Value: bson.M{"slots": 0, "slotIds": 0, "appointments": 0, "lawyerIdStr": 0}}},
		{{Key: "$sort", Value: bson.D{{Key: "fullname", Value: 1}}}},
	}

	cursor, err := r.Collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	lawyers := make([]models.LawyerWithStats, 0)
	if err := cursor.All(ctx, &lawyers); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return lawyers, nil
}

func (r *LawyerMongoRepository) Insert(ctx context.Context, lawyer *models.Lawyer) (string, error) {
	lawyer.SetCreatedAtUpdatedAt()
	result, err := r.Collection.InsertOne(ctx, lawyer)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *LawyerMongoRepository) SetActive(ctx context.Context, lawyerID string, active bool) error {
	objectID, err := primitive.ObjectIDFromHex(lawyerID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{"active": active, "updatedAt": time.Now()}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
