package calendars

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"valoredash-service/internal/app/contracts"
	"valoredash-service/internal/app/models"
	"valoredash-service/internal/pkg/constvars"
	"valoredash-service/internal/pkg/exceptions"
)

type DateExceptionMongoRepository struct {
	Collection *mongo.Collection
}

func NewDateExceptionMongoRepository(db *mongo.Database) contracts.DateExceptionRepository {
	return &DateExceptionMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionDateExceptions),
	}
}

func (r *DateExceptionMongoRepository) FindByAgendaID(ctx context.Context, agendaID string) ([]models.DateException, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"agendaId": agendaID}, opts)
	if err != nil {
		return nil, exceptions.ErrDBFailedToFindDocument(err)
	}
	defer cursor.Close(ctx)

	var exceptionList []models.DateException
	if err := cursor.All(ctx, &exceptionList); err != nil {
		return nil, exceptions.ErrDBFailedToIterateCursor(err)
	}
	return exceptionList, nil
}

func (r *DateExceptionMongoRepository) FindByAgendaIDAndDate(ctx context.Context, agendaID, date string) (*models.DateException, error) {
	var exception models.DateException
	filter := bson.M{"agendaId": agendaID, "date": date}
	err := r.Collection.FindOne(ctx, filter).Decode(&exception)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrDBFailedToFindDocument(err)
	}
	return &exception, nil
}

func (r *DateExceptionMongoRepository) Create(ctx context.Context, exception *models.DateException) (string, error) {
	exception.ID = primitive.NewObjectID().Hex()
	exception.SetCreatedAtUpdatedAt()
	if _, err := r.Collection.InsertOne(ctx, exception); err != nil {
		return "", exceptions.ErrDBFailedToInsertDocument(err)
	}
	return exception.ID, nil
}

func (r *DateExceptionMongoRepository) Update(ctx context.Context, exception *models.DateException) error {
	exception.SetUpdatedAt()
	update := bson.M{"$set": bson.M{
		"date":              exception.Date,
		"isAvailable":       exception.IsAvailable,
		"startTime":         exception.StartTime,
		"endTime":           exception.EndTime,
		"maxBookingsForDay": exception.MaxBookingsForDay,
		"reason":            exception.Reason,
		"updatedAt":         exception.UpdatedAt,
	}}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": exception.ID}, update)
	if err != nil {
		return exceptions.ErrDBFailedToUpdateDocument(err)
	}
	return nil
}

func (r *DateExceptionMongoRepository) Delete(ctx context.Context, exceptionID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": exceptionID})
	if err != nil {
		return exceptions.ErrDBFailedToDeleteDocument(err)
	}
	return nil
}
