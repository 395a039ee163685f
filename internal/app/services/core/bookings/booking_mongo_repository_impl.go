package bookings

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

type BookingMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingMongoRepository(db *mongo.Database) contracts.BookingRepository {
	return &BookingMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionBookings),
	}
}

func activeStatusFilter() bson.M {
	return bson.M{"$nin": bson.A{
		string(models.BookingStatusCancelled),
		string(models.BookingStatusNoShow),
	}}
}

func (r *BookingMongoRepository) FindByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	err := r.Collection.FindOne(ctx, bson.M{"_id": bookingID}).Decode(&booking)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrDBFailedToFindDocument(err)
	}
	return &booking, nil
}

func (r *BookingMongoRepository) FindActiveByAgendaIDAndDate(ctx context.Context, agendaID, date string) ([]models.Booking, error) {
	filter := bson.M{
		"agendaId": agendaID,
		"date":     date,
		"status":   activeStatusFilter(),
	}
	return r.findBookings(ctx, filter)
}

func (r *BookingMongoRepository) FindActiveByAgendaIDAndDateRange(ctx context.Context, agendaID, startDate, endDate string) ([]models.Booking, error) {
	filter := bson.M{
		"agendaId": agendaID,
		"date":     bson.M{"$gte": startDate, "$lte": endDate},
		"status":   activeStatusFilter(),
	}
	return r.findBookings(ctx, filter)
}

func (r *BookingMongoRepository) findBookings(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "startTime", Value: 1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrDBFailedToFindDocument(err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, exceptions.ErrDBFailedToIterateCursor(err)
	}
	return bookings, nil
}

func (r *BookingMongoRepository) Create(ctx context.Context, booking *models.Booking) (string, error) {
	booking.ID = primitive.NewObjectID().Hex()
	booking.SetCreatedAtUpdatedAt()
	if _, err := r.Collection.InsertOne(ctx, booking); err != nil {
		return "", exceptions.ErrDBFailedToInsertDocument(err)
	}
	return booking.ID, nil
}

func (r *BookingMongoRepository) UpdateStatus(ctx context.Context, bookingID string, status models.BookingStatus) error {
	var model models.Booking
	model.SetUpdatedAt()
	update := bson.M{"$set": bson.M{
		"status":    string(status),
		"updatedAt": model.UpdatedAt,
	}}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": bookingID}, update)
	if err != nil {
		return exceptions.ErrDBFailedToUpdateDocument(err)
	}
	return nil
}
