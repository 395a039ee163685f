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

type OperatingHourMongoRepository struct {
	Collection *mongo.Collection
}

func NewOperatingHourMongoRepository(db *mongo.Database) contracts.OperatingHourRepository {
	return &OperatingHourMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionOperatingHours),
	}
}

func (r *OperatingHourMongoRepository) FindByAgendaID(ctx context.Context, agendaID string) ([]models.OperatingHourRule, error) {
	opts := options.Find().SetSort(bson.D{{Key: "dayOfWeek", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{"agendaId": agendaID}, opts)
	if err != nil {
		return nil, exceptions.ErrDBFailedToFindDocument(err)
	}
	defer cursor.Close(ctx)

	var rules []models.OperatingHourRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, exceptions.ErrDBFailedToIterateCursor(err)
	}
	return rules, nil
}

func (r *OperatingHourMongoRepository) Create(ctx context.Context, rule *models.OperatingHourRule) (string, error) {
	rule.ID = primitive.NewObjectID().Hex()
	rule.SetCreatedAtUpdatedAt()
	if _, err := r.Collection.InsertOne(ctx, rule); err != nil {
		return "", exceptions.ErrDBFailedToInsertDocument(err)
	}
	return rule.ID, nil
}

func (r *OperatingHourMongoRepository) Update(ctx context.Context, rule *models.OperatingHourRule) error {
	rule.SetUpdatedAt()
	update := bson.M{"$set": bson.M{
		"dayOfWeek": rule.DayOfWeek,
		"startTime": rule.StartTime,
		"endTime":   rule.EndTime,
		"active":    rule.Active,
		"updatedAt": rule.UpdatedAt,
	}}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": rule.ID}, update)
	if err != nil {
		return exceptions.ErrDBFailedToUpdateDocument(err)
	}
	return nil
}

func (r *OperatingHourMongoRepository) Delete(ctx context.Context, ruleID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": ruleID})
	if err != nil {
		return exceptions.ErrDBFailedToDeleteDocument(err)
	}
	return nil
}
