package agendas

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"valoredash-service/internal/app/contracts"
	"valoredash-service/internal/app/models"
	"valoredash-service/internal/pkg/constvars"
	"valoredash-service/internal/pkg/exceptions"
)

type AgendaMongoRepository struct {
	Collection *mongo.Collection
}

func NewAgendaMongoRepository(db *mongo.Database) contracts.AgendaRepository {
	return &AgendaMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionAgendas),
	}
}

func (r *AgendaMongoRepository) FindAll(ctx context.Context) ([]models.Agenda, error) {
	filter := bson.M{"deletedAt": bson.M{"$exists": false}}
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrDBFailedToFindDocument(err)
	}
	defer cursor.Close(ctx)

	var agendas []models.Agenda
	if err := cursor.All(ctx, &agendas); err != nil {
		return nil, exceptions.ErrDBFailedToIterateCursor(err)
	}
	return agendas, nil
}

func (r *AgendaMongoRepository) FindByID(ctx context.Context, agendaID string) (*models.Agenda, error) {
	var agenda models.Agenda
	err := r.Collection.FindOne(ctx, bson.M{"_id": agendaID}).Decode(&agenda)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrDBFailedToFindDocument(err)
	}
	if agenda.DeletedAt != nil {
		return nil, nil
	}
	return &agenda, nil
}

func (r *AgendaMongoRepository) Create(ctx context.Context, agenda *models.Agenda) (string, error) {
	agenda.ID = primitive.NewObjectID().Hex()
	agenda.SetCreatedAtUpdatedAt()
	if _, err := r.Collection.InsertOne(ctx, agenda); err != nil {
		return "", exceptions.ErrDBFailedToInsertDocument(err)
	}
	return agenda.ID, nil
}

func (r *AgendaMongoRepository) Update(ctx context.Context, agenda *models.Agenda) error {
	agenda.SetUpdatedAt()
	update := bson.M{"$set": bson.M{
		"name":            agenda.Name,
		"durationMinutes": agenda.DurationMinutes,
		"bufferMinutes":   agenda.BufferMinutes,
		"maxParticipants": agenda.MaxParticipants,
		"active":          agenda.Active,
		"updatedAt":       agenda.UpdatedAt,
	}}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": agenda.ID}, update)
	if err != nil {
		return exceptions.ErrDBFailedToUpdateDocument(err)
	}
	return nil
}

func (r *AgendaMongoRepository) Delete(ctx context.Context, agendaID string) error {
	var agenda models.Agenda
	agenda.SetDeletedAt()
	update := bson.M{"$set": bson.M{
		"deletedAt": agenda.DeletedAt,
		"updatedAt": agenda.UpdatedAt,
	}}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": agendaID}, update)
	if err != nil {
		return exceptions.ErrDBFailedToDeleteDocument(err)
	}
	return nil
}
