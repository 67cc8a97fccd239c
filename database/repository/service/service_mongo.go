package serviceRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/Souvikgooooo/ThrivePro/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo creates a new instance of ServiceRepository using MongoDB.
func NewMongoServiceRepo(db *mongo.Database) ServiceRepository {
	repo := &MongoServiceRepo{coll: db.Collection("services")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create service indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for the booking-time (name, provider) lookup.
func (r *MongoServiceRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "provider_id", Value: 1}, {Key: "name", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new catalog entry.
func (r *MongoServiceRepo) Create(svc *models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	svc.CreatedAt = now
	svc.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, svc)
	if err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// GetByID retrieves a catalog entry by its unique ID.
func (r *MongoServiceRepo) GetByID(id string) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var svc models.Service
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	return &svc, nil
}

// GetByProvider retrieves all catalog entries offered by a provider, newest first.
func (r *MongoServiceRepo) GetByProvider(providerID string) ([]models.Service, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"provider_id": providerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services for provider %s: %w", providerID, err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	for cursor.Next(ctx) {
		var s models.Service
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		services = append(services, s)
	}
	return services, nil
}

// GetByNameAndProvider retrieves the catalog entry matching the (name, provider) pair.
func (r *MongoServiceRepo) GetByNameAndProvider(name, providerID string) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"name": name, "provider_id": providerID}
	var svc models.Service
	if err := r.coll.FindOne(ctx, filter).Decode(&svc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service %q for provider %s: %w", name, providerID, err)
	}
	return &svc, nil
}
