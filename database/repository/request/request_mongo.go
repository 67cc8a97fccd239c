package requestRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/Souvikgooooo/ThrivePro/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRequestRepo implements RequestRepository using MongoDB.
type MongoRequestRepo struct {
	coll *mongo.Collection
}

// NewMongoRequestRepo creates a new instance of RequestRepository using MongoDB.
func NewMongoRequestRepo(db *mongo.Database) RequestRepository {
	repo := &MongoRequestRepo{coll: db.Collection("service_requests")}
	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create request indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for the dashboard listing queries.
func (r *MongoRequestRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "provider_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "customer_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new request document.
func (r *MongoRequestRepo) Create(req *models.ServiceRequest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create service request: %w", err)
	}
	return nil
}

// GetByID retrieves a request by its unique ID.
func (r *MongoRequestRepo) GetByID(id string) (*models.ServiceRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var req models.ServiceRequest
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch service request with id %s: %w", id, err)
	}
	return &req, nil
}

// GetByProvider retrieves all requests assigned to a provider, newest first.
func (r *MongoRequestRepo) GetByProvider(providerID string) ([]models.ServiceRequest, error) {
	return r.find(bson.M{"provider_id": providerID})
}

// GetByCustomer retrieves all requests created by a customer, newest first.
func (r *MongoRequestRepo) GetByCustomer(customerID string) ([]models.ServiceRequest, error) {
	return r.find(bson.M{"customer_id": customerID})
}

func (r *MongoRequestRepo) find(filter bson.M) ([]models.ServiceRequest, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve service requests: %w", err)
	}
	defer cursor.Close(ctx)

	var requests []models.ServiceRequest
	for cursor.Next(ctx) {
		var req models.ServiceRequest
		if err := cursor.Decode(&req); err != nil {
			return nil, fmt.Errorf("failed to decode service request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// UpdateStatus persists a new status and returns the updated record.
func (r *MongoRequestRepo) UpdateStatus(id string, status models.Status) (*models.ServiceRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var req models.ServiceRequest
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"id": id}, update, opts).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update status of request %s: %w", id, err)
	}
	return &req, nil
}

// SetPaymentIntent stores the payment intent identifier on the record.
func (r *MongoRequestRepo) SetPaymentIntent(id, intentID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"payment_intent_id": intentID, "updated_at": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to set payment intent on request %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("service request with id %s not found", id)
	}
	return nil
}
