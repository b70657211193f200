package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/obradorhq/obrador/internal/domain/models"
)

// ErrBookNotFound indicates no aggregate document exists for the user yet.
var ErrBookNotFound = errors.New("book not found")

// Repository defines the interface for aggregate document storage. Each user
// owns exactly one document, read whole and written as field patches.
type Repository interface {
	Load(ctx context.Context, userID string) (*models.Book, error)
	Create(ctx context.Context, book *models.Book) error
	Patch(ctx context.Context, userID string, patch models.Patch) error
	List(ctx context.Context) ([]models.Book, error)
}

// MongoDBRepository implements the Repository interface for MongoDB.
type MongoDBRepository struct {
	client   *mongo.Client
	dbName   string
	collName string
}

// NewMongoDBRepository creates a new MongoDB repository.
func NewMongoDBRepository(ctx context.Context, uri string, dbName string) (*MongoDBRepository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	// Ping the database to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &MongoDBRepository{
		client:   client,
		dbName:   dbName,
		collName: "books",
	}, nil
}

func (r *MongoDBRepository) collection() *mongo.Collection {
	return r.client.Database(r.dbName).Collection(r.collName)
}

// Load reads the user's whole aggregate document.
func (r *MongoDBRepository) Load(ctx context.Context, userID string) (*models.Book, error) {
	var book models.Book
	err := r.collection().FindOne(ctx, bson.M{"_id": userID}).Decode(&book)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load book for %s: %w", userID, err)
	}
	return &book, nil
}

// Create writes a full document; used once, on a user's first login.
func (r *MongoDBRepository) Create(ctx context.Context, book *models.Book) error {
	if _, err := r.collection().InsertOne(ctx, book); err != nil {
		return fmt.Errorf("failed to create book for %s: %w", book.UserID, err)
	}
	return nil
}

// Patch replaces only the changed top-level collections via $set.
func (r *MongoDBRepository) Patch(ctx context.Context, userID string, patch models.Patch) error {
	if len(patch) == 0 {
		return nil
	}

	set := bson.M{}
	for field, value := range patch {
		set[field] = value
	}

	res, err := r.collection().UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to patch book for %s: %w", userID, err)
	}
	if res.MatchedCount == 0 {
		return ErrBookNotFound
	}
	return nil
}

// List reads every aggregate document; used by the scheduled low-stock sweep.
func (r *MongoDBRepository) List(ctx context.Context) ([]models.Book, error) {
	cursor, err := r.collection().Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer cursor.Close(ctx)

	var books []models.Book
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("failed to decode books: %w", err)
	}
	return books, nil
}

// Close closes the MongoDB connection.
func (r *MongoDBRepository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}
