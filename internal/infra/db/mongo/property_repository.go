package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"premiere/internal/domain/properties"
)

var ErrConcurrentUpdate = errors.New("mongo: concurrent update detected")

type PropertyRepository struct {
	col *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) *PropertyRepository {
	return &PropertyRepository{col: db.Collection("properties")}
}

func (r *PropertyRepository) ByID(ctx context.Context, id properties.PropertyID) (*properties.Property, error) {
	var doc propertyDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": string(id)}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, properties.ErrNotFound
		}
		return nil, err
	}
	return doc.toAggregate(), nil
}

func (r *PropertyRepository) List(ctx context.Context, limit, offset int) ([]*properties.Property, error) {
	if limit <= 0 {
		limit = 24
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*properties.Property
	for cursor.Next(ctx) {
		var doc propertyDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toAggregate())
	}
	return out, cursor.Err()
}

// Save upserts with an optimistic version filter so concurrent dashboard edits
// surface as ErrConcurrentUpdate instead of silently overwriting each other.
func (r *PropertyRepository) Save(ctx context.Context, p *properties.Property) error {
	doc := newPropertyDocument(p)
	filter := bson.M{"_id": doc.ID, "version": p.Version}
	doc.Version = p.Version + 1
	update := bson.M{"$set": doc}
	opts := options.Update().SetUpsert(true)
	res, err := r.col.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrConcurrentUpdate
		}
		return err
	}
	if res.MatchedCount == 0 && res.UpsertedCount == 0 {
		return ErrConcurrentUpdate
	}
	p.Version = doc.Version
	return nil
}

func (r *PropertyRepository) Delete(ctx context.Context, id properties.PropertyID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": string(id)})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return properties.ErrNotFound
	}
	return nil
}

type propertyDocument struct {
	ID          string          `bson:"_id"`
	Name        string          `bson:"name"`
	Description string          `bson:"description"`
	Address     addressDocument `bson:"address"`
	Bedrooms    int             `bson:"bedrooms"`
	Bathrooms   int             `bson:"bathrooms"`
	MaxGuests   int             `bson:"max_guests"`
	Amenities   []string        `bson:"amenities"`
	BaseRate    float64         `bson:"base_rate"`
	ListingRef  string          `bson:"listing_ref"`
	Active      bool            `bson:"active"`
	CreatedAt   int64           `bson:"created_at"`
	UpdatedAt   int64           `bson:"updated_at"`
	Version     int64           `bson:"version"`
}

type addressDocument struct {
	Line1   string `bson:"line1"`
	City    string `bson:"city"`
	State   string `bson:"state"`
	Country string `bson:"country"`
	Zip     string `bson:"zip"`
}

func newPropertyDocument(p *properties.Property) propertyDocument {
	return propertyDocument{
		ID:          string(p.ID),
		Name:        p.Name,
		Description: p.Description,
		Address: addressDocument{
			Line1:   p.Address.Line1,
			City:    p.Address.City,
			State:   p.Address.State,
			Country: p.Address.Country,
			Zip:     p.Address.Zip,
		},
		Bedrooms:   p.Bedrooms,
		Bathrooms:  p.Bathrooms,
		MaxGuests:  p.MaxGuests,
		Amenities:  p.Amenities,
		BaseRate:   p.BaseRate,
		ListingRef: p.ListingRef,
		Active:     p.Active,
		CreatedAt:  p.CreatedAt.UnixMilli(),
		UpdatedAt:  p.UpdatedAt.UnixMilli(),
		Version:    p.Version,
	}
}

func (d propertyDocument) toAggregate() *properties.Property {
	return &properties.Property{
		ID:          properties.PropertyID(d.ID),
		Name:        d.Name,
		Description: d.Description,
		Address: properties.Address{
			Line1:   d.Address.Line1,
			City:    d.Address.City,
			State:   d.Address.State,
			Country: d.Address.Country,
			Zip:     d.Address.Zip,
		},
		Bedrooms:   d.Bedrooms,
		Bathrooms:  d.Bathrooms,
		MaxGuests:  d.MaxGuests,
		Amenities:  d.Amenities,
		BaseRate:   d.BaseRate,
		ListingRef: d.ListingRef,
		Active:     d.Active,
		CreatedAt:  timestampToTime(d.CreatedAt),
		UpdatedAt:  timestampToTime(d.UpdatedAt),
		Version:    d.Version,
	}
}

func timestampToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
