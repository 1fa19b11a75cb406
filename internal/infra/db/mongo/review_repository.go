package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"premiere/internal/domain/properties"
	"premiere/internal/domain/reviews"
)

type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	col := db.Collection("reviews")
	idx := mongo.IndexModel{Keys: bson.D{{Key: "property_id", Value: 1}, {Key: "created_at", Value: -1}}}
	_, _ = col.Indexes().CreateOne(context.Background(), idx)
	return &ReviewRepository{col: col}
}

func (r *ReviewRepository) ListByProperty(ctx context.Context, propertyID properties.PropertyID, limit, offset int) ([]*reviews.Review, error) {
	if limit <= 0 {
		limit = 20
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	cursor, err := r.col.Find(ctx, bson.M{"property_id": string(propertyID)}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var out []*reviews.Review
	for cursor.Next(ctx) {
		var doc reviewDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toAggregate())
	}
	return out, cursor.Err()
}

func (r *ReviewRepository) Save(ctx context.Context, review *reviews.Review) error {
	doc := newReviewDocument(review)
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": doc.ID},
		bson.M{"$set": doc},
		options.Update().SetUpsert(true),
	)
	return err
}

type reviewDocument struct {
	ID         string `bson:"_id"`
	PropertyID string `bson:"property_id"`
	GuestName  string `bson:"guest_name"`
	Rating     int    `bson:"rating"`
	Text       string `bson:"text"`
	CreatedAt  int64  `bson:"created_at"`
}

func newReviewDocument(r *reviews.Review) reviewDocument {
	return reviewDocument{
		ID:         string(r.ID),
		PropertyID: string(r.PropertyID),
		GuestName:  r.GuestName,
		Rating:     r.Rating,
		Text:       r.Text,
		CreatedAt:  r.CreatedAt.UnixMilli(),
	}
}

func (d reviewDocument) toAggregate() *reviews.Review {
	return &reviews.Review{
		ID:         reviews.ReviewID(d.ID),
		PropertyID: properties.PropertyID(d.PropertyID),
		GuestName:  d.GuestName,
		Rating:     d.Rating,
		Text:       d.Text,
		CreatedAt:  timestampToTime(d.CreatedAt),
	}
}
