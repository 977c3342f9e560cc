package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
)

// ContentCollection is the name of the legacy content collection.
const ContentCollection = "contents"

// MongoContentRepository implements ContentRepository on top of the legacy
// MongoDB collection. Documents written by the old application use ObjectID
// keys; they are exposed as hex strings and written back under the same key.
type MongoContentRepository struct {
	coll *mongo.Collection
}

// NewMongoContentRepository creates a new MongoContentRepository.
func NewMongoContentRepository(db *mongo.Database) *MongoContentRepository {
	return &MongoContentRepository{coll: db.Collection(ContentCollection)}
}

// mongoID maps an item id to the stored _id value.
func mongoID(id string) any {
	if oid, err := primitive.ObjectIDFromHex(id); err == nil {
		return oid
	}
	return id
}

func toDocument(item *domain.ContentItem) (bson.M, error) {
	raw, err := bson.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("marshal content: %w", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal content: %w", err)
	}
	doc["_id"] = mongoID(item.ID)
	return doc, nil
}

// Create inserts a new content item.
func (r *MongoContentRepository) Create(ctx context.Context, item *domain.ContentItem) error {
	doc, err := toDocument(item)
	if err != nil {
		return err
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert content: %w", err)
	}
	return nil
}

// Get retrieves a content item by ID.
func (r *MongoContentRepository) Get(ctx context.Context, id string) (*domain.ContentItem, error) {
	var item domain.ContentItem
	err := r.coll.FindOne(ctx, bson.M{"_id": mongoID(id)}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get content: %w", err)
	}
	return &item, nil
}

// Update replaces an existing content item.
func (r *MongoContentRepository) Update(ctx context.Context, item *domain.ContentItem) error {
	doc, err := toDocument(item)
	if err != nil {
		return err
	}
	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": doc["_id"]}, doc)
	if err != nil {
		return fmt.Errorf("update content: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Save inserts or replaces a content item.
func (r *MongoContentRepository) Save(ctx context.Context, item *domain.ContentItem) error {
	doc, err := toDocument(item)
	if err != nil {
		return err
	}
	_, err = r.coll.ReplaceOne(ctx, bson.M{"_id": doc["_id"]}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save content: %w", err)
	}
	return nil
}

// Delete removes a content item.
func (r *MongoContentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": mongoID(id)})
	if err != nil {
		return fmt.Errorf("delete content: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns the items matching filter, oldest first.
func (r *MongoContentRepository) List(ctx context.Context, filter ContentFilter) ([]domain.ContentItem, error) {
	query := bson.M{}
	if filter.Query != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Query), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"title": pattern},
			bson.M{"descriptionEs": pattern},
			bson.M{"descriptionEn": pattern},
		}
	}
	if filter.Tag != "" {
		query["tags"] = filter.Tag
	}

	cursor, err := r.coll.Find(ctx, query, options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("query content: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]domain.ContentItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	return items, nil
}

// StreamAll streams every document through callback one at a time.
func (r *MongoContentRepository) StreamAll(ctx context.Context, callback func(domain.ContentItem) error) error {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return fmt.Errorf("query content: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var item domain.ContentItem
		if err := cursor.Decode(&item); err != nil {
			return fmt.Errorf("decode content: %w", err)
		}
		if err := callback(item); err != nil {
			return fmt.Errorf("callback error: %w", err)
		}
	}
	return cursor.Err()
}

// documentID returns the _id of a raw document as an item id.
func documentID(doc bson.Raw) string {
	v := doc.Lookup("_id")
	if oid, ok := v.ObjectIDOK(); ok {
		return oid.Hex()
	}
	if s, ok := v.StringValueOK(); ok {
		return s
	}
	return v.String()
}

// StreamRecords streams every document as canonical extended JSON, which
// keeps BSON types and fields the domain type does not model. Documents
// that do not decode into ContentItem are delivered with their error.
func (r *MongoContentRepository) StreamRecords(ctx context.Context, callback func(ContentRecord) error) error {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return fmt.Errorf("query content: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		doc := cursor.Current
		rec := ContentRecord{ID: documentID(doc)}
		raw, err := bson.MarshalExtJSON(doc, true, false)
		if err != nil {
			rec.Err = fmt.Errorf("encode content %s: %w", rec.ID, err)
		} else {
			rec.Raw = raw
			if err := bson.Unmarshal(doc, &rec.Item); err != nil {
				rec.Item = domain.ContentItem{}
				rec.Err = fmt.Errorf("decode content %s: %w", rec.ID, err)
			}
		}

		if err := callback(rec); err != nil {
			return fmt.Errorf("callback error: %w", err)
		}
	}
	return cursor.Err()
}

// SaveReconciled sets the reconciled fields on the stored document and
// leaves the rest of it untouched.
func (r *MongoContentRepository) SaveReconciled(ctx context.Context, item *domain.ContentItem) error {
	fields := reconciledFields(item)
	if len(fields) == 0 {
		return nil
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": mongoID(item.ID)}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return fmt.Errorf("save reconciled content: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// RestoreRecords swaps the collection content for the archived documents,
// reinserted exactly as they were read.
func (r *MongoContentRepository) RestoreRecords(ctx context.Context, records []ContentRecord) error {
	docs := make([]any, 0, len(records))
	for _, rec := range records {
		var doc bson.D
		if err := bson.UnmarshalExtJSON(rec.Raw, true, &doc); err != nil {
			return fmt.Errorf("decode archived document %s: %w", rec.ID, err)
		}
		docs = append(docs, doc)
	}

	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("clear content: %w", err)
	}
	if len(docs) == 0 {
		return nil
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert content: %w", err)
	}
	return nil
}
