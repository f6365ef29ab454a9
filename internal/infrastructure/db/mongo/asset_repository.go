package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/matalogics/inventory-api/internal/core/domain"
	"github.com/matalogics/inventory-api/internal/core/ports"
)

const collectionAssets = "assets"

type AssetRepository struct {
	col *mongo.Collection
}

func NewAssetRepository(db *mongo.Database) *AssetRepository {
	return &AssetRepository{col: db.Collection(collectionAssets)}
}

type assetDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	SerialNumber string             `bson:"serial_number"`
	CategoryID   string             `bson:"category_id"`
	LocationID   string             `bson:"location_id"`
	PurchaseDate time.Time          `bson:"purchase_date,omitempty"`
	Status       string             `bson:"status"`
	Quantity     int                `bson:"quantity"`
	Notes        string             `bson:"notes,omitempty"`
	CreatedAt    time.Time          `bson:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

func (d assetDoc) toDomain() *domain.Asset {
	return &domain.Asset{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		SerialNumber: d.SerialNumber,
		CategoryID:   d.CategoryID,
		LocationID:   d.LocationID,
		PurchaseDate: d.PurchaseDate,
		Status:       domain.AssetStatus(d.Status),
		Quantity:     d.Quantity,
		Notes:        d.Notes,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

func (r *AssetRepository) List(ctx context.Context) ([]domain.Asset, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, upstreamErr("list assets", err)
	}
	defer cursor.Close(ctx)

	var assets []domain.Asset
	for cursor.Next(ctx) {
		var doc assetDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, upstreamErr("decode asset", err)
		}
		assets = append(assets, *doc.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, upstreamErr("list assets", err)
	}
	return assets, nil
}

func (r *AssetRepository) FindByID(ctx context.Context, id string) (*domain.Asset, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	var doc assetDoc
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		return nil, upstreamErr("find asset", err)
	}
	return doc.toDomain(), nil
}

func (r *AssetRepository) Create(ctx context.Context, asset *domain.Asset) (*domain.Asset, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := assetDoc{
		Name:         asset.Name,
		SerialNumber: asset.SerialNumber,
		CategoryID:   asset.CategoryID,
		LocationID:   asset.LocationID,
		PurchaseDate: asset.PurchaseDate,
		Status:       string(asset.Status),
		Quantity:     asset.Quantity,
		Notes:        asset.Notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrConflict
		}
		return nil, upstreamErr("insert asset", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *AssetRepository) Update(ctx context.Context, id string, upd ports.AssetUpdate) (*domain.Asset, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrNotFound
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.SerialNumber != nil {
		set["serial_number"] = *upd.SerialNumber
	}
	if upd.CategoryID != nil {
		set["category_id"] = *upd.CategoryID
	}
	if upd.LocationID != nil {
		set["location_id"] = *upd.LocationID
	}
	if upd.PurchaseDate != nil {
		set["purchase_date"] = *upd.PurchaseDate
	}
	if upd.Status != nil {
		set["status"] = string(*upd.Status)
	}
	if upd.Quantity != nil {
		set["quantity"] = *upd.Quantity
	}
	if upd.Notes != nil {
		set["notes"] = *upd.Notes
	}

	var doc assetDoc
	err = r.col.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrConflict
		}
		return nil, upstreamErr("update asset", err)
	}
	return doc.toDomain(), nil
}

func (r *AssetRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrNotFound
	}

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return upstreamErr("delete asset", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AssetRepository) CountByCategory(ctx context.Context, categoryID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"category_id": categoryID})
	if err != nil {
		return 0, upstreamErr("count assets by category", err)
	}
	return n, nil
}

func (r *AssetRepository) CountByLocation(ctx context.Context, locationID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"location_id": locationID})
	if err != nil {
		return 0, upstreamErr("count assets by location", err)
	}
	return n, nil
}

// EnsureIndexes creates the indexes backing lookups and referential counts.
func (r *AssetRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "serial_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "category_id", Value: 1}}},
		{Keys: bson.D{{Key: "location_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
