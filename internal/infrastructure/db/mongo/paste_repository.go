package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pasteshare/paste-api/internal/core/domain"
	"github.com/pasteshare/paste-api/internal/core/ports"
)

const collectionPastes = "pastes"

// PasteRepository implements ports.PasteRepository using MongoDB.
type PasteRepository struct {
	col *mongo.Collection
}

func NewPasteRepository(db *mongo.Database) *PasteRepository {
	return &PasteRepository{col: db.Collection(collectionPastes)}
}

type pasteDocument struct {
	ID        string    `bson:"_id"`
	Content   string    `bson:"content"`
	Access    string    `bson:"access"`
	AuthorID  string    `bson:"author_id"`
	CreatedAt time.Time `bson:"created_at"`
}

func (d pasteDocument) toDomain() *domain.Paste {
	return &domain.Paste{
		ID:        d.ID,
		Content:   d.Content,
		Access:    domain.Access(d.Access),
		AuthorID:  d.AuthorID,
		CreatedAt: d.CreatedAt.UTC(),
	}
}

// Create inserts a new paste document. The id is chosen by the caller.
func (r *PasteRepository) Create(ctx context.Context, p *domain.Paste) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, pasteDocument{
		ID:        p.ID,
		Content:   p.Content,
		Access:    string(p.Access),
		AuthorID:  p.AuthorID,
		CreatedAt: p.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("insert paste: %w", err)
	}
	return nil
}

func (r *PasteRepository) FindByID(ctx context.Context, id string) (*domain.Paste, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc pasteDocument
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPasteNotFound
		}
		return nil, fmt.Errorf("find paste: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PasteRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete paste: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPasteNotFound
	}
	return nil
}

func (r *PasteRepository) DeleteByAuthor(ctx context.Context, authorID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteMany(ctx, bson.M{"author_id": authorID})
	if err != nil {
		return 0, fmt.Errorf("delete pastes by author: %w", err)
	}
	return res.DeletedCount, nil
}

// List returns pastes matching filter. No sort is applied.
func (r *PasteRepository) List(ctx context.Context, filter ports.PasteFilter) ([]*domain.Paste, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	q := bson.M{}
	if filter.Access != "" {
		q["access"] = string(filter.Access)
	}
	if filter.AuthorID != "" {
		q["author_id"] = filter.AuthorID
	}

	cur, err := r.col.Find(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list pastes: %w", err)
	}
	var docs []pasteDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode pastes: %w", err)
	}

	pastes := make([]*domain.Paste, 0, len(docs))
	for _, d := range docs {
		pastes = append(pastes, d.toDomain())
	}
	return pastes, nil
}

// EnsureIndexes creates the lookup indexes used by List and DeleteByAuthor.
func (r *PasteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "access", Value: 1}}},
		{Keys: bson.D{{Key: "author_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
