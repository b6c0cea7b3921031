package store

import (
	"context"

	"github.com/brasketbro/lovenest/internal/models"
)

// Storage is the single authority over entity identity and persistence.
// Lookups return (nil, nil) when no record exists; deletes report whether a
// record was actually removed.
type Storage interface {
	// Users
	GetUser(ctx context.Context, id int) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, user models.InsertUser) (*models.User, error)

	// Photos
	GetPhotos(ctx context.Context) ([]models.Photo, error)
	GetPhotoByID(ctx context.Context, id int) (*models.Photo, error)
	GetPhotosByCategory(ctx context.Context, category string) ([]models.Photo, error)
	CreatePhoto(ctx context.Context, photo models.InsertPhoto) (*models.Photo, error)
	UpdatePhoto(ctx context.Context, id int, update models.PhotoUpdate) (*models.Photo, error)
	DeletePhoto(ctx context.Context, id int) (bool, error)

	// Messages
	GetMessages(ctx context.Context) ([]models.Message, error)
	GetMessageByID(ctx context.Context, id int) (*models.Message, error)
	CreateMessage(ctx context.Context, message models.InsertMessage) (*models.Message, error)
	DeleteMessage(ctx context.Context, id int) (bool, error)

	// Milestones
	GetMilestones(ctx context.Context) ([]models.Milestone, error)
	GetMilestoneByID(ctx context.Context, id int) (*models.Milestone, error)
	CreateMilestone(ctx context.Context, milestone models.InsertMilestone) (*models.Milestone, error)
	DeleteMilestone(ctx context.Context, id int) (bool, error)

	// Bucket list
	GetBucketItems(ctx context.Context) ([]models.BucketItem, error)
	GetBucketItemByID(ctx context.Context, id int) (*models.BucketItem, error)
	CreateBucketItem(ctx context.Context, item models.InsertBucketItem) (*models.BucketItem, error)
	UpdateBucketItem(ctx context.Context, id int, update models.BucketItemUpdate) (*models.BucketItem, error)
	ToggleBucketItemCompletion(ctx context.Context, id int, completed bool, completedDate *string) (*models.BucketItem, error)
	DeleteBucketItem(ctx context.Context, id int) (bool, error)

	// Relationship
	GetRelationship(ctx context.Context) (*models.Relationship, error)
	CreateRelationship(ctx context.Context, rel models.InsertRelationship) (*models.Relationship, error)
	UpdateRelationship(ctx context.Context, id int, update models.RelationshipUpdate) (*models.Relationship, error)

	Close()
}
