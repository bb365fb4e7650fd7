package utils

import (
	"context"
	"time"

	"github.com/Govind-619/ShopSphere/models"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/gorm"
)

// NotificationStore persists admin notifications
type NotificationStore interface {
	Create(ctx context.Context, n *models.Notification) error
	List(ctx context.Context, unreadOnly bool, offset, limit int) ([]models.Notification, int64, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) (int64, error)
	CountUnread(ctx context.Context) (int64, error)
}

// Notifications is the store used by Notify and the notification handlers
var Notifications NotificationStore

// NewNotificationStore picks the Mongo store when a database is given, Postgres otherwise
func NewNotificationStore(db *gorm.DB, mongoDB *mongo.Database) NotificationStore {
	if mongoDB != nil {
		return &MongoNotificationStore{Collection: mongoDB.Collection("notifications")}
	}
	return &GormNotificationStore{DB: db}
}

// Notify records a notification. Errors are logged and never returned.
func Notify(ctx context.Context, n models.Notification) {
	if Notifications == nil {
		LogDebug("Notification dropped, no store configured: %s", n.Title)
		return
	}
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	if err := Notifications.Create(ctx, &n); err != nil {
		LogError("Failed to create %s notification: %v", n.Type, err)
	}
}

var errNotificationNotFound = NotFoundError("Notification not found", nil)

// GormNotificationStore keeps notifications in the notifications table
type GormNotificationStore struct {
	DB *gorm.DB
}

func (s *GormNotificationStore) Create(ctx context.Context, n *models.Notification) error {
	return s.DB.WithContext(ctx).Create(n).Error
}

func (s *GormNotificationStore) List(ctx context.Context, unreadOnly bool, offset, limit int) ([]models.Notification, int64, error) {
	query := s.DB.WithContext(ctx).Model(&models.Notification{})
	if unreadOnly {
		query = query.Where("is_read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var notifications []models.Notification
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&notifications).Error
	return notifications, total, err
}

func (s *GormNotificationStore) MarkRead(ctx context.Context, id string) error {
	res := s.DB.WithContext(ctx).Model(&models.Notification{}).Where("id = ?", id).Update("is_read", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errNotificationNotFound
	}
	return nil
}

func (s *GormNotificationStore) MarkAllRead(ctx context.Context) (int64, error) {
	res := s.DB.WithContext(ctx).Model(&models.Notification{}).Where("is_read = ?", false).Update("is_read", true)
	return res.RowsAffected, res.Error
}

func (s *GormNotificationStore) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	err := s.DB.WithContext(ctx).Model(&models.Notification{}).Where("is_read = ?", false).Count(&count).Error
	return count, err
}

// MongoNotificationStore keeps notifications in a MongoDB collection
type MongoNotificationStore struct {
	Collection *mongo.Collection
}

func (s *MongoNotificationStore) Create(ctx context.Context, n *models.Notification) error {
	_, err := s.Collection.InsertOne(ctx, n)
	return err
}

func (s *MongoNotificationStore) List(ctx context.Context, unreadOnly bool, offset, limit int) ([]models.Notification, int64, error) {
	filter := bson.M{}
	if unreadOnly {
		filter["is_read"] = false
	}

	total, err := s.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(offset)).
		SetLimit(int64(limit))
	cursor, err := s.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	notifications := []models.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}

func (s *MongoNotificationStore) MarkRead(ctx context.Context, id string) error {
	res, err := s.Collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"is_read": true}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errNotificationNotFound
	}
	return nil
}

func (s *MongoNotificationStore) MarkAllRead(ctx context.Context) (int64, error) {
	res, err := s.Collection.UpdateMany(ctx, bson.M{"is_read": false}, bson.M{"$set": bson.M{"is_read": true}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (s *MongoNotificationStore) CountUnread(ctx context.Context) (int64, error) {
	return s.Collection.CountDocuments(ctx, bson.M{"is_read": false})
}
