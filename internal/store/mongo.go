package store

import (
	"context"
	"time"

	"github.com/mergington/school-gobackend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Connect initializes the MongoDB connection using the provided URI and
// verifies it with a ping.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, err
	}

	return client, nil
}

// MongoAnnouncements implements AnnouncementStore on the announcements
// collection.
type MongoAnnouncements struct {
	collection *mongo.Collection
}

func NewMongoAnnouncements(db *mongo.Database) *MongoAnnouncements {
	return &MongoAnnouncements{collection: db.Collection("announcements")}
}

func (s *MongoAnnouncements) FindActive(ctx context.Context, now string) ([]models.Announcement, error) {
	filter := bson.M{"expiration_date": bson.M{"$gte": now}}
	cur, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var announcements []models.Announcement
	if err := cur.All(ctx, &announcements); err != nil {
		return nil, err
	}
	return announcements, nil
}

func (s *MongoAnnouncements) FindAllByExpiration(ctx context.Context) ([]models.Announcement, error) {
	sort := options.Find().SetSort(bson.D{{Key: "expiration_date", Value: -1}})
	cur, err := s.collection.Find(ctx, bson.D{}, sort)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var announcements []models.Announcement
	if err := cur.All(ctx, &announcements); err != nil {
		return nil, err
	}
	return announcements, nil
}

func (s *MongoAnnouncements) FindByID(ctx context.Context, id string) (*models.Announcement, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var announcement models.Announcement
	err = s.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&announcement)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &announcement, nil
}

func (s *MongoAnnouncements) Insert(ctx context.Context, a *models.Announcement) (string, error) {
	a.ID = primitive.NewObjectID()

	result, err := s.collection.InsertOne(ctx, a)
	if err != nil {
		return "", err
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (s *MongoAnnouncements) Update(ctx context.Context, id string, set models.AnnouncementUpdate) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	// start_date is written even when nil: updates replace, never merge.
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{
		"$set": bson.M{
			"message":         set.Message,
			"expiration_date": set.ExpirationDate,
			"start_date":      set.StartDate,
			"updated_by":      set.UpdatedBy,
			"updated_at":      set.UpdatedAt,
		},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoAnnouncements) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// MongoTeachers implements TeacherStore on the teachers collection,
// where documents are keyed by username.
type MongoTeachers struct {
	collection *mongo.Collection
}

func NewMongoTeachers(db *mongo.Database) *MongoTeachers {
	return &MongoTeachers{collection: db.Collection("teachers")}
}

func (s *MongoTeachers) FindByUsername(ctx context.Context, username string) (*models.Teacher, error) {
	var teacher models.Teacher
	err := s.collection.FindOne(ctx, bson.M{"_id": username}).Decode(&teacher)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (s *MongoTeachers) List(ctx context.Context) ([]models.Teacher, error) {
	projection := bson.D{{Key: "password", Value: 0}}
	cur, err := s.collection.Find(ctx, bson.D{}, options.Find().SetProjection(projection))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var teachers []models.Teacher
	if err := cur.All(ctx, &teachers); err != nil {
		return nil, err
	}
	return teachers, nil
}
