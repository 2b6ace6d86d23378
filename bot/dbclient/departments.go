package dbclient

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Department routes tickets into a channel category. A nil CategoryId means
// the default category is used. Names are not unique: lookups act on the
// first case-insensitive match.
type Department struct {
	Name       string  `bson:"name" json:"name"`
	CategoryId *uint64 `bson:"category_id" json:"category_id"`
}

type departmentConfig struct {
	Id          string       `bson:"_id"`
	Departments []Department `bson:"departments"`
}

const configDocumentId = "config"

var ErrDepartmentNotFound = errors.New("department not found")

// DepartmentStore holds the whole department list in a single config
// document. Writes replace the full array: last writer wins, no locking.
type DepartmentStore struct {
	collection *mongo.Collection
}

func newDepartmentStore(collection *mongo.Collection) *DepartmentStore {
	return &DepartmentStore{
		collection: collection,
	}
}

func DefaultDepartments() []Department {
	return []Department{
		{Name: "General Support"},
		{Name: "Technical Support"},
		{Name: "Billing"},
		{Name: "Report"},
	}
}

// EnsureDefaults creates the config document with the default departments if
// it does not exist yet. Called once at startup.
func (s *DepartmentStore) EnsureDefaults(ctx context.Context) error {
	err := s.collection.FindOne(ctx, bson.M{"_id": configDocumentId}).Err()
	if err == nil {
		return nil
	}

	if !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	return s.write(ctx, DefaultDepartments())
}

func (s *DepartmentStore) List(ctx context.Context) ([]Department, error) {
	var config departmentConfig
	if err := s.collection.FindOne(ctx, bson.M{"_id": configDocumentId}).Decode(&config); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}

		return nil, err
	}

	return config.Departments, nil
}

func (s *DepartmentStore) Add(ctx context.Context, name string) error {
	departments, err := s.List(ctx)
	if err != nil {
		return err
	}

	departments = append(departments, Department{Name: name})
	return s.write(ctx, departments)
}

// Remove deletes every department whose name matches case-insensitively. It
// is a silent no-op when nothing matches.
func (s *DepartmentStore) Remove(ctx context.Context, name string) error {
	departments, err := s.List(ctx)
	if err != nil {
		return err
	}

	return s.write(ctx, removeByName(departments, name))
}

// SetCategory binds a category to the first department matching the name
// case-insensitively. Nothing is written when no department matches.
func (s *DepartmentStore) SetCategory(ctx context.Context, name string, categoryId uint64) error {
	departments, err := s.List(ctx)
	if err != nil {
		return err
	}

	updated, ok := setCategory(departments, name, categoryId)
	if !ok {
		return ErrDepartmentNotFound
	}

	return s.write(ctx, updated)
}

func (s *DepartmentStore) write(ctx context.Context, departments []Department) error {
	if departments == nil {
		departments = make([]Department, 0)
	}

	res := s.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": configDocumentId},
		bson.M{"$set": bson.M{"departments": departments}},
		options.FindOneAndUpdate().SetUpsert(true),
	)

	// ErrNoDocuments is expected on upsert of a fresh document
	if err := res.Err(); err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return err
	}

	return nil
}

func removeByName(departments []Department, name string) []Department {
	remaining := make([]Department, 0, len(departments))
	for _, department := range departments {
		if !strings.EqualFold(department.Name, name) {
			remaining = append(remaining, department)
		}
	}

	return remaining
}

func setCategory(departments []Department, name string, categoryId uint64) ([]Department, bool) {
	for i, department := range departments {
		if strings.EqualFold(department.Name, name) {
			departments[i].CategoryId = &categoryId
			return departments, true
		}
	}

	return departments, false
}
