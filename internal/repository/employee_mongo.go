package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spec-kit/employee-service/internal/domain"
)

type employeeDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	Position   string             `bson:"position"`
	Department string             `bson:"department"`
	Salary     float64            `bson:"salary"`
}

func (d employeeDocument) toDomain() domain.Employee {
	return domain.Employee{
		ID:         d.ID.Hex(),
		Name:       d.Name,
		Position:   d.Position,
		Department: d.Department,
		Salary:     d.Salary,
	}
}

func newEmployeeDocument(emp domain.Employee) employeeDocument {
	return employeeDocument{
		Name:       emp.Name,
		Position:   emp.Position,
		Department: emp.Department,
		Salary:     emp.Salary,
	}
}

type employeeMongoRepository struct {
	coll *mongo.Collection
}

// NewEmployeeMongoRepository stores employees as documents in coll.
func NewEmployeeMongoRepository(coll *mongo.Collection) EmployeeRepository {
	return &employeeMongoRepository{coll: coll}
}

func (r *employeeMongoRepository) Create(ctx context.Context, emp *domain.Employee) error {
	doc := newEmployeeDocument(*emp)
	doc.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return mongoError("insert employee", err)
	}
	emp.ID = doc.ID.Hex()
	return nil
}

func (r *employeeMongoRepository) CreateMany(ctx context.Context, emps []domain.Employee) error {
	if len(emps) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(emps))
	for _, emp := range emps {
		docs = append(docs, newEmployeeDocument(emp))
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return mongoError("insert employees", err)
	}
	return nil
}

func (r *employeeMongoRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return n, nil
}

func (r *employeeMongoRepository) List(ctx context.Context) ([]domain.Employee, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find employees: %w", err)
	}
	var docs []employeeDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode employees: %w", err)
	}
	result := make([]domain.Employee, 0, len(docs))
	for _, doc := range docs {
		result = append(result, doc.toDomain())
	}
	return result, nil
}

func (r *employeeMongoRepository) GetByID(ctx context.Context, id string) (*domain.Employee, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	var doc employeeDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, mongoError("find employee", err)
	}
	emp := doc.toDomain()
	return &emp, nil
}

func (r *employeeMongoRepository) Update(ctx context.Context, id string, patch domain.EmployeePatch) (*domain.Employee, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	set := bson.D{}
	if patch.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *patch.Name})
	}
	if patch.Position != nil {
		set = append(set, bson.E{Key: "position", Value: *patch.Position})
	}
	if patch.Department != nil {
		set = append(set, bson.E{Key: "department", Value: *patch.Department})
	}
	if patch.Salary != nil {
		set = append(set, bson.E{Key: "salary", Value: *patch.Salary})
	}
	// $set with no fields is rejected by the server.
	if len(set) == 0 {
		return r.GetByID(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc employeeDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.D{{Key: "$set", Value: set}}, opts).Decode(&doc)
	if err != nil {
		return nil, mongoError("update employee", err)
	}
	emp := doc.toDomain()
	return &emp, nil
}

func (r *employeeMongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidEmployeeID, id)
	}
	return oid, nil
}

// documentValidationFailure is the server code for a write rejected by
// collection validation rules.
const documentValidationFailure = 121

func mongoError(op string, err error) error {
	var (
		writeErr  mongo.WriteException
		bulkErr   mongo.BulkWriteException
		serverErr mongo.ServerError
	)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return domain.ErrEmployeeNotFound
	case errors.As(err, &writeErr), errors.As(err, &bulkErr), mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", domain.ErrInvalidEmployee, err)
	case errors.As(err, &serverErr) && serverErr.HasErrorCode(documentValidationFailure):
		return fmt.Errorf("%w: %v", domain.ErrInvalidEmployee, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}
