package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/spec-kit/employee-service/internal/domain"
	"github.com/spec-kit/employee-service/internal/repository"
)

func employeeBSON(id primitive.ObjectID, name string, salary float64) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "position", Value: "Engineer"},
		{Key: "department", Value: "IT"},
		{Key: "salary", Value: salary},
	}
}

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func TestMongoEmployeeRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("create assigns id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := repository.NewEmployeeMongoRepository(mt.Coll)

		emp := &domain.Employee{Name: "Ada", Position: "Engineer", Department: "IT", Salary: 1}
		require.NoError(mt, repo.Create(ctx, emp))
		_, err := primitive.ObjectIDFromHex(emp.ID)
		require.NoError(mt, err)
	})

	mt.Run("create surfaces write errors", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 121, Message: "Document failed validation",
		}))
		repo := repository.NewEmployeeMongoRepository(mt.Coll)

		emp := &domain.Employee{Name: "Ada", Position: "Engineer", Department: "IT", Salary: 1}
		err := repo.Create(ctx, emp)
		require.ErrorIs(mt, err, domain.ErrInvalidEmployee)
		assert.Contains(mt, err.Error(), "Document failed validation")
		assert.Empty(mt, emp.ID)
	})

	mt.Run("create many", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := repository.NewEmployeeMongoRepository(mt.Coll)
		require.NoError(mt, repo.CreateMany(ctx, domain.SampleEmployees()))
	})

	mt.Run("count", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: 1}, {Key: "n", Value: int32(5)}}))
		repo := repository.NewEmployeeMongoRepository(mt.Coll)

		n, err := repo.Count(ctx)
		require.NoError(mt, err)
		assert.Equal(mt, int64(5), n)
	})

	mt.Run("list", func(mt *mtest.T) {
		first, second := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, namespace(mt), mtest.FirstBatch, employeeBSON(first, "Siva1", 70000)),
			mtest.CreateCursorResponse(0, namespace(mt), mtest.NextBatch, employeeBSON(second, "Siva2", 85000)),
		)
		repo := repository.NewEmployeeMongoRepository(mt.Coll)

		got, err := repo.List(ctx)
		require.NoError(mt, err)
		require.Len(mt, got, 2)
		assert.Equal(mt, domain.Employee{
			ID: first.Hex(), Name: "Siva1", Position: "Engineer", Department: "IT", Salary: 70000,
		}, got[0])
		assert.Equal(mt, second.Hex(), got[1].ID)
	})

	mt.Run("get by id", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch, employeeBSON(id, "Ada", 5)))
		repo := repository.NewEmployeeMongoRepository(mt.Coll)

		got, err := repo.GetByID(ctx, id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, "Ada", got.Name)
		assert.Equal(mt, id.Hex(), got.ID)
	})

	mt.Run("get by id not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))
		repo := repository.NewEmployeeMongoRepository(mt.Coll)

		_, err := repo.GetByID(ctx, primitive.NewObjectID().Hex())
		require.ErrorIs(mt, err, domain.ErrEmployeeNotFound)
	})

	mt.Run("get by malformed id", func(mt *mtest.T) {
		repo := repository.NewEmployeeMongoRepository(mt.Coll)
		_, err := repo.GetByID(ctx, "123")
		require.ErrorIs(mt, err, domain.ErrInvalidEmployeeID)
	})

	mt.Run("get by id store failure", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code: 13, Name: "Unauthorized", Message: "not authorized",
		}))
		repo := repository.NewEmployeeMongoRepository(mt.Coll)

		_, err := repo.GetByID(ctx, primitive.NewObjectID().Hex())
		require.Error(mt, err)
		assert.NotErrorIs(mt, err, domain.ErrEmployeeNotFound)
	})

	mt.Run("update returns new document", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: employeeBSON(id, "Ada", 99000)},
		})
		repo := repository.NewEmployeeMongoRepository(mt.Coll)

		salary := 99000.0
		got, err := repo.Update(ctx, id.Hex(), domain.EmployeePatch{Salary: &salary})
		require.NoError(mt, err)
		assert.Equal(mt, 99000.0, got.Salary)
		assert.Equal(mt, id.Hex(), got.ID)
	})

	mt.Run("update not found", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: nil}})
		repo := repository.NewEmployeeMongoRepository(mt.Coll)

		name := "Bob"
		_, err := repo.Update(ctx, primitive.NewObjectID().Hex(), domain.EmployeePatch{Name: &name})
		require.ErrorIs(mt, err, domain.ErrEmployeeNotFound)
	})

	mt.Run("delete", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 1}})
		repo := repository.NewEmployeeMongoRepository(mt.Coll)
		require.NoError(mt, repo.Delete(ctx, primitive.NewObjectID().Hex()))
	})

	mt.Run("delete not found", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "n", Value: 0}})
		repo := repository.NewEmployeeMongoRepository(mt.Coll)
		require.ErrorIs(mt, repo.Delete(ctx, primitive.NewObjectID().Hex()), domain.ErrEmployeeNotFound)
	})
}
