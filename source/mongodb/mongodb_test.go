package mongodb

import (
	"context"
	"errors"
	"testing"

	"github.com/ncobase/sqlpage/paging"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

type event struct {
	ID   int    `bson:"_id"`
	Kind string `bson:"kind"`
}

func TestFindOptions(t *testing.T) {
	src := New[event](nil, nil,
		WithSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: 1}}),
		WithProjection(bson.D{{Key: "kind", Value: 1}}),
	)

	opts := src.FindOptions(20, 10)
	if opts.Skip == nil || *opts.Skip != 20 {
		t.Errorf("Skip = %v, want 20", opts.Skip)
	}
	if opts.Limit == nil || *opts.Limit != 10 {
		t.Errorf("Limit = %v, want 10", opts.Limit)
	}
	sort, ok := opts.Sort.(bson.D)
	if !ok || len(sort) != 2 || sort[0].Key != "created_at" {
		t.Errorf("Sort = %v", opts.Sort)
	}
	if opts.Projection == nil {
		t.Error("expected projection")
	}
}

func TestDefaults(t *testing.T) {
	src := New[event](nil, nil, WithSort(nil))
	if len(src.opts.sort) != 1 || src.opts.sort[0].Key != "_id" {
		t.Errorf("sort = %v, want _id", src.opts.sort)
	}
	if _, ok := src.filter.(bson.D); !ok {
		t.Errorf("filter = %T, want bson.D", src.filter)
	}
}

func TestPaginateMock(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("first page", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(3)}}),
			mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
				bson.D{{Key: "_id", Value: 1}, {Key: "kind", Value: "view"}},
				bson.D{{Key: "_id", Value: 2}, {Key: "kind", Value: "login"}},
			),
		)

		src := New[event](mt.Coll, bson.D{})
		page, err := paging.Paginate[event](context.Background(), src, 2, "")
		if err != nil {
			mt.Fatalf("Paginate() error = %v", err)
		}
		if page.TotalItems != 3 {
			mt.Errorf("TotalItems = %d, want 3", page.TotalItems)
		}
		if len(page.Items) != 2 || page.Items[1] != (event{ID: 2, Kind: "login"}) {
			mt.Errorf("Items = %+v", page.Items)
		}
		if !page.HasNext {
			mt.Error("expected next page")
		}
	})

	mt.Run("count error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized",
		}))

		src := New[event](mt.Coll, nil)
		_, err := paging.Paginate[event](context.Background(), src, 2, "")
		if err == nil {
			mt.Fatal("expected error")
		}
		var se *paging.SourceError
		if !errors.As(err, &se) || se.Op != "count" {
			mt.Errorf("error = %v, want count SourceError", err)
		}
	})
}
