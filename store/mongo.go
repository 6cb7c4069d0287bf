package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/drblury/docweaver/ident"
)

// MongoRepository stores documents of type T in a single MongoDB collection
// keyed by _id.
type MongoRepository[T Document] struct {
	coll   *mongo.Collection
	newDoc func() T
}

// NewMongoRepository binds a repository to coll. newDoc must return a fresh
// zero document that BSON can decode into.
func NewMongoRepository[T Document](coll *mongo.Collection, newDoc func() T) *MongoRepository[T] {
	return &MongoRepository[T]{coll: coll, newDoc: newDoc}
}

func (r *MongoRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, translateMongoError(err)
	}

	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, translateMongoError(err)
	}
	return docs, nil
}

func (r *MongoRepository[T]) GetByID(ctx context.Context, id string) (T, error) {
	doc := r.newDoc()
	if err := r.coll.FindOne(ctx, byID(id)).Decode(doc); err != nil {
		var zero T
		return zero, translateLookupError(id, err)
	}
	return doc, nil
}

func (r *MongoRepository[T]) Create(ctx context.Context, doc T) (T, error) {
	if doc.DocumentID() == "" {
		doc.SetDocumentID(ident.New())
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		var zero T
		return zero, translateMongoError(err)
	}
	return doc, nil
}

func (r *MongoRepository[T]) Update(ctx context.Context, id string, doc T) (T, error) {
	var zero T
	doc.SetDocumentID(id)

	fields, err := setFields(doc)
	if err != nil {
		return zero, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	updated := r.newDoc()
	err = r.coll.FindOneAndUpdate(ctx, byID(id), bson.D{{Key: "$set", Value: fields}}, opts).Decode(updated)
	if err != nil {
		return zero, translateLookupError(id, err)
	}
	return updated, nil
}

func (r *MongoRepository[T]) Delete(ctx context.Context, id string) (T, error) {
	deleted := r.newDoc()
	if err := r.coll.FindOneAndDelete(ctx, byID(id)).Decode(deleted); err != nil {
		var zero T
		return zero, translateLookupError(id, err)
	}
	return deleted, nil
}

// Ping checks the primary of the deployment backing the collection.
func (r *MongoRepository[T]) Ping(ctx context.Context) error {
	if err := r.coll.Database().Client().Ping(ctx, readpref.Primary()); err != nil {
		return translateMongoError(err)
	}
	return nil
}

func byID(id string) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}

// setFields renders doc as the body of a $set, without the immutable _id.
func setFields(doc any) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, Wrap(CodeBadValue, fmt.Errorf("encode document: %w", err))
	}
	var fields bson.M
	if err := bson.Unmarshal(raw, &fields); err != nil {
		return nil, Wrap(CodeBadValue, fmt.Errorf("encode document: %w", err))
	}
	delete(fields, "_id")
	return fields, nil
}

func translateLookupError(id string, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return NotFound(id)
	}
	return translateMongoError(err)
}

// translateMongoError keeps the server code and message of driver errors.
func translateMongoError(err error) error {
	if err == nil {
		return nil
	}

	var writeErr mongo.WriteException
	if errors.As(err, &writeErr) {
		if len(writeErr.WriteErrors) > 0 {
			first := writeErr.WriteErrors[0]
			return &Error{Code: first.Code, Name: codeNames[first.Code], Message: first.Message, cause: err}
		}
		if wce := writeErr.WriteConcernError; wce != nil {
			return &Error{Code: wce.Code, Name: wce.Name, Message: wce.Message, cause: err}
		}
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		name := cmdErr.Name
		if name == "" {
			name = codeNames[int(cmdErr.Code)]
		}
		return &Error{Code: int(cmdErr.Code), Name: name, Message: cmdErr.Message, cause: err}
	}

	if mongo.IsDuplicateKeyError(err) {
		return Wrap(CodeDuplicateKey, err)
	}

	return Wrap(CodeInternal, err)
}
