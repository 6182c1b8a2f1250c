package repository

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultStoreTableName = "os_pro_store"

// collectionItem is the single-table row holding one whole collection.
//
// Table requirements:
//   - PK: collection (string)
//
// One row per collection keeps the store a plain key-value blob store,
// matching the legacy app's storage model, and makes every upsert/delete
// an atomic whole-collection rewrite.
type collectionItem struct {
	Collection string `dynamodbav:"collection"`
	Payload    string `dynamodbav:"payload"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// DynamoBlobStore persists collection blobs in DynamoDB.
type DynamoBlobStore struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ BlobStore = (*DynamoBlobStore)(nil)

func NewDynamoBlobStore(ddb *dynamodb.Client) *DynamoBlobStore {
	return &DynamoBlobStore{
		ddb:       ddb,
		tableName: getenvDefault("STORE_TABLE", defaultStoreTableName),
	}
}

func (s *DynamoBlobStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"collection": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, false, err
	}
	if len(out.Item) == 0 {
		return nil, false, nil
	}

	var it collectionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, false, err
	}
	return []byte(it.Payload), true, nil
}

func (s *DynamoBlobStore) Put(ctx context.Context, key string, payload []byte) error {
	av, err := attributevalue.MarshalMap(collectionItem{
		Collection: key,
		Payload:    string(payload),
		UpdatedAt:  time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}

func (s *DynamoBlobStore) Delete(ctx context.Context, key string) error {
	_, err := s.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"collection": &types.AttributeValueMemberS{Value: key},
		},
	})
	return err
}
