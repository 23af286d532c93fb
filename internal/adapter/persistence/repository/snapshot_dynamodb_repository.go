package repository

import (
	"context"
	"encoding/json"
	"time"

	"sarb_ai/internal/domain/entities"
	"sarb_ai/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSnapshotsTableName = "ai_snapshots"
	latestSnapshotKey         = "latest"
)

type snapshotItem struct {
	ID      string `dynamodbav:"id"`
	Payload string `dynamodbav:"payload"`
	SavedAt string `dynamodbav:"saved_at"`
}

// SnapshotDynamoRepository archives the most recent marketplace snapshot.
//
// Table requirements:
//   - PK: id (string); a single item under the key "latest" is overwritten
//     on every save.
//
// The archive sits outside the request path: it is written best-effort at
// shutdown and read only when the provider is completely unreachable.

type SnapshotDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISnapshotArchive = (*SnapshotDynamoRepository)(nil)

func NewSnapshotDynamoRepository(ddb *dynamodb.Client) *SnapshotDynamoRepository {
	return &SnapshotDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SNAPSHOTS_TABLE", defaultSnapshotsTableName),
	}
}

func (r *SnapshotDynamoRepository) SaveLatest(ctx context.Context, snap entities.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	it := snapshotItem{
		ID:      latestSnapshotKey,
		Payload: string(payload),
		SavedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *SnapshotDynamoRepository) LoadLatest(ctx context.Context) (entities.Snapshot, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: latestSnapshotKey},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Snapshot{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.Snapshot{}, false, nil
	}

	var it snapshotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Snapshot{}, false, err
	}
	var snap entities.Snapshot
	if err := json.Unmarshal([]byte(it.Payload), &snap); err != nil {
		return entities.Snapshot{}, false, err
	}
	return snap, true, nil
}
