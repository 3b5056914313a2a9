package store

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/hibiscushealth/backend/table"
)

func (d *Dynamo) Get(ctx context.Context, coll table.CollectionDefinition, key string, out any) (bool, error) {
	res, err := d.api.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &coll.Name,
		Key:       primaryKeyAV(coll, key),
	})
	if err != nil {
		return false, fmt.Errorf("get item from %s: %w", coll.Name, err)
	}
	if res.Item == nil {
		return false, nil
	}
	if out != nil {
		if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
			return false, fmt.Errorf("unmarshal item from %s: %w", coll.Name, err)
		}
	}
	return true, nil
}

func (d *Dynamo) Query(ctx context.Context, coll table.CollectionDefinition, index, value string, out any) error {
	idx, err := coll.Index(index)
	if err != nil {
		return err
	}

	keyCond := expression.KeyEqual(expression.Key(idx.Key), expression.Value(value))
	expr, err := expression.NewBuilder().WithKeyCondition(keyCond).Build()
	if err != nil {
		return fmt.Errorf("build key condition for %s.%s: %w", coll.Name, idx.Name, err)
	}

	var items []map[string]types.AttributeValue
	var cursor map[string]types.AttributeValue
	for {
		res, err := d.api.Query(ctx, &dynamodb.QueryInput{
			TableName:                 &coll.Name,
			IndexName:                 &idx.Name,
			KeyConditionExpression:    expr.KeyCondition(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ExclusiveStartKey:         cursor,
		})
		if err != nil {
			return fmt.Errorf("query %s.%s: %w", coll.Name, idx.Name, err)
		}
		items = append(items, res.Items...)
		if res.LastEvaluatedKey == nil {
			break
		}
		cursor = res.LastEvaluatedKey
	}

	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return fmt.Errorf("unmarshal query result from %s: %w", coll.Name, err)
	}
	return nil
}

func (d *Dynamo) Scan(ctx context.Context, coll table.CollectionDefinition, out any) error {
	var items []map[string]types.AttributeValue
	var cursor map[string]types.AttributeValue
	for {
		res, err := d.api.Scan(ctx, &dynamodb.ScanInput{
			TableName:         &coll.Name,
			ExclusiveStartKey: cursor,
		})
		if err != nil {
			return fmt.Errorf("scan %s: %w", coll.Name, err)
		}
		items = append(items, res.Items...)
		if res.LastEvaluatedKey == nil {
			break
		}
		cursor = res.LastEvaluatedKey
	}

	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		return fmt.Errorf("unmarshal scan result from %s: %w", coll.Name, err)
	}
	return nil
}

func primaryKeyAV(coll table.CollectionDefinition, key string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		coll.Key.Name: &types.AttributeValueMemberS{Value: key},
	}
}
