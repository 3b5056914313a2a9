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

func (d *Dynamo) Put(ctx context.Context, coll table.CollectionDefinition, entity any) error {
	item, err := attributevalue.MarshalMap(entity)
	if err != nil {
		return fmt.Errorf("marshal entity for %s: %w", coll.Name, err)
	}
	_, err = d.api.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &coll.Name,
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put item into %s: %w", coll.Name, err)
	}
	return nil
}

func (d *Dynamo) Update(ctx context.Context, coll table.CollectionDefinition, key string, set map[string]any, out any) error {
	if len(set) == 0 {
		return fmt.Errorf("update on %s: no attributes to set", coll.Name)
	}

	var upd expression.UpdateBuilder
	for name, value := range set {
		upd = upd.Set(expression.Name(name), expression.Value(value))
	}
	// Guard against upserting: DynamoDB's UpdateItem creates the record
	// when the key is absent, the contract here requires failure.
	cond := expression.AttributeExists(expression.Name(coll.Key.Name))

	expr, err := expression.NewBuilder().WithUpdate(upd).WithCondition(cond).Build()
	if err != nil {
		return fmt.Errorf("build update for %s: %w", coll.Name, err)
	}

	res, err := d.api.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 &coll.Name,
		Key:                       primaryKeyAV(coll, key),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return fmt.Errorf("update item in %s: %w", coll.Name, err)
	}

	if out != nil {
		if err := attributevalue.UnmarshalMap(res.Attributes, out); err != nil {
			return fmt.Errorf("unmarshal updated item from %s: %w", coll.Name, err)
		}
	}
	return nil
}
