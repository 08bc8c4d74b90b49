package repository

import (
	"context"
	"sort"

	"moto_workshop/internal/domain/entities"
	"moto_workshop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMechanicsTableName = "mechanics"
	defaultCustomersTableName = "customers"

	// BatchGetItem accepts at most 100 keys per request.
	batchGetLimit = 100
)

type mechanicItem struct {
	ID             string   `dynamodbav:"id"`
	Name           string   `dynamodbav:"name"`
	DailyHoursGoal *float64 `dynamodbav:"daily_hours_goal,omitempty"`
	Active         bool     `dynamodbav:"active"`
	CreatedAt      string   `dynamodbav:"created_at"`
}

type customerItem struct {
	ID         string `dynamodbav:"id"`
	Name       string `dynamodbav:"name"`
	IsPriority bool   `dynamodbav:"is_priority"`
}

// MechanicDynamoRepository persists Mechanic reference data in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type MechanicDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IMechanicRepository = (*MechanicDynamoRepository)(nil)

func NewMechanicDynamoRepository(ddb DynamoAPI, tableName string) *MechanicDynamoRepository {
	if tableName == "" {
		tableName = defaultMechanicsTableName
	}
	return &MechanicDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *MechanicDynamoRepository) Create(ctx context.Context, mechanic entities.Mechanic) (entities.Mechanic, error) {
	goal := mechanic.DailyHoursGoal
	av, err := attributevalue.MarshalMap(mechanicItem{
		ID:             mechanic.ID,
		Name:           mechanic.Name,
		DailyHoursGoal: &goal,
		Active:         mechanic.Active,
		CreatedAt:      formatTime(mechanic.CreatedAt),
	})
	if err != nil {
		return entities.Mechanic{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Mechanic{}, err
	}
	return mechanic, nil
}

func (r *MechanicDynamoRepository) GetByID(ctx context.Context, id string) (entities.Mechanic, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            keyOf(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Mechanic{}, err
	}
	if len(out.Item) == 0 {
		return entities.Mechanic{}, nil
	}

	var it mechanicItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Mechanic{}, err
	}
	return fromMechanicItem(it), nil
}

func (r *MechanicDynamoRepository) ListActive(ctx context.Context) ([]entities.Mechanic, error) {
	items, err := scanAll[mechanicItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#active = :true"),
		ExpressionAttributeNames: map[string]string{
			"#active": "active",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, err
	}

	out := make([]entities.Mechanic, 0, len(items))
	for _, it := range items {
		out = append(out, fromMechanicItem(it))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Rows without a goal read as the workshop default.
func fromMechanicItem(it mechanicItem) entities.Mechanic {
	goal := entities.DefaultDailyHoursGoal
	if it.DailyHoursGoal != nil {
		goal = *it.DailyHoursGoal
	}
	return entities.Mechanic{
		ID:             it.ID,
		Name:           it.Name,
		DailyHoursGoal: goal,
		Active:         it.Active,
		CreatedAt:      parseTime(it.CreatedAt),
	}
}

// CustomerDynamoRepository reads the customers table, which is owned by the
// front desk system.
type CustomerDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb DynamoAPI, tableName string) *CustomerDynamoRepository {
	if tableName == "" {
		tableName = defaultCustomersTableName
	}
	return &CustomerDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CustomerDynamoRepository) GetByIDs(ctx context.Context, ids []string) (map[string]entities.Customer, error) {
	out := make(map[string]entities.Customer, len(ids))
	for start := 0; start < len(ids); start += batchGetLimit {
		end := start + batchGetLimit
		if end > len(ids) {
			end = len(ids)
		}

		keys := make([]map[string]types.AttributeValue, 0, end-start)
		for _, id := range ids[start:end] {
			keys = append(keys, keyOf(id))
		}
		request := map[string]types.KeysAndAttributes{
			r.tableName: {Keys: keys},
		}

		for len(request) > 0 {
			res, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: request})
			if err != nil {
				return nil, err
			}
			for _, raw := range res.Responses[r.tableName] {
				var it customerItem
				if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
					return nil, err
				}
				out[it.ID] = entities.Customer{ID: it.ID, Name: it.Name, IsPriority: it.IsPriority}
			}
			request = res.UnprocessedKeys
		}
	}
	return out, nil
}
