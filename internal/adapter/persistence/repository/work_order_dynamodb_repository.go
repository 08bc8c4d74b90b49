package repository

import (
	"context"
	"time"

	"moto_workshop/internal/domain/entities"
	"moto_workshop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultWorkOrdersTableName = "work_orders"

type workOrderItem struct {
	ID                 string   `dynamodbav:"id"`
	JobNumber          string   `dynamodbav:"job_number"`
	Description        string   `dynamodbav:"description"`
	CustomerID         string   `dynamodbav:"customer_id,omitempty"`
	Status             string   `dynamodbav:"status"`
	Priority           string   `dynamodbav:"priority"`
	CustomerWaiting    bool     `dynamodbav:"customer_waiting"`
	EstimatedHours     *float64 `dynamodbav:"estimated_hours,omitempty"`
	MechanicHours      *float64 `dynamodbav:"mechanic_hours,omitempty"`
	ScheduledStart     string   `dynamodbav:"scheduled_start,omitempty"`
	ScheduledEnd       string   `dynamodbav:"scheduled_end,omitempty"`
	AssignedMechanicID string   `dynamodbav:"assigned_mechanic_id,omitempty"`
	CreatedAt          string   `dynamodbav:"created_at"`
	UpdatedAt          string   `dynamodbav:"updated_at"`
}

// WorkOrderDynamoRepository persists WorkOrder entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// A workshop holds a few hundred open jobs at most, so the week and backlog
// queries are filtered scans; unscheduled rows simply lack scheduled_start.
type WorkOrderDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IWorkOrderRepository = (*WorkOrderDynamoRepository)(nil)

func NewWorkOrderDynamoRepository(ddb DynamoAPI, tableName string) *WorkOrderDynamoRepository {
	if tableName == "" {
		tableName = defaultWorkOrdersTableName
	}
	return &WorkOrderDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *WorkOrderDynamoRepository) Create(ctx context.Context, wo entities.WorkOrder) (entities.WorkOrder, error) {
	av, err := attributevalue.MarshalMap(toWorkOrderItem(wo))
	if err != nil {
		return entities.WorkOrder{}, err
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
		return entities.WorkOrder{}, err
	}
	return wo, nil
}

func (r *WorkOrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            keyOf(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if len(out.Item) == 0 {
		return entities.WorkOrder{}, nil
	}

	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func (r *WorkOrderDynamoRepository) ListScheduledBetween(ctx context.Context, start, end time.Time) ([]entities.WorkOrder, error) {
	items, err := scanAll[workOrderItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#ss >= :from AND #ss < :to"),
		ExpressionAttributeNames: map[string]string{
			"#ss": "scheduled_start",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: formatTime(start)},
			":to":   &types.AttributeValueMemberS{Value: formatTime(end)},
		},
	})
	if err != nil {
		return nil, err
	}

	orders := fromWorkOrderItems(items)
	sortByTime(orders, func(wo entities.WorkOrder) time.Time { return *wo.ScheduledStart })
	return orders, nil
}

func (r *WorkOrderDynamoRepository) ListUnscheduled(ctx context.Context) ([]entities.WorkOrder, error) {
	items, err := scanAll[workOrderItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("attribute_not_exists(#ss) AND #status IN (:pending, :in_progress, :waiting)"),
		ExpressionAttributeNames: map[string]string{
			"#ss":     "scheduled_start",
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":     &types.AttributeValueMemberS{Value: string(entities.WorkOrderStatusPending)},
			":in_progress": &types.AttributeValueMemberS{Value: string(entities.WorkOrderStatusInProgress)},
			":waiting":     &types.AttributeValueMemberS{Value: string(entities.WorkOrderStatusWaitingOnParts)},
		},
	})
	if err != nil {
		return nil, err
	}

	orders := fromWorkOrderItems(items)
	sortByTime(orders, func(wo entities.WorkOrder) time.Time { return wo.CreatedAt })
	return orders, nil
}

// UpdateSchedule writes mechanic, start, end and duration in one UpdateItem.
// A nil End removes the stored end.
func (r *WorkOrderDynamoRepository) UpdateSchedule(ctx context.Context, id string, upd entities.ScheduleUpdate) (entities.WorkOrder, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #mechanic = :mechanic, #ss = :start, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":mechanic":   &types.AttributeValueMemberS{Value: upd.MechanicID},
			":start":      &types.AttributeValueMemberS{Value: formatTime(upd.Start)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#mechanic":   "assigned_mechanic_id",
			"#ss":         "scheduled_start",
			"#se":         "scheduled_end",
			"#updated_at": "updated_at",
		}
		if upd.MechanicHours != nil {
			expr += ", #hours = :hours"
			vals[":hours"] = &types.AttributeValueMemberN{Value: floatToString(*upd.MechanicHours)}
			names["#hours"] = "mechanic_hours"
		}
		if upd.End != nil {
			expr += ", #se = :end"
			vals[":end"] = &types.AttributeValueMemberS{Value: formatTime(*upd.End)}
		} else {
			expr += " REMOVE #se"
		}
		return expr, vals, names
	})
}

func (r *WorkOrderDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.WorkOrderStatus) (entities.WorkOrder, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *WorkOrderDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.WorkOrder, error) {
	updateExpr, values, names := build(formatTime(r.now()))

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       keyOf(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.WorkOrder{}, nil
		}
		return entities.WorkOrder{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.WorkOrder{}, nil
	}
	var it workOrderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.WorkOrder{}, err
	}
	return fromWorkOrderItem(it), nil
}

func toWorkOrderItem(wo entities.WorkOrder) workOrderItem {
	return workOrderItem{
		ID:                 wo.ID,
		JobNumber:          wo.JobNumber,
		Description:        wo.Description,
		CustomerID:         wo.CustomerID,
		Status:             string(wo.Status),
		Priority:           string(wo.Priority),
		CustomerWaiting:    wo.CustomerWaiting,
		EstimatedHours:     wo.EstimatedHours,
		MechanicHours:      wo.MechanicHours,
		ScheduledStart:     formatTimePtr(wo.ScheduledStart),
		ScheduledEnd:       formatTimePtr(wo.ScheduledEnd),
		AssignedMechanicID: wo.AssignedMechanicID,
		CreatedAt:          formatTime(wo.CreatedAt),
		UpdatedAt:          formatTime(wo.UpdatedAt),
	}
}

func fromWorkOrderItem(it workOrderItem) entities.WorkOrder {
	return entities.WorkOrder{
		ID:                 it.ID,
		JobNumber:          it.JobNumber,
		Description:        it.Description,
		CustomerID:         it.CustomerID,
		Status:             entities.WorkOrderStatus(it.Status),
		Priority:           entities.WorkOrderPriority(it.Priority),
		CustomerWaiting:    it.CustomerWaiting,
		EstimatedHours:     it.EstimatedHours,
		MechanicHours:      it.MechanicHours,
		ScheduledStart:     parseTimePtr(it.ScheduledStart),
		ScheduledEnd:       parseTimePtr(it.ScheduledEnd),
		AssignedMechanicID: it.AssignedMechanicID,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
}

func fromWorkOrderItems(items []workOrderItem) []entities.WorkOrder {
	out := make([]entities.WorkOrder, 0, len(items))
	for _, it := range items {
		out = append(out, fromWorkOrderItem(it))
	}
	return out
}
