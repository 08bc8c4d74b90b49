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

const defaultInvoicesTableName = "invoices"

type installmentItem struct {
	Number    int    `dynamodbav:"number"`
	DueDate   string `dynamodbav:"due_date"`
	Amount    string `dynamodbav:"amount"`
	Status    string `dynamodbav:"status"`
	PaidAt    string `dynamodbav:"paid_at,omitempty"`
	PaymentID string `dynamodbav:"payment_id,omitempty"`
}

type invoiceItem struct {
	ID           string            `dynamodbav:"id"`
	WorkOrderID  string            `dynamodbav:"work_order_id"`
	Subtotal     string            `dynamodbav:"subtotal"`
	GST          string            `dynamodbav:"gst"`
	Total        string            `dynamodbav:"total"`
	GSTFree      bool              `dynamodbav:"gst_free"`
	Status       string            `dynamodbav:"status"`
	Installments []installmentItem `dynamodbav:"installments"`
	CreatedAt    string            `dynamodbav:"created_at"`
	UpdatedAt    string            `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists Invoice entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The work order id is used as PK to guarantee one invoice per job. The
// installment plan is stored inline as a list.
type InvoiceDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb DynamoAPI, tableName string) *InvoiceDynamoRepository {
	if tableName == "" {
		tableName = defaultInvoicesTableName
	}
	return &InvoiceDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now}
}

func (r *InvoiceDynamoRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	av, err := attributevalue.MarshalMap(toInvoiceItem(inv))
	if err != nil {
		return entities.Invoice{}, err
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
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            keyOf(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Invoice{}, err
	}
	if len(out.Item) == 0 {
		return entities.Invoice{}, nil
	}

	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) UpdateInstallments(ctx context.Context, id string, installments []entities.Installment, status entities.InvoiceStatus) (entities.Invoice, error) {
	plan, err := attributevalue.Marshal(toInstallmentItems(installments))
	if err != nil {
		return entities.Invoice{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 keyOf(id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #installments = :installments, #status = :status, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":installments": plan,
			":status":       &types.AttributeValueMemberS{Value: string(status)},
			":updated_at":   &types.AttributeValueMemberS{Value: formatTime(r.now())},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":           "id",
			"#installments": "installments",
			"#status":       "status",
			"#updated_at":   "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return entities.Invoice{}, nil
		}
		return entities.Invoice{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Invoice{}, nil
	}
	var it invoiceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

func (r *InvoiceDynamoRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]entities.Invoice, error) {
	items, err := scanAll[invoiceItem](ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#created_at >= :from AND #created_at < :to"),
		ExpressionAttributeNames: map[string]string{
			"#created_at": "created_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":from": &types.AttributeValueMemberS{Value: formatTime(from)},
			":to":   &types.AttributeValueMemberS{Value: formatTime(to)},
		},
	})
	if err != nil {
		return nil, err
	}

	out := make([]entities.Invoice, 0, len(items))
	for _, it := range items {
		out = append(out, fromInvoiceItem(it))
	}
	sortByTime(out, func(inv entities.Invoice) time.Time { return inv.CreatedAt })
	return out, nil
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:           inv.ID,
		WorkOrderID:  inv.WorkOrderID,
		Subtotal:     floatToString(inv.Subtotal),
		GST:          floatToString(inv.GST),
		Total:        floatToString(inv.Total),
		GSTFree:      inv.GSTFree,
		Status:       string(inv.Status),
		Installments: toInstallmentItems(inv.Installments),
		CreatedAt:    formatTime(inv.CreatedAt),
		UpdatedAt:    formatTime(inv.UpdatedAt),
	}
}

func toInstallmentItems(plan []entities.Installment) []installmentItem {
	out := make([]installmentItem, 0, len(plan))
	for _, in := range plan {
		out = append(out, installmentItem{
			Number:    in.Number,
			DueDate:   formatTime(in.DueDate),
			Amount:    floatToString(in.Amount),
			Status:    string(in.Status),
			PaidAt:    formatTimePtr(in.PaidAt),
			PaymentID: in.PaymentID,
		})
	}
	return out
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	plan := make([]entities.Installment, 0, len(it.Installments))
	for _, in := range it.Installments {
		plan = append(plan, entities.Installment{
			Number:    in.Number,
			DueDate:   parseTime(in.DueDate),
			Amount:    parseFloat(in.Amount),
			Status:    entities.InstallmentStatus(in.Status),
			PaidAt:    parseTimePtr(in.PaidAt),
			PaymentID: in.PaymentID,
		})
	}
	return entities.Invoice{
		ID:           it.ID,
		WorkOrderID:  it.WorkOrderID,
		Subtotal:     parseFloat(it.Subtotal),
		GST:          parseFloat(it.GST),
		Total:        parseFloat(it.Total),
		GSTFree:      it.GSTFree,
		Status:       entities.InvoiceStatus(it.Status),
		Installments: plan,
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
