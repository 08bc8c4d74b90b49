package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"moto_workshop/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo answers each call through the matching hook; unset hooks fail the call.
type fakeDynamo struct {
	getItem      func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error)
	putItem      func(*dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error)
	updateItem   func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error)
	query        func(*dynamodb.QueryInput) (*dynamodb.QueryOutput, error)
	scan         func(*dynamodb.ScanInput) (*dynamodb.ScanOutput, error)
	batchGetItem func(*dynamodb.BatchGetItemInput) (*dynamodb.BatchGetItemOutput, error)
}

var errUnexpectedCall = errors.New("unexpected call")

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.getItem == nil {
		return nil, errUnexpectedCall
	}
	return f.getItem(in)
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.putItem == nil {
		return nil, errUnexpectedCall
	}
	return f.putItem(in)
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	if f.updateItem == nil {
		return nil, errUnexpectedCall
	}
	return f.updateItem(in)
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if f.query == nil {
		return nil, errUnexpectedCall
	}
	return f.query(in)
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if f.scan == nil {
		return nil, errUnexpectedCall
	}
	return f.scan(in)
}

func (f *fakeDynamo) BatchGetItem(_ context.Context, in *dynamodb.BatchGetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error) {
	if f.batchGetItem == nil {
		return nil, errUnexpectedCall
	}
	return f.batchGetItem(in)
}

func mustMarshal(t *testing.T, v interface{}) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return av
}

func f64(v float64) *float64 { return &v }

func tp(v time.Time) *time.Time { return &v }

func TestFormatTime_SortsLexically(t *testing.T) {
	a := time.Date(2024, 3, 13, 9, 0, 0, 0, time.UTC)
	b := a.Add(1500 * time.Millisecond)
	c := a.Add(2 * time.Hour)

	if !(formatTime(a) < formatTime(b) && formatTime(b) < formatTime(c)) {
		t.Fatalf("expected lexical order, got %s %s %s", formatTime(a), formatTime(b), formatTime(c))
	}
	if len(formatTime(a)) != len(formatTime(b)) {
		t.Fatalf("expected fixed width")
	}

	syd, _ := time.LoadLocation("Australia/Sydney")
	if got := parseTime(formatTime(a.In(syd))); !got.Equal(a) {
		t.Fatalf("round trip mismatch: %v", got)
	}
	if got := parseTime("2024-03-13T09:00:00.5Z"); !got.Equal(a.Add(500 * time.Millisecond)) {
		t.Fatalf("legacy RFC3339 value not parsed: %v", got)
	}
	if !parseTime("").IsZero() || parseTimePtr("") != nil {
		t.Fatalf("empty values must stay empty")
	}
}

func TestWorkOrderDynamoRepository_CreateAndGet(t *testing.T) {
	created := time.Date(2024, 3, 12, 23, 0, 0, 0, time.UTC)
	wo := entities.WorkOrder{
		ID:             "wo-1",
		JobNumber:      "WO-1",
		Description:    "Fork seals",
		Status:         entities.WorkOrderStatusPending,
		Priority:       entities.WorkOrderPriorityHigh,
		EstimatedHours: f64(2),
		CreatedAt:      created,
		UpdatedAt:      created,
	}

	var stored map[string]types.AttributeValue
	fake := &fakeDynamo{
		putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			if aws.ToString(in.TableName) != "work_orders" {
				t.Fatalf("unexpected table %s", aws.ToString(in.TableName))
			}
			if aws.ToString(in.ConditionExpression) != "attribute_not_exists(#id)" {
				t.Fatalf("create must be conditional")
			}
			if _, ok := in.Item["scheduled_start"]; ok {
				t.Fatalf("unscheduled rows must not carry scheduled_start")
			}
			stored = in.Item
			return &dynamodb.PutItemOutput{}, nil
		},
		getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			if in.Key["id"].(*types.AttributeValueMemberS).Value == "missing" {
				return &dynamodb.GetItemOutput{}, nil
			}
			return &dynamodb.GetItemOutput{Item: stored}, nil
		},
	}
	repo := NewWorkOrderDynamoRepository(fake, "")

	if _, err := repo.Create(context.Background(), wo); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(context.Background(), "wo-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "wo-1" || got.Priority != entities.WorkOrderPriorityHigh || got.IsScheduled() {
		t.Fatalf("unexpected work order %+v", got)
	}
	if got.EstimatedHours == nil || *got.EstimatedHours != 2 || got.MechanicHours != nil {
		t.Fatalf("unexpected durations %+v", got)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("unexpected created_at %v", got.CreatedAt)
	}

	missing, err := repo.GetByID(context.Background(), "missing")
	if err != nil || missing.ID != "" {
		t.Fatalf("expected zero work order, got %+v %v", missing, err)
	}
}

func TestWorkOrderDynamoRepository_ListScheduledBetween(t *testing.T) {
	from := time.Date(2024, 3, 10, 13, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)
	late := toWorkOrderItem(entities.WorkOrder{ID: "late", ScheduledStart: tp(from.Add(30 * time.Hour))})
	early := toWorkOrderItem(entities.WorkOrder{ID: "early", ScheduledStart: tp(from.Add(2 * time.Hour))})

	calls := 0
	fake := &fakeDynamo{
		scan: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
			calls++
			if v := in.ExpressionAttributeValues[":from"].(*types.AttributeValueMemberS).Value; v != formatTime(from) {
				t.Fatalf("unexpected lower bound %s", v)
			}
			if v := in.ExpressionAttributeValues[":to"].(*types.AttributeValueMemberS).Value; v != formatTime(to) {
				t.Fatalf("unexpected upper bound %s", v)
			}
			if in.ExclusiveStartKey == nil {
				return &dynamodb.ScanOutput{
					Items:            []map[string]types.AttributeValue{mustMarshal(t, late)},
					LastEvaluatedKey: keyOf("late"),
				}, nil
			}
			return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{mustMarshal(t, early)}}, nil
		},
	}

	got, err := NewWorkOrderDynamoRepository(fake, "wo").ListScheduledBetween(context.Background(), from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected both pages to be read, got %d calls", calls)
	}
	if len(got) != 2 || got[0].ID != "early" || got[1].ID != "late" {
		t.Fatalf("expected start order, got %+v", got)
	}
}

func TestWorkOrderDynamoRepository_ListUnscheduled(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	fake := &fakeDynamo{
		scan: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
			if !strings.Contains(aws.ToString(in.FilterExpression), "attribute_not_exists(#ss)") {
				t.Fatalf("unexpected filter %s", aws.ToString(in.FilterExpression))
			}
			if len(in.ExpressionAttributeValues) != 3 {
				t.Fatalf("expected the three open statuses, got %d values", len(in.ExpressionAttributeValues))
			}
			return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{
				mustMarshal(t, toWorkOrderItem(entities.WorkOrder{ID: "b", CreatedAt: base.Add(time.Hour)})),
				mustMarshal(t, toWorkOrderItem(entities.WorkOrder{ID: "a", CreatedAt: base})),
			}}, nil
		},
	}

	got, err := NewWorkOrderDynamoRepository(fake, "").ListUnscheduled(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" {
		t.Fatalf("expected creation order, got %+v", got)
	}
}

func TestWorkOrderDynamoRepository_UpdateSchedule(t *testing.T) {
	start := time.Date(2024, 3, 12, 22, 0, 0, 0, time.UTC)
	end := start.Add(150 * time.Minute)

	cases := []struct {
		name       string
		upd        entities.ScheduleUpdate
		wantExpr   string
		wantValues []string
	}{
		{
			name:       "with end",
			upd:        entities.ScheduleUpdate{MechanicID: "M1", Start: start, End: &end, MechanicHours: f64(2.5)},
			wantExpr:   "SET #mechanic = :mechanic, #ss = :start, #updated_at = :updated_at, #hours = :hours, #se = :end",
			wantValues: []string{":mechanic", ":start", ":updated_at", ":hours", ":end"},
		},
		{
			name:       "without end",
			upd:        entities.ScheduleUpdate{MechanicID: "M1", Start: start},
			wantExpr:   "SET #mechanic = :mechanic, #ss = :start, #updated_at = :updated_at REMOVE #se",
			wantValues: []string{":mechanic", ":start", ":updated_at"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			fake := &fakeDynamo{
				updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
					calls++
					if aws.ToString(in.UpdateExpression) != tc.wantExpr {
						t.Fatalf("unexpected expression %q", aws.ToString(in.UpdateExpression))
					}
					if len(in.ExpressionAttributeValues) != len(tc.wantValues) {
						t.Fatalf("unexpected values %v", in.ExpressionAttributeValues)
					}
					for _, k := range tc.wantValues {
						if _, ok := in.ExpressionAttributeValues[k]; !ok {
							t.Fatalf("missing value %s", k)
						}
					}
					row := toWorkOrderItem(entities.WorkOrder{
						ID:                 "wo-1",
						AssignedMechanicID: tc.upd.MechanicID,
						ScheduledStart:     &tc.upd.Start,
						ScheduledEnd:       tc.upd.End,
						MechanicHours:      tc.upd.MechanicHours,
					})
					return &dynamodb.UpdateItemOutput{Attributes: mustMarshal(t, row)}, nil
				},
			}

			got, err := NewWorkOrderDynamoRepository(fake, "").UpdateSchedule(context.Background(), "wo-1", tc.upd)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if calls != 1 {
				t.Fatalf("expected exactly one update, got %d", calls)
			}
			if got.AssignedMechanicID != "M1" || !got.ScheduledStart.Equal(start) {
				t.Fatalf("unexpected work order %+v", got)
			}
			if (tc.upd.End == nil) != (got.ScheduledEnd == nil) {
				t.Fatalf("unexpected end %v", got.ScheduledEnd)
			}
		})
	}
}

func TestWorkOrderDynamoRepository_UpdateMissingOrFailing(t *testing.T) {
	t.Run("condition failed reads as not found", func(t *testing.T) {
		fake := &fakeDynamo{
			updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				return nil, &types.ConditionalCheckFailedException{Message: aws.String("missing")}
			},
		}
		got, err := NewWorkOrderDynamoRepository(fake, "").UpdateStatus(context.Background(), "wo-9", entities.WorkOrderStatusCompleted)
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero work order, got %+v %v", got, err)
		}
	})

	t.Run("transport error surfaces", func(t *testing.T) {
		fake := &fakeDynamo{
			updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
				return nil, &types.ProvisionedThroughputExceededException{Message: aws.String("slow down")}
			},
		}
		_, err := NewWorkOrderDynamoRepository(fake, "").UpdateSchedule(context.Background(), "wo-1", entities.ScheduleUpdate{MechanicID: "M1", Start: time.Now()})
		var pte *types.ProvisionedThroughputExceededException
		if !errors.As(err, &pte) {
			t.Fatalf("expected throughput error, got %v", err)
		}
	})
}

func TestMechanicDynamoRepository_ListActive(t *testing.T) {
	fake := &fakeDynamo{
		scan: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
			if _, ok := in.ExpressionAttributeValues[":true"].(*types.AttributeValueMemberBOOL); !ok {
				t.Fatalf("expected boolean filter")
			}
			return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{
				mustMarshal(t, mechanicItem{ID: "M2", Name: "Zed", DailyHoursGoal: f64(6), Active: true}),
				mustMarshal(t, mechanicItem{ID: "M1", Name: "Ana", Active: true}),
			}}, nil
		},
	}

	got, err := NewMechanicDynamoRepository(fake, "").ListActive(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Name != "Ana" || got[1].Name != "Zed" {
		t.Fatalf("expected name order, got %+v", got)
	}
	if got[0].DailyHoursGoal != entities.DefaultDailyHoursGoal || got[1].DailyHoursGoal != 6 {
		t.Fatalf("unexpected goals %+v", got)
	}
}

func TestMechanicDynamoRepository_CreateKeepsZeroGoal(t *testing.T) {
	fake := &fakeDynamo{
		putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			goal, ok := in.Item["daily_hours_goal"].(*types.AttributeValueMemberN)
			if !ok || goal.Value != "0" {
				t.Fatalf("expected explicit zero goal, got %#v", in.Item["daily_hours_goal"])
			}
			return &dynamodb.PutItemOutput{}, nil
		},
	}
	if _, err := NewMechanicDynamoRepository(fake, "").Create(context.Background(), entities.Mechanic{ID: "M3", Name: "Apprentice"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCustomerDynamoRepository_GetByIDs(t *testing.T) {
	ids := make([]string, 0, 150)
	for i := 0; i < 150; i++ {
		ids = append(ids, fmt.Sprintf("c%03d", i))
	}

	var batchSizes []int
	retried := false
	fake := &fakeDynamo{
		batchGetItem: func(in *dynamodb.BatchGetItemInput) (*dynamodb.BatchGetItemOutput, error) {
			keys := in.RequestItems["customers"].Keys
			batchSizes = append(batchSizes, len(keys))

			out := &dynamodb.BatchGetItemOutput{Responses: map[string][]map[string]types.AttributeValue{}}
			for i, k := range keys {
				id := k["id"].(*types.AttributeValueMemberS).Value
				if id == "c149" {
					// unknown customer
					continue
				}
				if id == "c000" && !retried {
					retried = true
					out.UnprocessedKeys = map[string]types.KeysAndAttributes{"customers": {Keys: keys[i : i+1]}}
					continue
				}
				out.Responses["customers"] = append(out.Responses["customers"], mustMarshal(t, customerItem{ID: id, IsPriority: id == "c000"}))
			}
			return out, nil
		},
	}

	got, err := NewCustomerDynamoRepository(fake, "").GetByIDs(context.Background(), ids)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batchSizes) != 3 || batchSizes[0] != 100 || batchSizes[1] != 1 || batchSizes[2] != 50 {
		t.Fatalf("unexpected batches %v", batchSizes)
	}
	if len(got) != 149 || !got["c000"].IsPriority {
		t.Fatalf("unexpected customers: %d entries", len(got))
	}
	if _, ok := got["c149"]; ok {
		t.Fatalf("unknown ids must be skipped")
	}
}

func TestInvoiceDynamoRepository_RoundTrip(t *testing.T) {
	created := time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC)
	paidAt := created.Add(48 * time.Hour)
	inv := entities.Invoice{
		ID:          "wo-1",
		WorkOrderID: "wo-1",
		Subtotal:    100,
		GST:         10,
		Total:       110,
		Status:      entities.InvoiceStatusOpen,
		Installments: []entities.Installment{
			{Number: 1, DueDate: created, Amount: 55, Status: entities.InstallmentStatusPending},
			{Number: 2, DueDate: created.AddDate(0, 1, 0), Amount: 55, Status: entities.InstallmentStatusPending},
		},
		CreatedAt: created,
		UpdatedAt: created,
	}

	var stored map[string]types.AttributeValue
	fake := &fakeDynamo{
		putItem: func(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
			stored = in.Item
			return &dynamodb.PutItemOutput{}, nil
		},
		updateItem: func(in *dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			var it invoiceItem
			if err := attributevalue.UnmarshalMap(stored, &it); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if err := attributevalue.Unmarshal(in.ExpressionAttributeValues[":installments"], &it.Installments); err != nil {
				t.Fatalf("unmarshal plan: %v", err)
			}
			it.Status = in.ExpressionAttributeValues[":status"].(*types.AttributeValueMemberS).Value
			return &dynamodb.UpdateItemOutput{Attributes: mustMarshal(t, it)}, nil
		},
	}
	repo := NewInvoiceDynamoRepository(fake, "")

	if _, err := repo.Create(context.Background(), inv); err != nil {
		t.Fatalf("create: %v", err)
	}

	plan := append([]entities.Installment(nil), inv.Installments...)
	plan[0].Status = entities.InstallmentStatusPaid
	plan[0].PaidAt = &paidAt
	plan[0].PaymentID = "pay-1"

	got, err := repo.UpdateInstallments(context.Background(), "wo-1", plan, entities.InvoiceStatusPartiallyPaid)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Status != entities.InvoiceStatusPartiallyPaid || got.Total != 110 || got.GST != 10 {
		t.Fatalf("unexpected invoice %+v", got)
	}
	first := got.Installments[0]
	if first.PaymentID != "pay-1" || first.PaidAt == nil || !first.PaidAt.Equal(paidAt) || first.Amount != 55 {
		t.Fatalf("unexpected installment %+v", first)
	}
	if got.Installments[1].PaidAt != nil || !got.Installments[1].DueDate.Equal(created.AddDate(0, 1, 0)) {
		t.Fatalf("unexpected second installment %+v", got.Installments[1])
	}
}

func TestInvoiceDynamoRepository_ListCreatedBetween(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	fake := &fakeDynamo{
		scan: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
			if aws.ToString(in.FilterExpression) != "#created_at >= :from AND #created_at < :to" {
				t.Fatalf("unexpected filter %s", aws.ToString(in.FilterExpression))
			}
			return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{
				mustMarshal(t, toInvoiceItem(entities.Invoice{ID: "b", CreatedAt: from.AddDate(0, 2, 0)})),
				mustMarshal(t, toInvoiceItem(entities.Invoice{ID: "a", CreatedAt: from})),
			}}, nil
		},
	}

	got, err := NewInvoiceDynamoRepository(fake, "").ListCreatedBetween(context.Background(), from, to)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" {
		t.Fatalf("unexpected invoices %+v", got)
	}
}

func TestInvoicePaymentDynamoRepository_ListByInvoiceID(t *testing.T) {
	day := time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC)
	fake := &fakeDynamo{
		query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
			if aws.ToString(in.IndexName) != "invoice_id-index" {
				t.Fatalf("unexpected index %s", aws.ToString(in.IndexName))
			}
			return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{
				mustMarshal(t, toInvoicePaymentItem(entities.InvoicePayment{ID: "p2", InvoiceID: "wo-1", InstallmentNumber: 2, Amount: 55, Date: day.Add(time.Hour)})),
				mustMarshal(t, toInvoicePaymentItem(entities.InvoicePayment{
					ID:                 "p1",
					InvoiceID:          "wo-1",
					InstallmentNumber:  1,
					Amount:             55,
					Date:               day,
					Status:             entities.PaymentStatusApproved,
					ProviderPayloadRaw: []byte(`{"status":"approved"}`),
					ProviderPayload:    map[string]interface{}{"status": "approved"},
				})),
			}}, nil
		},
	}

	got, err := NewInvoicePaymentDynamoRepository(fake, "", "").ListByInvoiceID(context.Background(), "wo-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != "p1" || got[1].ID != "p2" {
		t.Fatalf("expected date order, got %+v", got)
	}
	if string(got[0].ProviderPayloadRaw) != `{"status":"approved"}` || got[0].ProviderPayload["status"] != "approved" {
		t.Fatalf("payload not kept: %+v", got[0])
	}
	if got[1].ProviderPayloadRaw != nil {
		t.Fatalf("expected empty raw payload")
	}
}

func TestInvoicePaymentDynamoRepository_GetByID(t *testing.T) {
	fake := &fakeDynamo{
		getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
			return &dynamodb.GetItemOutput{}, nil
		},
	}
	got, err := NewInvoicePaymentDynamoRepository(fake, "", "").GetByID(context.Background(), "nope")
	if err != nil || got.ID != "" {
		t.Fatalf("expected zero payment, got %+v %v", got, err)
	}
}
