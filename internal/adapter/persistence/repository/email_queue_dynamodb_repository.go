package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"rental_quotes/internal/domain/entities"
	"rental_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultEmailQueueTableName = "email_queue"
	EmailQueueDueIndex         = "status-next_attempt_at-index"
)

type emailItem struct {
	ID            string `dynamodbav:"id"`
	To            string `dynamodbav:"to"`
	Subject       string `dynamodbav:"subject"`
	HTML          string `dynamodbav:"html"`
	ReplyTo       string `dynamodbav:"reply_to,omitempty"`
	Status        string `dynamodbav:"status"`
	Attempts      int    `dynamodbav:"attempts"`
	MaxAttempts   int    `dynamodbav:"max_attempts"`
	ErrorMessage  string `dynamodbav:"error_message,omitempty"`
	SentAt        string `dynamodbav:"sent_at,omitempty"`
	NextAttemptAt string `dynamodbav:"next_attempt_at"`
	PayloadType   string `dynamodbav:"payload_type,omitempty"`
	PayloadData   string `dynamodbav:"payload_data,omitempty"`
	CreatedAt     string `dynamodbav:"created_at"`
	UpdatedAt     string `dynamodbav:"updated_at"`
}

// EmailQueueDynamoRepository persists the email outbox in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI status-next_attempt_at-index: status (HASH), next_attempt_at (RANGE)

type EmailQueueDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IEmailQueueRepository = (*EmailQueueDynamoRepository)(nil)

func NewEmailQueueDynamoRepository(ddb DynamoDBAPI, tableName string) *EmailQueueDynamoRepository {
	if tableName == "" {
		tableName = DefaultEmailQueueTableName
	}
	return &EmailQueueDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *EmailQueueDynamoRepository) Enqueue(ctx context.Context, m entities.EmailMessage) (entities.EmailMessage, error) {
	av, err := attributevalue.MarshalMap(toEmailItem(m))
	if err != nil {
		return entities.EmailMessage{}, err
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
		return entities.EmailMessage{}, err
	}
	return m, nil
}

// ListDue returns pending messages whose next attempt is due, earliest first.
func (r *EmailQueueDynamoRepository) ListDue(ctx context.Context, now time.Time, limit int) ([]entities.EmailMessage, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(EmailQueueDueIndex),
		KeyConditionExpression: aws.String("#status = :pending AND #next <= :now"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
			"#next":   "next_attempt_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": stringAttr(string(entities.EmailStatusPending)),
			":now":     stringAttr(formatTime(now)),
		},
		ScanIndexForward: aws.Bool(true),
		Limit:            aws.Int32(int32(limit)),
	})
	if err != nil {
		return nil, err
	}

	var its []emailItem
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &its); err != nil {
		return nil, err
	}
	msgs := make([]entities.EmailMessage, 0, len(its))
	for _, it := range its {
		msgs = append(msgs, fromEmailItem(it))
	}
	return msgs, nil
}

// Claim leases a due message to the caller. The condition matches the
// next_attempt_at value read by ListDue, so only one drainer wins.
func (r *EmailQueueDynamoRepository) Claim(ctx context.Context, id string, listedNext, leaseUntil time.Time) (bool, error) {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(id),
		ConditionExpression: aws.String("#status = :pending AND #next = :listed"),
		UpdateExpression:    aws.String("SET #next = :lease, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#status":     "status",
			"#next":       "next_attempt_at",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending":    stringAttr(string(entities.EmailStatusPending)),
			":listed":     stringAttr(formatTime(listedNext)),
			":lease":      stringAttr(formatTime(leaseUntil)),
			":updated_at": stringAttr(formatTime(r.now())),
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *EmailQueueDynamoRepository) MarkSent(ctx context.Context, id string, sentAt time.Time) error {
	return r.update(ctx, id, "SET #status = :status, #sent_at = :sent_at, #updated_at = :updated_at REMOVE #error_message",
		map[string]types.AttributeValue{
			":status":  stringAttr(string(entities.EmailStatusSent)),
			":sent_at": stringAttr(formatTime(sentAt)),
		},
		map[string]string{
			"#status":        "status",
			"#sent_at":       "sent_at",
			"#error_message": "error_message",
		},
	)
}

func (r *EmailQueueDynamoRepository) ScheduleRetry(ctx context.Context, id string, attempts int, nextAttemptAt time.Time, errMsg string) error {
	return r.update(ctx, id, "SET #attempts = :attempts, #next = :next, #error_message = :error_message, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":attempts":      numberAttr(attempts),
			":next":          stringAttr(formatTime(nextAttemptAt)),
			":error_message": stringAttr(errMsg),
		},
		map[string]string{
			"#attempts":      "attempts",
			"#next":          "next_attempt_at",
			"#error_message": "error_message",
		},
	)
}

func (r *EmailQueueDynamoRepository) MarkFailed(ctx context.Context, id string, attempts int, errMsg string) error {
	return r.update(ctx, id, "SET #status = :status, #attempts = :attempts, #error_message = :error_message, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":status":        stringAttr(string(entities.EmailStatusFailed)),
			":attempts":      numberAttr(attempts),
			":error_message": stringAttr(errMsg),
		},
		map[string]string{
			"#status":        "status",
			"#attempts":      "attempts",
			"#error_message": "error_message",
		},
	)
}

func (r *EmailQueueDynamoRepository) CountByStatus(ctx context.Context, status entities.EmailStatus) (int, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(EmailQueueDueIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": stringAttr(string(status)),
		},
		Select: types.SelectCount,
	})

	total := 0
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return 0, err
		}
		total += int(page.Count)
	}
	return total, nil
}

func (r *EmailQueueDynamoRepository) update(ctx context.Context, id, expr string, values map[string]types.AttributeValue, names map[string]string) error {
	values[":updated_at"] = stringAttr(formatTime(r.now()))
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id", "#updated_at": "updated_at"}),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return fmt.Errorf("email %s not found", id)
		}
		return err
	}
	return nil
}

func toEmailItem(m entities.EmailMessage) emailItem {
	return emailItem{
		ID:            m.ID,
		To:            m.To,
		Subject:       m.Subject,
		HTML:          m.HTML,
		ReplyTo:       m.ReplyTo,
		Status:        string(m.Status),
		Attempts:      m.Attempts,
		MaxAttempts:   m.MaxAttempts,
		ErrorMessage:  m.ErrorMessage,
		SentAt:        formatTimePtr(m.SentAt),
		NextAttemptAt: formatTime(m.NextAttemptAt),
		PayloadType:   string(m.PayloadType),
		PayloadData:   string(m.PayloadData),
		CreatedAt:     formatTime(m.CreatedAt),
		UpdatedAt:     formatTime(m.UpdatedAt),
	}
}

func fromEmailItem(it emailItem) entities.EmailMessage {
	m := entities.EmailMessage{
		ID:            it.ID,
		To:            it.To,
		Subject:       it.Subject,
		HTML:          it.HTML,
		ReplyTo:       it.ReplyTo,
		Status:        entities.EmailStatus(it.Status),
		Attempts:      it.Attempts,
		MaxAttempts:   it.MaxAttempts,
		ErrorMessage:  it.ErrorMessage,
		SentAt:        parseTimePtr(it.SentAt),
		NextAttemptAt: parseTime(it.NextAttemptAt),
		PayloadType:   entities.EmailPayloadType(it.PayloadType),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
	if it.PayloadData != "" && json.Valid([]byte(it.PayloadData)) {
		m.PayloadData = json.RawMessage(it.PayloadData)
	}
	return m
}
