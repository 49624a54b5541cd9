package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"rental_quotes/internal/domain/entities"
	"rental_quotes/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultQuotesTableName = "quotes"
	QuoteStatusIndex       = "status-created_at-index"
	QuoteClientEmailIndex  = "client_email-index"
	QuoteCreatedIndex      = "kind-created_at-index"

	quoteKind = "quote"
)

type quoteItem struct {
	ID                 string `dynamodbav:"id"`
	Kind               string `dynamodbav:"kind"`
	ConfirmationNumber string `dynamodbav:"confirmation_number"`
	AccessToken        string `dynamodbav:"access_token"`
	UserID             string `dynamodbav:"user_id,omitempty"`
	Language           string `dynamodbav:"language"`
	ClientName         string `dynamodbav:"client_name"`
	ClientEmail        string `dynamodbav:"client_email"`
	ClientPhone        string `dynamodbav:"client_phone,omitempty"`
	ClientCompany      string `dynamodbav:"client_company,omitempty"`
	Items              string `dynamodbav:"items"`
	RentalStartDate    string `dynamodbav:"rental_start_date"`
	RentalEndDate      string `dynamodbav:"rental_end_date"`
	ProjectDescription string `dynamodbav:"project_description,omitempty"`
	SpecialRequests    string `dynamodbav:"special_requests,omitempty"`
	Location           string `dynamodbav:"location,omitempty"`
	Status             string `dynamodbav:"status"`
	IsLocked           bool   `dynamodbav:"is_locked"`
	EstimatedPrice     string `dynamodbav:"estimated_price,omitempty"`
	PDFFileName        string `dynamodbav:"pdf_file_name,omitempty"`
	DocumentKey        string `dynamodbav:"document_key,omitempty"`
	QuotedAt           string `dynamodbav:"quoted_at,omitempty"`
	InternalNotes      string `dynamodbav:"internal_notes,omitempty"`
	SignatureKey       string `dynamodbav:"signature_key,omitempty"`
	SignedAt           string `dynamodbav:"signed_at,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
	UpdatedAt          string `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI status-created_at-index: status (HASH), created_at (RANGE)
//   - GSI client_email-index: client_email (HASH)
//   - GSI kind-created_at-index: kind (HASH, always "quote"), created_at (RANGE)
//
// Every write is a single-item operation; concurrent admin and client writes
// resolve as last write wins.

type QuoteDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
	now       func() time.Time
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb DynamoDBAPI, tableName string) *QuoteDynamoRepository {
	if tableName == "" {
		tableName = DefaultQuotesTableName
	}
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

// Update applies the non-nil fields of u and bumps updated_at. A missing
// record yields a zero Quote.
func (r *QuoteDynamoRepository) Update(ctx context.Context, id string, u entities.QuoteUpdate) (entities.Quote, error) {
	expr, values, names := buildQuoteUpdate(u, formatTime(r.now()))

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func buildQuoteUpdate(u entities.QuoteUpdate, now string) (string, map[string]types.AttributeValue, map[string]string) {
	sets := []string{"#updated_at = :updated_at"}
	values := map[string]types.AttributeValue{":updated_at": stringAttr(now)}
	names := map[string]string{"#updated_at": "updated_at"}

	set := func(attr string, v types.AttributeValue) {
		sets = append(sets, "#"+attr+" = :"+attr)
		names["#"+attr] = attr
		values[":"+attr] = v
	}

	if u.Status != nil {
		set("status", stringAttr(string(*u.Status)))
	}
	if u.IsLocked != nil {
		set("is_locked", &types.AttributeValueMemberBOOL{Value: *u.IsLocked})
	}
	if u.EstimatedPrice != nil {
		set("estimated_price", stringAttr(floatToString(*u.EstimatedPrice)))
	}
	if u.PDFFileName != nil {
		set("pdf_file_name", stringAttr(*u.PDFFileName))
	}
	if u.DocumentKey != nil {
		set("document_key", stringAttr(*u.DocumentKey))
	}
	if u.QuotedAt != nil {
		set("quoted_at", stringAttr(formatTime(*u.QuotedAt)))
	}
	if u.InternalNotes != nil {
		set("internal_notes", stringAttr(*u.InternalNotes))
	}
	if u.SignatureKey != nil {
		set("signature_key", stringAttr(*u.SignatureKey))
	}
	if u.SignedAt != nil {
		set("signed_at", stringAttr(formatTime(*u.SignedAt)))
	}
	return "SET " + strings.Join(sets, ", "), values, names
}

// List pages through quotes newest first. A status filter queries the status
// index; otherwise the single-partition kind index orders the whole table.
func (r *QuoteDynamoRepository) List(ctx context.Context, f entities.QuoteFilter) (entities.QuotePage, error) {
	startKey, err := decodeCursor(f.Cursor)
	if err != nil {
		return entities.QuotePage{}, err
	}
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(QuoteCreatedIndex),
		KeyConditionExpression: aws.String("#kind = :kind"),
		ExpressionAttributeNames: map[string]string{
			"#kind": "kind",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":kind": stringAttr(quoteKind),
		},
		ScanIndexForward:  aws.Bool(false),
		ExclusiveStartKey: startKey,
	}
	if f.Status != nil {
		in.IndexName = aws.String(QuoteStatusIndex)
		in.KeyConditionExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{":status": stringAttr(string(*f.Status))}
	}
	if f.Limit > 0 {
		in.Limit = aws.Int32(int32(f.Limit))
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return entities.QuotePage{}, err
	}
	quotes, err := unmarshalQuotes(out.Items)
	if err != nil {
		return entities.QuotePage{}, err
	}
	next, err := encodeCursor(out.LastEvaluatedKey)
	if err != nil {
		return entities.QuotePage{}, err
	}
	return entities.QuotePage{Items: quotes, NextCursor: next}, nil
}

func (r *QuoteDynamoRepository) ListByClientEmail(ctx context.Context, email string) ([]entities.Quote, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(QuoteClientEmailIndex),
		KeyConditionExpression: aws.String("#email = :email"),
		ExpressionAttributeNames: map[string]string{
			"#email": "client_email",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": stringAttr(email),
		},
	})

	var out []entities.Quote
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		quotes, err := unmarshalQuotes(page.Items)
		if err != nil {
			return nil, err
		}
		out = append(out, quotes...)
	}
	sortNewestFirst(out)
	return out, nil
}

func unmarshalQuotes(items []map[string]types.AttributeValue) ([]entities.Quote, error) {
	var its []quoteItem
	if err := attributevalue.UnmarshalListOfMaps(items, &its); err != nil {
		return nil, err
	}
	out := make([]entities.Quote, 0, len(its))
	for _, it := range its {
		out = append(out, fromQuoteItem(it))
	}
	return out, nil
}

func sortNewestFirst(qs []entities.Quote) {
	sort.SliceStable(qs, func(i, j int) bool { return qs[i].CreatedAt.After(qs[j].CreatedAt) })
}

func toQuoteItem(q entities.Quote) quoteItem {
	it := quoteItem{
		ID:                 q.ID,
		Kind:               quoteKind,
		ConfirmationNumber: q.ConfirmationNumber,
		AccessToken:        q.AccessToken,
		UserID:             q.UserID,
		Language:           q.Language,
		ClientName:         q.ClientName,
		ClientEmail:        q.ClientEmail,
		ClientPhone:        q.ClientPhone,
		ClientCompany:      q.ClientCompany,
		Items:              q.ItemsJSON,
		RentalStartDate:    q.RentalStartDate,
		RentalEndDate:      q.RentalEndDate,
		ProjectDescription: q.ProjectDescription,
		SpecialRequests:    q.SpecialRequests,
		Location:           q.Location,
		Status:             string(q.Status),
		IsLocked:           q.IsLocked,
		PDFFileName:        q.PDFFileName,
		DocumentKey:        q.DocumentKey,
		QuotedAt:           formatTimePtr(q.QuotedAt),
		InternalNotes:      q.InternalNotes,
		SignatureKey:       q.SignatureKey,
		SignedAt:           formatTimePtr(q.SignedAt),
		CreatedAt:          formatTime(q.CreatedAt),
		UpdatedAt:          formatTime(q.UpdatedAt),
	}
	if q.EstimatedPrice != nil {
		it.EstimatedPrice = floatToString(*q.EstimatedPrice)
	}
	return it
}

func fromQuoteItem(it quoteItem) entities.Quote {
	q := entities.Quote{
		ID:                 it.ID,
		ConfirmationNumber: it.ConfirmationNumber,
		AccessToken:        it.AccessToken,
		UserID:             it.UserID,
		Language:           it.Language,
		ClientName:         it.ClientName,
		ClientEmail:        it.ClientEmail,
		ClientPhone:        it.ClientPhone,
		ClientCompany:      it.ClientCompany,
		ItemsJSON:          it.Items,
		RentalStartDate:    it.RentalStartDate,
		RentalEndDate:      it.RentalEndDate,
		ProjectDescription: it.ProjectDescription,
		SpecialRequests:    it.SpecialRequests,
		Location:           it.Location,
		Status:             entities.QuoteStatus(it.Status),
		IsLocked:           it.IsLocked,
		PDFFileName:        it.PDFFileName,
		DocumentKey:        it.DocumentKey,
		QuotedAt:           parseTimePtr(it.QuotedAt),
		InternalNotes:      it.InternalNotes,
		SignatureKey:       it.SignatureKey,
		SignedAt:           parseTimePtr(it.SignedAt),
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
	if it.EstimatedPrice != "" {
		if price, err := strconv.ParseFloat(it.EstimatedPrice, 64); err == nil {
			q.EstimatedPrice = &price
		}
	}
	return q
}
