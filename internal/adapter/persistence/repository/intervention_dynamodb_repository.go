package repository

import (
	"context"
	"errors"
	"strconv"

	"depannel_dispatch/internal/domain/entities"
	"depannel_dispatch/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultInterventionsTableName = "interventions"

type interventionItem struct {
	ID              string   `dynamodbav:"id"`
	Reference       string   `dynamodbav:"reference,omitempty"`
	Title           string   `dynamodbav:"title,omitempty"`
	Description     string   `dynamodbav:"description,omitempty"`
	Address         string   `dynamodbav:"address,omitempty"`
	ClientName      string   `dynamodbav:"client_name,omitempty"`
	ClientPhone     string   `dynamodbav:"client_phone,omitempty"`
	Latitude        *float64 `dynamodbav:"latitude,omitempty"`
	Longitude       *float64 `dynamodbav:"longitude,omitempty"`
	ProblemTypeID   string   `dynamodbav:"problem_type_id,omitempty"`
	Status          string   `dynamodbav:"status"`
	SubStatus       string   `dynamodbav:"sub_status,omitempty"`
	Priority        string   `dynamodbav:"priority"`
	AssignedAgentID string   `dynamodbav:"assigned_agent_id,omitempty"`
	RefusalReason   string   `dynamodbav:"refusal_reason,omitempty"`
	CreatedAt       string   `dynamodbav:"created_at"`
	UpdatedAt       string   `dynamodbav:"updated_at"`
	Version         int64    `dynamodbav:"version"`
}

// InterventionDynamoRepository persists the confirmed intervention view in
// DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// version holds UpdatedAt in unix nanoseconds. A Put carrying an older
// version than the stored item is dropped, so a slow writer cannot roll a
// record back. Records without UpdatedAt are written unconditionally.
type InterventionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IInterventionViewRepository = (*InterventionDynamoRepository)(nil)

func NewInterventionDynamoRepository(ddb *dynamodb.Client, tableName string) *InterventionDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("INTERVENTIONS_TABLE", defaultInterventionsTableName)
	}
	return &InterventionDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *InterventionDynamoRepository) Put(ctx context.Context, iv entities.Intervention) error {
	it := toInterventionItem(iv)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}

	in := &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	}
	if it.Version > 0 {
		in.ConditionExpression = aws.String("attribute_not_exists(#id) OR #version <= :version")
		in.ExpressionAttributeNames = map[string]string{
			"#id":      "id",
			"#version": "version",
		}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":version": &types.AttributeValueMemberN{Value: strconv.FormatInt(it.Version, 10)},
		}
	}

	_, err = r.ddb.PutItem(ctx, in)
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// a newer record is already stored
			return nil
		}
		return err
	}
	return nil
}

func (r *InterventionDynamoRepository) Get(ctx context.Context, id string) (entities.Intervention, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Intervention{}, err
	}
	if len(out.Item) == 0 {
		return entities.Intervention{}, nil
	}

	var it interventionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Intervention{}, err
	}
	return fromInterventionItem(it), nil
}

func (r *InterventionDynamoRepository) List(ctx context.Context) ([]entities.Intervention, error) {
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:      aws.String(r.tableName),
		ConsistentRead: aws.Bool(true),
	})

	var out []entities.Intervention
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []interventionItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromInterventionItem(it))
		}
	}
	sortByCreatedAt(out)
	return out, nil
}

func toInterventionItem(iv entities.Intervention) interventionItem {
	return interventionItem{
		ID:              iv.ID,
		Reference:       iv.Reference,
		Title:           iv.Title,
		Description:     iv.Description,
		Address:         iv.Address,
		ClientName:      iv.ClientName,
		ClientPhone:     iv.ClientPhone,
		Latitude:        iv.Latitude,
		Longitude:       iv.Longitude,
		ProblemTypeID:   iv.ProblemTypeID,
		Status:          string(iv.Status),
		SubStatus:       string(iv.SubStatus),
		Priority:        string(iv.Priority),
		AssignedAgentID: iv.AssignedAgentID,
		RefusalReason:   iv.RefusalReason,
		CreatedAt:       formatTime(iv.CreatedAt),
		UpdatedAt:       formatTime(iv.UpdatedAt),
		Version:         versionOf(iv),
	}
}

func fromInterventionItem(it interventionItem) entities.Intervention {
	return entities.Intervention{
		ID:              it.ID,
		Reference:       it.Reference,
		Title:           it.Title,
		Description:     it.Description,
		Address:         it.Address,
		ClientName:      it.ClientName,
		ClientPhone:     it.ClientPhone,
		Latitude:        it.Latitude,
		Longitude:       it.Longitude,
		ProblemTypeID:   it.ProblemTypeID,
		Status:          entities.InterventionStatus(it.Status),
		SubStatus:       entities.SubStatus(it.SubStatus),
		Priority:        entities.Priority(it.Priority),
		AssignedAgentID: it.AssignedAgentID,
		RefusalReason:   it.RefusalReason,
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
}

func versionOf(iv entities.Intervention) int64 {
	if iv.UpdatedAt.IsZero() {
		return 0
	}
	return iv.UpdatedAt.UnixNano()
}
