package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"telematics_roi/internal/domain/entities"
	"telematics_roi/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultEstimatesTableName = "roi_estimates"

// estimateItem is the stored shape of a saved estimate. Inputs are kept as
// a JSON document so schema additions do not need a table migration; the
// summary attributes are written for listing and ad-hoc queries only.
type estimateItem struct {
	ID                 string `dynamodbav:"id"`
	Name               string `dynamodbav:"name,omitempty"`
	Scenario           string `dynamodbav:"scenario"`
	Mode               string `dynamodbav:"mode"`
	Currency           string `dynamodbav:"currency"`
	Inputs             string `dynamodbav:"inputs"`
	TotalAnnualSavings string `dynamodbav:"total_annual_savings"`
	ROIPct             string `dynamodbav:"roi_pct"`
	PaybackMonth       int    `dynamodbav:"payback_month"`
	PaybackAchieved    bool   `dynamodbav:"payback_achieved"`
	CreatedAt          string `dynamodbav:"created_at"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type EstimateDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb *dynamodb.Client, tableName string) *EstimateDynamoRepository {
	if tableName == "" {
		tableName = DefaultEstimatesTableName
	}
	return &EstimateDynamoRepository{
		ddb:       ddb,
		tableName: tableName,
	}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it, err := toEstimateItem(e)
	if err != nil {
		return entities.Estimate{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            estimateKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return decodeEstimate(out.Item)
}

func (r *EstimateDynamoRepository) DeleteByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          estimateKey(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	return decodeEstimate(out.Attributes)
}

func estimateKey(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"id": &types.AttributeValueMemberS{Value: id},
	}
}

func decodeEstimate(av map[string]types.AttributeValue) (entities.Estimate, error) {
	if len(av) == 0 {
		return entities.Estimate{}, nil
	}
	var it estimateItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it)
}

func toEstimateItem(e entities.Estimate) (estimateItem, error) {
	inputs, err := json.Marshal(e.Inputs)
	if err != nil {
		return estimateItem{}, err
	}
	return estimateItem{
		ID:                 e.ID,
		Name:               e.Name,
		Scenario:           string(e.Scenario),
		Mode:               string(e.Mode),
		Currency:           string(e.Inputs.Currency),
		Inputs:             string(inputs),
		TotalAnnualSavings: floatToString(e.Results.TotalAnnualSavings),
		ROIPct:             floatToString(e.Results.ROIPct),
		PaybackMonth:       e.Results.Payback.Month,
		PaybackAchieved:    e.Results.Payback.Achieved,
		CreatedAt:          e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromEstimateItem(it estimateItem) (entities.Estimate, error) {
	var in entities.Inputs
	if err := json.Unmarshal([]byte(it.Inputs), &in); err != nil {
		return entities.Estimate{}, fmt.Errorf("decode inputs of estimate %s: %w", it.ID, err)
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Estimate{
		ID:        it.ID,
		Name:      it.Name,
		Scenario:  entities.Scenario(it.Scenario),
		Mode:      entities.CalculationMode(it.Mode),
		Inputs:    in,
		CreatedAt: createdAt,
	}, nil
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
