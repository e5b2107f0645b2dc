package repository

import (
	"context"
	"encoding/json"
	"os"
	"strconv"
	"time"

	"antidoshirak/internal/domain/entities"
	"antidoshirak/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSettingsTableName = "settings"
	defaultSettingsNamespace = "anti_doshirak_settings"
)

type settingsItem struct {
	Namespace             string `dynamodbav:"namespace"`
	HourlyRate            string `dynamodbav:"hourly_rate"`
	PackagePriceCurrency  string `dynamodbav:"package_price"`
	PackageTokenCount     string `dynamodbav:"package_tokens"`
	TargetMonthlyIncome   string `dynamodbav:"target_monthly_income"`
	BillableHoursPerMonth string `dynamodbav:"billable_hours_per_month"`
	CreatorName           string `dynamodbav:"creator_name,omitempty"`
	CreatorTelegram       string `dynamodbav:"creator_telegram,omitempty"`
	CreatorAvatarURL      string `dynamodbav:"creator_avatar_url,omitempty"`
	ClientName            string `dynamodbav:"client_name,omitempty"`
	CustomTools           string `dynamodbav:"custom_tools,omitempty"` // JSON array
	UpdatedAt             string `dynamodbav:"updated_at"`
}

// SettingsDynamoRepository persists the creator settings in DynamoDB.
//
// Table requirements:
//   - PK: namespace (string)
//
// One fixed namespace key per installation keeps the store a plain KV,
// matching the original single-user local-storage model.

type SettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	namespace string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SETTINGS_TABLE", defaultSettingsTableName),
		namespace: getenvDefault("SETTINGS_NAMESPACE", defaultSettingsNamespace),
	}
}

func (r *SettingsDynamoRepository) Load(ctx context.Context) (entities.Settings, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"namespace": &types.AttributeValueMemberS{Value: r.namespace},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Settings{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.Settings{}, false, nil
	}

	var it settingsItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Settings{}, false, err
	}
	return fromSettingsItem(it), true, nil
}

func (r *SettingsDynamoRepository) Save(ctx context.Context, s entities.Settings) error {
	av, err := attributevalue.MarshalMap(toSettingsItem(s, r.namespace))
	if err != nil {
		return err
	}

	// Settings are a single upsertable row; last write wins.
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toSettingsItem(s entities.Settings, namespace string) settingsItem {
	it := settingsItem{
		Namespace:             namespace,
		HourlyRate:            floatToString(s.HourlyRate),
		PackagePriceCurrency:  floatToString(s.PackagePriceCurrency),
		PackageTokenCount:     floatToString(s.PackageTokenCount),
		TargetMonthlyIncome:   floatToString(s.TargetMonthlyIncome),
		BillableHoursPerMonth: floatToString(s.BillableHoursPerMonth),
		CreatorName:           s.CreatorName,
		CreatorTelegram:       s.CreatorTelegram,
		CreatorAvatarURL:      s.CreatorAvatarURL,
		ClientName:            s.ClientName,
		UpdatedAt:             time.Now().UTC().Format(time.RFC3339Nano),
	}
	if len(s.CustomTools) > 0 {
		if raw, err := json.Marshal(s.CustomTools); err == nil {
			it.CustomTools = string(raw)
		}
	}
	return it
}

func fromSettingsItem(it settingsItem) entities.Settings {
	hourlyRate, _ := strconv.ParseFloat(it.HourlyRate, 64)
	packagePrice, _ := strconv.ParseFloat(it.PackagePriceCurrency, 64)
	packageTokens, _ := strconv.ParseFloat(it.PackageTokenCount, 64)
	targetIncome, _ := strconv.ParseFloat(it.TargetMonthlyIncome, 64)
	billableHours, _ := strconv.ParseFloat(it.BillableHoursPerMonth, 64)

	s := entities.Settings{
		HourlyRate:            hourlyRate,
		PackagePriceCurrency:  packagePrice,
		PackageTokenCount:     packageTokens,
		TargetMonthlyIncome:   targetIncome,
		BillableHoursPerMonth: billableHours,
		CreatorName:           it.CreatorName,
		CreatorTelegram:       it.CreatorTelegram,
		CreatorAvatarURL:      it.CreatorAvatarURL,
		ClientName:            it.ClientName,
	}
	if it.CustomTools != "" {
		// Corrupted custom tools degrade to none rather than failing the load.
		_ = json.Unmarshal([]byte(it.CustomTools), &s.CustomTools)
	}
	return s
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
