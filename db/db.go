package db

import (
	"os"
	"strconv"

	"github.com/jsphweid/salamidex/model"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

const tableName = "salamidex-metadata"

// Provider is the DynamoDB-backed chart metadata store. It satisfies
// track.MetadataProvider.
type Provider struct {
	client *dynamodb.DynamoDB
}

func NewProvider() *Provider {
	endpoint := os.Getenv("METADATA_DB_ENDPOINT")
	if endpoint == "" {
		endpoint = "http://localhost:8000"
	}
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		panic("Could not create a new DynamoDB session because " + err.Error())
	}
	return &Provider{client: dynamodb.New(session)}
}

func parseNum(v *dynamodb.AttributeValue) *int {
	if v == nil || v.N == nil {
		return nil
	}
	num, err := strconv.Atoi(*v.N)
	if err != nil {
		return nil
	}
	return &num
}

func parseStr(v *dynamodb.AttributeValue) *string {
	if v == nil || v.S == nil {
		return nil
	}
	return v.S
}

// TrackMetadatas fetches chart records for up to 10 track ids. Ids
// without a row are simply absent from the result.
func (p *Provider) TrackMetadatas(trackIds []string) map[string]model.TrackMetadata {
	if len(trackIds) > 10 {
		panic("Not supposed to pass in more than 10 track ids!")
	}

	res := make(map[string]model.TrackMetadata)

	if len(trackIds) == 0 {
		return res
	}

	var keys []map[string]*dynamodb.AttributeValue
	for _, trackId := range trackIds {
		key := make(map[string]*dynamodb.AttributeValue)
		key["PK"] = &dynamodb.AttributeValue{
			S: aws.String(trackId),
		}
		keys = append(keys, key)
	}

	input := &dynamodb.BatchGetItemInput{
		RequestItems: map[string]*dynamodb.KeysAndAttributes{
			tableName: {Keys: keys},
		},
	}
	dbres, err := p.client.BatchGetItem(input)
	if err != nil {
		panic("Error from DynamoDB: " + err.Error())
	}

	for _, v := range dbres.Responses[tableName] {
		var m model.TrackMetadata
		m.ChartDate = parseStr(v["ChartDate"])
		m.TargetRank = parseNum(v["TargetRank"])
		m.ActualRank = parseNum(v["ActualRank"])
		m.Title = parseStr(v["Title"])
		m.Artist = parseStr(v["Artist"])
		m.PeakRank = parseNum(v["PeakRank"])
		m.WeeksOnChart = parseNum(v["WeeksOnChart"])
		res[*v["PK"].S] = m
	}

	return res
}
