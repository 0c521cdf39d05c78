package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo keeps items per table keyed by the given key attributes. It only
// understands the equality filters the services build.
type fakeDynamo struct {
	mu     sync.Mutex
	keys   map[string][]string
	tables map[string][]map[string]types.AttributeValue
	putErr error
	puts   int
}

func newFakeDynamo(keys map[string][]string) *fakeDynamo {
	return &fakeDynamo{keys: keys, tables: map[string][]map[string]types.AttributeValue{}}
}

func attrString(item map[string]types.AttributeValue, name string) string {
	if v, ok := item[name].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func (f *fakeDynamo) sameKey(table string, a, b map[string]types.AttributeValue) bool {
	for _, k := range f.keys[table] {
		if attrString(a, k) != attrString(b, k) {
			return false
		}
	}
	return true
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts++
	if f.putErr != nil {
		return nil, f.putErr
	}
	table := *in.TableName
	for i, item := range f.tables[table] {
		if f.sameKey(table, item, in.Item) {
			f.tables[table][i] = in.Item
			return &dynamodb.PutItemOutput{}, nil
		}
	}
	f.tables[table] = append(f.tables[table], in.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, item := range f.tables[*in.TableName] {
		if f.sameKey(*in.TableName, item, in.Key) {
			return &dynamodb.GetItemOutput{Item: item}, nil
		}
	}
	return &dynamodb.GetItemOutput{}, nil
}

// Query supports "attr = :placeholder"
func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	parts := strings.Split(*in.KeyConditionExpression, " = ")
	if len(parts) != 2 {
		return nil, errors.New("unsupported key condition")
	}
	want := attrString(in.ExpressionAttributeValues, parts[1])
	var out []map[string]types.AttributeValue
	for _, item := range f.tables[*in.TableName] {
		if attrString(item, parts[0]) == want {
			out = append(out, item)
		}
	}
	return &dynamodb.QueryOutput{Items: out}, nil
}

// Scan supports "#a = :a AND #b = :b"
func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []map[string]types.AttributeValue
	for _, item := range f.tables[*in.TableName] {
		if in.FilterExpression == nil || f.matches(item, in) {
			out = append(out, item)
		}
	}
	return &dynamodb.ScanOutput{Items: out}, nil
}

func (f *fakeDynamo) matches(item map[string]types.AttributeValue, in *dynamodb.ScanInput) bool {
	for _, clause := range strings.Split(*in.FilterExpression, " AND ") {
		parts := strings.Split(clause, " = ")
		name := in.ExpressionAttributeNames[parts[0]]
		if attrString(item, name) != attrString(in.ExpressionAttributeValues, parts[1]) {
			return false
		}
	}
	return true
}

func (f *fakeDynamo) items(table string) []map[string]types.AttributeValue {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]types.AttributeValue(nil), f.tables[table]...)
}
