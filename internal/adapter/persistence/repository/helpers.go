package repository

import (
	"context"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatTime(*t)
}

func parseTimePtr(s string) *time.Time {
	if s == "" {
		return nil
	}
	t := parseTime(s)
	return &t
}

func strPtrValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func strPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

// scanFilter accumulates equality conditions into a DynamoDB filter
// expression. Empty values are skipped so zero-value filters scan the
// whole table.
type scanFilter struct {
	exprs  []string
	names  map[string]string
	values map[string]types.AttributeValue
}

func newScanFilter() *scanFilter {
	return &scanFilter{
		names:  map[string]string{},
		values: map[string]types.AttributeValue{},
	}
}

func (f *scanFilter) eq(attr, value string) *scanFilter {
	if value == "" {
		return f
	}
	name := "#" + attr
	placeholder := ":" + attr
	f.exprs = append(f.exprs, name+" = "+placeholder)
	f.names[name] = attr
	f.values[placeholder] = &types.AttributeValueMemberS{Value: value}
	return f
}

func (f *scanFilter) apply(in *dynamodb.ScanInput) {
	if len(f.exprs) == 0 {
		return
	}
	in.FilterExpression = aws.String(strings.Join(f.exprs, " AND "))
	in.ExpressionAttributeNames = f.names
	in.ExpressionAttributeValues = f.values
}

// scanAll runs a Scan to completion, following LastEvaluatedKey, and
// hands every raw item to collect.
func scanAll(ctx context.Context, ddb *dynamodb.Client, in *dynamodb.ScanInput, collect func(map[string]types.AttributeValue) error) error {
	for {
		out, err := ddb.Scan(ctx, in)
		if err != nil {
			return err
		}
		for _, raw := range out.Items {
			if err := collect(raw); err != nil {
				return err
			}
		}
		if len(out.LastEvaluatedKey) == 0 {
			return nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}
