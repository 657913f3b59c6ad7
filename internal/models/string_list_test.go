package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

type tagDoc struct {
	Tags StringList `bson:"tags"`
}

func roundTrip(t *testing.T, in bson.M) tagDoc {
	t.Helper()
	data, err := bson.Marshal(in)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var doc tagDoc
	if err := bson.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	return doc
}

func TestStringListDecodesArray(t *testing.T) {
	doc := roundTrip(t, bson.M{"tags": []string{"neem", "skin care"}})
	if len(doc.Tags) != 2 || doc.Tags[0] != "neem" {
		t.Fatalf("expected tags preserved, got %v", doc.Tags)
	}
}

func TestStringListDecodesLegacyString(t *testing.T) {
	doc := roundTrip(t, bson.M{"tags": "  neem  "})
	if len(doc.Tags) != 1 || doc.Tags[0] != "neem" {
		t.Fatalf("expected single trimmed tag, got %v", doc.Tags)
	}
}

func TestStringListDecodesNull(t *testing.T) {
	doc := roundTrip(t, bson.M{"tags": nil})
	if doc.Tags != nil {
		t.Fatalf("expected nil tags, got %v", doc.Tags)
	}
}

func TestStringListMarshalsAsArray(t *testing.T) {
	data, err := bson.Marshal(tagDoc{Tags: StringList{"digestion"}})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var raw bson.M
	if err := bson.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	values, ok := raw["tags"].(bson.A)
	if !ok {
		t.Fatalf("expected tags stored as array, got %T", raw["tags"])
	}
	if len(values) != 1 || values[0] != "digestion" {
		t.Fatalf("unexpected stored tags: %v", values)
	}
}
