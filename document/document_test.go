package document

import (
	"context"
	"errors"
	"testing"
)

func TestMetadataKeysSorted(t *testing.T) {
	doc := Document{
		Content:  "Person",
		Metadata: map[string]string{"uri": "http://example.org/Person", "entity_type": "class", "label": "Person"},
	}

	keys := doc.MetadataKeys()
	want := []string{"entity_type", "label", "uri"}
	if len(keys) != len(want) {
		t.Fatalf("expected %d keys, got %d", len(want), len(keys))
	}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("key %d: expected %s, got %s", i, k, keys[i])
		}
	}
}

func TestLazilyYieldsAllDocuments(t *testing.T) {
	docs := []Document{
		{Content: "a"},
		{Content: "b"},
		{Content: "c"},
	}
	seq := Lazily(context.Background(), func(context.Context) ([]Document, error) {
		return docs, nil
	})

	var got []string
	for doc, err := range seq {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, doc.Content)
	}
	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Errorf("unexpected yield order: %v", got)
	}
}

func TestLazilyRestartable(t *testing.T) {
	calls := 0
	seq := Lazily(context.Background(), func(context.Context) ([]Document, error) {
		calls++
		return []Document{{Content: "a"}}, nil
	})

	for range seq {
	}
	for range seq {
	}
	if calls != 2 {
		t.Errorf("expected each range to re-run the fetch, got %d calls", calls)
	}
}

func TestLazilyStopsEarly(t *testing.T) {
	seq := Lazily(context.Background(), func(context.Context) ([]Document, error) {
		return []Document{{Content: "a"}, {Content: "b"}}, nil
	})

	count := 0
	for range seq {
		count++
		break
	}
	if count != 1 {
		t.Errorf("expected a single yield after break, got %d", count)
	}
}

func TestLazilyPropagatesError(t *testing.T) {
	wantErr := errors.New("fetch failed")
	seq := Lazily(context.Background(), func(context.Context) ([]Document, error) {
		return nil, wantErr
	})

	yields := 0
	for _, err := range seq {
		yields++
		if !errors.Is(err, wantErr) {
			t.Errorf("expected wrapped fetch error, got %v", err)
		}
	}
	if yields != 1 {
		t.Errorf("expected exactly one error yield, got %d", yields)
	}
}
