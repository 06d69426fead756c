package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"quiz-cli/internal/domain"
)

func TestAppendCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranking.json")
	log, _ := logtest.NewNullLogger()
	store := NewRankingStore(path, log)

	ana := domain.SessionResult{PlayerName: "Ana", Correct: 1, Total: 1, Percentage: 100}
	if err := store.Append(context.Background(), ana); err != nil {
		t.Fatalf("append: %v", err)
	}

	var raw []map[string]any
	data, _ := os.ReadFile(path)
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("ranking file is not valid json: %v", err)
	}
	if len(raw) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(raw))
	}
	entry := raw[0]
	if entry["nombre"] != "Ana" || entry["aciertos"] != 1.0 || entry["total"] != 1.0 || entry["porcentaje"] != 100.0 {
		t.Fatalf("unexpected entry %+v", entry)
	}
	if !strings.Contains(string(data), `"porcentaje": 100.0`) {
		t.Fatalf("expected a decimal percentage, got:\n%s", data)
	}
	if !strings.Contains(string(data), "\n    {") {
		t.Fatalf("expected 4-space indentation, got:\n%s", data)
	}
}

func TestAppendGrowsHistoryByOne(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranking.json")
	log, _ := logtest.NewNullLogger()
	store := NewRankingStore(path, log)
	ctx := context.Background()

	for i, name := range []string{"Ana", "Luis", "Marta"} {
		if err := store.Append(ctx, domain.SessionResult{PlayerName: name, Correct: 0, Total: 2, Percentage: 0}); err != nil {
			t.Fatalf("append %s: %v", name, err)
		}
		results, err := store.List(ctx)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(results) != i+1 || results[i].PlayerName != name {
			t.Fatalf("expected %d entries ending with %s, got %+v", i+1, name, results)
		}
	}
}

func TestCorruptRankingIsTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ranking.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	log, hook := logtest.NewNullLogger()
	store := NewRankingStore(path, log)
	ctx := context.Background()

	results, err := store.List(ctx)
	if err != nil || len(results) != 0 {
		t.Fatalf("expected empty ranking, got %+v, %v", results, err)
	}
	if hook.LastEntry() == nil || hook.LastEntry().Level != logrus.WarnLevel {
		t.Fatalf("expected a warning about the corrupt file")
	}

	if err := store.Append(ctx, domain.SessionResult{PlayerName: "Ana", Correct: 1, Total: 1, Percentage: 100}); err != nil {
		t.Fatalf("append: %v", err)
	}
	results, _ = store.List(ctx)
	if len(results) != 1 || results[0].PlayerName != "Ana" {
		t.Fatalf("expected corrupt history replaced by the new entry, got %+v", results)
	}
}

func TestRankingKeepsNonASCIILiteral(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ranking.json")
	log, _ := logtest.NewNullLogger()
	store := NewRankingStore(path, log)

	if err := store.Append(context.Background(), domain.SessionResult{PlayerName: "José <Ñ>", Correct: 2, Total: 3, Percentage: 66.67}); err != nil {
		t.Fatalf("append: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), `"nombre": "José <Ñ>"`) {
		t.Fatalf("expected literal non-ASCII name, got:\n%s", data)
	}
	if !strings.Contains(string(data), `"porcentaje": 66.67`) {
		t.Fatalf("expected rounded percentage, got:\n%s", data)
	}
}
