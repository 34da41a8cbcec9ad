package jsonpatch

import (
	"testing"

	json "github.com/goccy/go-json"
)

func parse(t *testing.T, s string) interface{} {
	t.Helper()
	var v interface{}
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return v
}

func TestDiffIdentical(t *testing.T) {
	a := parse(t, `{"x": 1, "y": [1, 2]}`)
	b := parse(t, `{"x": 1, "y": [1, 2]}`)
	if ops := Diff(a, b, ""); len(ops) != 0 {
		t.Fatalf("expected no ops, got %d", len(ops))
	}
}

func TestDiffReplace(t *testing.T) {
	a := parse(t, `{"x": 1}`)
	b := parse(t, `{"x": 2}`)
	ops := Diff(a, b, "")
	if len(ops) != 1 {
		t.Fatalf("expected 1 op, got %d", len(ops))
	}
	if ops[0]["op"] != "replace" || ops[0]["path"] != "/x" {
		t.Fatalf("unexpected op %v", ops[0])
	}
}

func TestDiffAddAndRemove(t *testing.T) {
	a := parse(t, `{"gone": 1, "kept": 2}`)
	b := parse(t, `{"kept": 2, "added": 3}`)
	ops := Diff(a, b, "")
	if len(ops) != 2 {
		t.Fatalf("expected 2 ops, got %d", len(ops))
	}

	byOp := map[string]string{}
	for _, op := range ops {
		byOp[op["op"].(string)] = op["path"].(string)
	}
	if byOp["remove"] != "/gone" {
		t.Fatalf("expected remove /gone, got %v", byOp)
	}
	if byOp["add"] != "/added" {
		t.Fatalf("expected add /added, got %v", byOp)
	}
}

func TestDiffNestedArrays(t *testing.T) {
	a := parse(t, `{"items": [{"id": "a"}, {"id": "b"}]}`)
	b := parse(t, `{"items": [{"id": "a"}, {"id": "c"}, {"id": "d"}]}`)
	ops := Diff(a, b, "")
	if len(ops) != 2 {
		t.Fatalf("expected 2 ops, got %d", len(ops))
	}
	if ops[0]["path"] != "/items/1/id" || ops[0]["op"] != "replace" {
		t.Fatalf("unexpected first op %v", ops[0])
	}
	if ops[1]["path"] != "/items/2" || ops[1]["op"] != "add" {
		t.Fatalf("unexpected second op %v", ops[1])
	}
}

func TestDiffArrayShrink(t *testing.T) {
	a := parse(t, `[1, 2, 3]`)
	b := parse(t, `[1]`)
	ops := Diff(a, b, "")
	if len(ops) != 2 {
		t.Fatalf("expected 2 ops, got %d", len(ops))
	}
	// Removals come highest index first so earlier paths stay valid.
	if ops[0]["path"] != "/2" || ops[1]["path"] != "/1" {
		t.Fatalf("unexpected removal order: %v", ops)
	}
}

func TestDiffEscapesPointerTokens(t *testing.T) {
	a := parse(t, `{"a/b": 1, "c~d": 2}`)
	b := parse(t, `{"a/b": 9, "c~d": 2}`)
	ops := Diff(a, b, "")
	if len(ops) != 1 {
		t.Fatalf("expected 1 op, got %d", len(ops))
	}
	if ops[0]["path"] != "/a~1b" {
		t.Fatalf("expected escaped pointer /a~1b, got %v", ops[0]["path"])
	}
}
