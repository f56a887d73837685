package backend

import (
	"reflect"
	"testing"
)

func TestParseWindowList(t *testing.T) {
	raw := `[{"id":20971523,"wm_class":"term","title":"Terminal"},{"id":23068674,"wm_class":"gimp"}]`
	ids, err := parseWindowList(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(ids, []string{"20971523", "23068674"}) {
		t.Errorf("unexpected ids: %v", ids)
	}
}

func TestParseWindowList_Empty(t *testing.T) {
	ids, err := parseWindowList("[]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected no ids, got %v", ids)
	}
}

func TestParseWindowList_Malformed(t *testing.T) {
	if _, err := parseWindowList("not json"); err == nil {
		t.Error("expected parse error")
	}
}
