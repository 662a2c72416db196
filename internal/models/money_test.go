package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyRounding(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"100", "100"},
		{"99.4", "99"},
		{"99.5", "100"},
		{"849.15", "849"},
		{"0", "0"},
	}
	for _, c := range cases {
		d, err := decimal.NewFromString(c.in)
		if err != nil {
			t.Fatalf("parse %s: %v", c.in, err)
		}
		if got := NewMoneyFromDecimal(d).String(); got != c.want {
			t.Fatalf("round %s: expected %s, got %s", c.in, c.want, got)
		}
	}
}

func TestMoneyJSON(t *testing.T) {
	raw, err := json.Marshal(NewMoneyFromInt(4500))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `"4500"` {
		t.Fatalf("expected \"4500\", got %s", raw)
	}

	var fromString Money
	if err := json.Unmarshal([]byte(`"1250.6"`), &fromString); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if fromString.String() != "1251" {
		t.Fatalf("expected 1251, got %s", fromString.String())
	}

	var fromNumber Money
	if err := json.Unmarshal([]byte(`99.4`), &fromNumber); err != nil {
		t.Fatalf("unmarshal number: %v", err)
	}
	if fromNumber.String() != "99" {
		t.Fatalf("expected 99, got %s", fromNumber.String())
	}
}
