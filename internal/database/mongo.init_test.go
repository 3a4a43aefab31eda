package database

import (
	"reflect"
	"testing"
)

func TestParseOrder(t *testing.T) {
	if got := parseOrder("single;order:-1"); got != -1 {
		t.Errorf("parseOrder(\"single;order:-1\") = %d, muốn -1", got)
	}
	if got := parseOrder("single"); got != 1 {
		t.Errorf("parseOrder(\"single\") = %d, muốn 1", got)
	}
	if got := parseOrder(""); got != 1 {
		t.Errorf("parseOrder(\"\") = %d, muốn 1", got)
	}
}

func TestParseIndexTag_Single(t *testing.T) {
	got := parseIndexTag("single:1")
	want := []map[string]string{{"single": "1"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseIndexTag(\"single:1\") = %v, muốn %v", got, want)
	}
}

func TestParseIndexTag_UniqueSparse(t *testing.T) {
	got := parseIndexTag("unique,sparse")
	want := []map[string]string{{"unique": "", "sparse": ""}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseIndexTag(\"unique,sparse\") = %v, muốn %v", got, want)
	}
}

func TestParseIndexTag_Compound(t *testing.T) {
	got := parseIndexTag("compound:user_created")
	want := []map[string]string{{"compound": "user_created"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseIndexTag(\"compound:user_created\") = %v, muốn %v", got, want)
	}
}

func TestParseIndexTag_MultipleParts(t *testing.T) {
	got := parseIndexTag("single;compound:buyer_created")
	want := []map[string]string{
		{"single": ""},
		{"compound": "buyer_created"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseIndexTag(\"single;compound:buyer_created\") = %v, muốn %v", got, want)
	}
}
