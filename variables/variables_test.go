package variables_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/smartcalc"
	"github.com/npillmayer/smartcalc/variables"
)

func TestStoreSetLookup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smartcalc.vars")
	defer teardown()
	//
	vars := variables.NewStore()
	if _, err := vars.Lookup("a"); !errors.Is(err, smartcalc.ErrUnknownVariable) {
		t.Errorf("expected unknown variable, have %v", err)
	}
	vars.Set("a", smartcalc.Int(4))
	n, err := vars.Lookup("a")
	if err != nil {
		t.Fatal(err)
	}
	if !n.Equals(smartcalc.Int(4)) {
		t.Errorf("expected a = 4, is %s", n)
	}
	vars.Set("a", smartcalc.Int(5))
	if n, _ = vars.Lookup("a"); !n.Equals(smartcalc.Int(5)) {
		t.Errorf("expected last assignment to win, a = %s", n)
	}
	if vars.Len() != 1 {
		t.Errorf("expected 1 variable, have %d", vars.Len())
	}
}

func TestStoreIsCaseSensitive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smartcalc.vars")
	defer teardown()
	//
	vars := variables.NewStore()
	vars.Set("a", smartcalc.Int(1))
	vars.Set("A", smartcalc.Int(2))
	if vars.IsSet("b") || !vars.IsSet("A") {
		t.Errorf("IsSet reports wrong variables: %v", vars)
	}
	n, _ := vars.Lookup("A")
	if !n.Equals(smartcalc.Int(2)) {
		t.Errorf("expected A = 2, is %s", n)
	}
}

func TestStoreEachIsSorted(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "smartcalc.vars")
	defer teardown()
	//
	vars := variables.NewStore()
	for i, tag := range []string{"zeta", "b", "alpha", "B"} {
		vars.Set(tag, smartcalc.Int(int64(i)))
	}
	var tags []string
	vars.Each(func(tag string, n smartcalc.Number) {
		tags = append(tags, tag+"="+n.String())
	})
	if s := strings.Join(tags, " "); s != "B=3 alpha=2 b=1 zeta=0" {
		t.Errorf("unexpected iteration order: %s", s)
	}
	if s := strings.Join(vars.Tags(), ","); s != "B,alpha,b,zeta" {
		t.Errorf("unexpected tags: %s", s)
	}
}
