package dataflow

import (
	"testing"

	"github.com/fatih/color"
)

func init() { color.NoColor = true }

func TestDomainAssign(t *testing.T) {
	d := Empty().Assign("x", "p1").Assign("y", "p2")

	if got := d.DefinitionsOf("x"); len(got) != 1 || got[0].At != "p1" {
		t.Errorf("expected a single definition of x at p1, got %v", got)
	}

	// A second assignment kills the previous definition.
	d = d.Assign("x", "p3")
	if got := d.DefinitionsOf("x"); len(got) != 1 || got[0].At != "p3" {
		t.Errorf("expected the definition at p3 to survive alone, got %v", got)
	}
	if got := d.DefinitionsOf("y"); len(got) != 1 {
		t.Errorf("unrelated definitions must survive, got %v", got)
	}
}

func TestDomainJoin(t *testing.T) {
	then := Empty().Assign("x", "then")
	els := Empty().Assign("x", "else")

	joined := then.Join(els)
	if got := joined.DefinitionsOf("x"); len(got) != 2 {
		t.Errorf("expected both branch definitions to reach, got %v", got)
	}
	if !then.Leq(joined) || !els.Leq(joined) {
		t.Error("join must be an upper bound")
	}
	if !joined.Widen(then).Eq(joined) {
		t.Error("widening a smaller domain must be the identity")
	}
}

func TestDomainForget(t *testing.T) {
	d := Empty().Assign("x", "p1").Assign("y", "p2").Forget("x")
	if len(d.DefinitionsOf("x")) != 0 {
		t.Error("expected x to be forgotten")
	}
	if len(d.DefinitionsOf("y")) != 1 {
		t.Error("expected y to survive")
	}
}

func TestDomainOrder(t *testing.T) {
	bot := Empty()
	d := Empty().Assign("x", "p1")

	if !bot.Leq(d) || d.Leq(bot) {
		t.Error("the empty domain is strictly below a populated one")
	}
	if !d.Eq(Empty().Assign("x", "p1")) {
		t.Error("equal fact sets must be equal")
	}
}
