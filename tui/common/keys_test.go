package common

import "testing"

func TestDefaultKeyMap_HasCriticalBindings(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.Quit.Keys()) == 0 || km.Quit.Keys()[0] != "ctrl+c" {
		t.Fatalf("expected ctrl+c quit binding")
	}
	if len(km.Submit.Keys()) == 0 || km.Submit.Keys()[0] != "ctrl+s" {
		t.Fatalf("expected ctrl+s submit binding")
	}
}

func TestHelpLine(t *testing.T) {
	km := DefaultKeyMap()
	if got := HelpLine(km.Submit, km.Quit); got != "ctrl+s: post • ctrl+c: quit" {
		t.Fatalf("unexpected help line: %q", got)
	}
	if got := HelpLine(); got != "" {
		t.Fatalf("expected empty help line, got %q", got)
	}
}
