package app

import (
	"testing"

	"go.uber.org/fx"
)

func TestModule_Graph(t *testing.T) {
	if err := fx.ValidateApp(Module); err != nil {
		t.Fatalf("dependency graph is invalid: %v", err)
	}
}
