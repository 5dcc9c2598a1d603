package canvas2d

import (
	"log/slog"
	"testing"
)

func TestNewContext_WithFlattenToleranceIsApplied(t *testing.T) {
	c, err := NewContext(10, 10, WithFlattenTolerance(2.5))
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	if c.tolerance != 2.5 {
		t.Errorf("tolerance = %v, want 2.5", c.tolerance)
	}
}

func TestNewContext_DefaultToleranceFallsBackToGeomDefault(t *testing.T) {
	c, err := NewContext(10, 10)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	if c.tolerance != 0 {
		t.Errorf("tolerance = %v, want 0 (Flatten substitutes geom.DefaultTolerance)", c.tolerance)
	}
}

func TestNewContext_WithLoggerOverridesPackageDefault(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(nil, nil))
	c, err := NewContext(10, 10, WithLogger(custom))
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	if c.logger != custom {
		t.Error("WithLogger's logger was not installed on the Context")
	}
}

func TestNewContext_MultipleOptionsCombine(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(nil, nil))
	c, err := NewContext(10, 10, WithFlattenTolerance(1), WithLogger(custom))
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	if c.tolerance != 1 || c.logger != custom {
		t.Error("combined options were not both applied")
	}
}
