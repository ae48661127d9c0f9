package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestCompileErrorMessage(t *testing.T) {
	err := Errorf(ReferenceNotFound, "no declaration found for %q", "User").
		WithName("User").
		WithFile("/schemas/a.graphql").
		WithLocation(3, 7)

	expected := `blossom: no declaration found for "User" (/schemas/a.graphql) (line 3, column 7)`
	if got := err.Error(); got != expected {
		t.Errorf("got %q, want %q", got, expected)
	}
}

func TestCompileErrorNil(t *testing.T) {
	var err *CompileError
	if got := err.Error(); got != "<nil>" {
		t.Errorf("got %q, want %q", got, "<nil>")
	}
}

func TestIsKind(t *testing.T) {
	err := Errorf(ImportRead, "cannot read %q", "b.graphql")
	if !IsKind(err, ImportRead) {
		t.Error("expected IsKind to match the error's own kind")
	}
	if IsKind(err, SchemaCollision) {
		t.Error("expected IsKind to reject a different kind")
	}

	wrapped := fmt.Errorf("loading: %w", err)
	if !IsKind(wrapped, ImportRead) {
		t.Error("expected IsKind to see through wrapping")
	}
}

func TestLinkingErrorAggregation(t *testing.T) {
	inner1 := Errorf(ReferenceNotFound, "no declaration found for %q", "B")
	inner2 := Errorf(InvalidReference, "%q cannot be referenced from this position", "Filter")
	err := &LinkingError{
		File: "/schemas/a.graphql",
		Defects: []Defect{
			{Index: 0, Declaration: "A", Err: inner1},
			{Index: 2, Declaration: "C", Err: inner2},
		},
	}

	if !IsKind(err, ReferenceNotFound) || !IsKind(err, InvalidReference) {
		t.Error("expected the aggregate to expose every underlying kind")
	}

	var ce *CompileError
	if !stderrors.As(err, &ce) {
		t.Fatal("expected errors.As to reach an underlying CompileError")
	}

	msg := err.Error()
	for _, want := range []string{"2 unresolved reference(s)", "[0] A:", "[2] C:"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q is missing %q", msg, want)
		}
	}
}
