package errors

import (
	"strings"
	"testing"
)

func TestNoHeaderErrorAs(t *testing.T) {
	err := NewNoHeaderError("data/plain.csv")

	var noHeader *NoHeaderError
	if !As(err, &noHeader) {
		t.Fatalf("As() failed to unwrap NoHeaderError from %v", err)
	}
	if noHeader.Path != "data/plain.csv" {
		t.Errorf("Path = %q, want %q", noHeader.Path, "data/plain.csv")
	}
	if !strings.Contains(err.Error(), "no header") {
		t.Errorf("Error() = %q, want it to mention the missing header", err.Error())
	}
}

func TestDimensionErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		axis int
		want string
	}{
		{name: "row axis", axis: 0, want: "rows"},
		{name: "column axis", axis: 1, want: "columns"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDimensionError("reduction.PCA", 20, 30, tt.axis)
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Error() = %q, want axis name %q", err.Error(), tt.want)
			}
		})
	}
}

func TestPipelineErrorUnwrap(t *testing.T) {
	cause := New("disk gone")
	err := NewPipelineError("load", cause)

	if !Is(err, cause) {
		t.Errorf("Is() did not find the wrapped cause in %v", err)
	}

	var pipeline *PipelineError
	if !As(err, &pipeline) {
		t.Fatalf("As() failed to unwrap PipelineError from %v", err)
	}
	if pipeline.Stage != "load" {
		t.Errorf("Stage = %q, want %q", pipeline.Stage, "load")
	}
}

func TestRecoverConvertsPanic(t *testing.T) {
	run := func() (err error) {
		defer Recover(&err, "test.operation")
		panic("boom")
	}

	err := run()
	if err == nil {
		t.Fatal("expected an error from recovered panic, got nil")
	}

	var panicErr *PanicError
	if !As(err, &panicErr) {
		t.Fatalf("As() failed to unwrap PanicError from %v", err)
	}
	if panicErr.Operation != "test.operation" {
		t.Errorf("Operation = %q, want %q", panicErr.Operation, "test.operation")
	}
	if panicErr.StackTrace == "" {
		t.Error("StackTrace is empty, want captured stack")
	}
}

func TestSafeExecute(t *testing.T) {
	if err := SafeExecute("noop", func() error { return nil }); err != nil {
		t.Errorf("SafeExecute() = %v, want nil", err)
	}

	err := SafeExecute("panicking", func() error { panic("unstable routine") })
	if err == nil {
		t.Fatal("SafeExecute() = nil, want error from panic")
	}
}
