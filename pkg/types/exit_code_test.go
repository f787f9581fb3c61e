// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestExitCodeValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		code    ExitCode
		wantErr bool
	}{
		{name: "success", code: 0, wantErr: false},
		{name: "generic failure", code: 1, wantErr: false},
		{name: "upper bound", code: 255, wantErr: false},
		{name: "negative", code: -1, wantErr: true},
		{name: "above range", code: 256, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.code.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Validate(%d) = nil, want error", tt.code)
				}
				if !errors.Is(err, ErrInvalidExitCode) {
					t.Errorf("Validate(%d) error does not wrap ErrInvalidExitCode", tt.code)
				}
				var invalidErr *InvalidExitCodeError
				if !errors.As(err, &invalidErr) {
					t.Errorf("Validate(%d) error is not *InvalidExitCodeError", tt.code)
				}
			} else if err != nil {
				t.Fatalf("Validate(%d) = %v, want nil", tt.code, err)
			}
		})
	}
}

func TestExitCodeIsSuccess(t *testing.T) {
	t.Parallel()

	if !ExitCode(0).IsSuccess() {
		t.Error("ExitCode(0).IsSuccess() = false, want true")
	}
	if ExitCode(1).IsSuccess() {
		t.Error("ExitCode(1).IsSuccess() = true, want false")
	}
}

func TestExitCodeString(t *testing.T) {
	t.Parallel()

	if got := ExitCode(127).String(); got != "127" {
		t.Errorf("ExitCode(127).String() = %q, want %q", got, "127")
	}
}
