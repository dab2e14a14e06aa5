package onlyargs

import (
	"errors"
	"testing"
)

func TestParseIntValue(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		bits    int
		want    int64
		wantErr bool
	}{
		{name: "simple", token: "42", bits: 32, want: 42},
		{name: "negative", token: "-7", bits: 32, want: -7},
		{name: "platform sized", token: "123456", bits: 0, want: 123456},
		{name: "malformed", token: "4x2", bits: 32, wantErr: true},
		{name: "empty", token: "", bits: 32, wantErr: true},
		{name: "overflow is not clamped", token: "2147483648", bits: 32, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseIntValue[int64]("--num", tt.token, tt.bits)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseIntValue(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseIntValue(%q) = %d, want %d", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseUintValue(t *testing.T) {
	if _, err := ParseUintValue[uint16]("--port", "-1", 16); err == nil {
		t.Error("negative input should fail for unsigned fields")
	}
	if _, err := ParseUintValue[uint16]("--port", "65536", 16); err == nil {
		t.Error("overflow should fail, not wrap")
	}
	got, err := ParseUintValue[uint16]("--port", "8080", 16)
	if err != nil {
		t.Fatalf("ParseUintValue: %v", err)
	}
	if got != 8080 {
		t.Errorf("ParseUintValue = %d, want 8080", got)
	}
}

func TestParseFloatValue(t *testing.T) {
	got, err := ParseFloatValue[float64]("--ratio", "0.5", 64)
	if err != nil {
		t.Fatalf("ParseFloatValue: %v", err)
	}
	if got != 0.5 {
		t.Errorf("ParseFloatValue = %v, want 0.5", got)
	}

	_, err = ParseFloatValue[float32]("--ratio", "half", 32)
	var cliErr *CliError
	if !errors.As(err, &cliErr) || cliErr.Kind != ParseFloatError {
		t.Errorf("expected ParseFloatError, got %v", err)
	}
}

func TestParseStringValue(t *testing.T) {
	got, err := ParseStringValue("--name", "Alice")
	if err != nil {
		t.Fatalf("ParseStringValue: %v", err)
	}
	if got != "Alice" {
		t.Errorf("ParseStringValue = %q, want %q", got, "Alice")
	}

	_, err = ParseStringValue("--name", "bad\xffbytes")
	var cliErr *CliError
	if !errors.As(err, &cliErr) {
		t.Fatalf("expected *CliError, got %T", err)
	}
	if cliErr.Kind != ParseStrError {
		t.Errorf("Kind = %v, want ParseStrError", cliErr.Kind)
	}
	if cliErr.Token != "bad\xffbytes" {
		t.Errorf("Token = %q, want the raw input", cliErr.Token)
	}
}

func TestParseBoolValue(t *testing.T) {
	got, err := ParseBoolValue("--dry-run", "true")
	if err != nil || !got {
		t.Errorf("ParseBoolValue(true) = %v, %v", got, err)
	}
	if _, err := ParseBoolValue("--dry-run", "maybe"); err == nil {
		t.Error("expected error for unparseable bool")
	}
}
