package validation

import (
	"strings"
	"testing"
)

func TestValidateBucketName(t *testing.T) {
	tests := []struct {
		name      string
		bucket    string
		wantError bool
		errMsg    string
	}{
		// Valid bucket names
		{"valid_simple", "my-bucket", false, ""},
		{"valid_with_numbers", "my-bucket123", false, ""},
		{"valid_with_dots", "my.bucket", false, ""},
		{"valid_with_underscores", "my_bucket", false, ""},
		{"valid_min_length", "abc", false, ""},
		{"valid_max_undotted", strings.Repeat("a", 63), false, ""},
		{"valid_long_dotted", strings.Repeat("a", 63) + "." + strings.Repeat("b", 63), false, ""},

		// Invalid bucket names
		{"empty", "", true, "bucket name cannot be empty"},
		{"too_short", "ab", true, "between 3 and 222"},
		{"too_long", strings.Repeat("a", 223), true, "between 3 and 222"},
		{
			"component_too_long",
			strings.Repeat("a", 64) + ".ok",
			true,
			"dot-separated component",
		},
		{"empty_component", "bucket..name", true, "dot-separated component"},
		{"contains_uppercase", "MyBucket", true, "lowercase letters"},
		{"contains_space", "my bucket", true, "lowercase letters"},
		{"starts_with_hyphen", "-bucket", true, "start and end with a letter or number"},
		{"ends_with_underscore", "bucket_", true, "start and end with a letter or number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBucketName(tt.bucket)
			if tt.wantError {
				if err == nil {
					t.Fatalf("ValidateBucketName(%q) = nil, want error containing %q", tt.bucket, tt.errMsg)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("ValidateBucketName(%q) = %v, want error containing %q", tt.bucket, err, tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateBucketName(%q) = %v, want nil", tt.bucket, err)
			}
		})
	}
}

func TestValidateObjectKey(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		wantError bool
		errMsg    string
	}{
		// Valid object keys
		{"valid_simple", "file.parquet", false, ""},
		{"valid_nested", "warehouse/year=2026/part-0.parquet", false, ""},
		{"valid_unicode", "données/fichier.csv", false, ""},
		{"valid_max_length", strings.Repeat("a", 1024), false, ""},

		// Invalid object keys
		{"empty", "", true, "object key cannot be empty"},
		{"too_long", strings.Repeat("a", 1025), true, "1024 bytes"},
		{"dot", ".", true, "cannot be '.'"},
		{"dotdot", "..", true, "cannot be '.'"},
		{"carriage_return", "bad\rkey", true, "control characters"},
		{"line_feed", "bad\nkey", true, "control characters"},
		{"invalid_utf8", "bad\xff\xfekey", true, "valid UTF-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateObjectKey(tt.key)
			if tt.wantError {
				if err == nil {
					t.Fatalf("ValidateObjectKey(%q) = nil, want error containing %q", tt.key, tt.errMsg)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("ValidateObjectKey(%q) = %v, want error containing %q", tt.key, err, tt.errMsg)
				}
				return
			}
			if err != nil {
				t.Errorf("ValidateObjectKey(%q) = %v, want nil", tt.key, err)
			}
		})
	}
}
