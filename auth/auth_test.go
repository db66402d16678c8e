// Copyright (c) 2025 Pollbox Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"testing"
)

func TestGenerateAdminKey(t *testing.T) {
	tests := []struct {
		name       string
		questionID string
		salt       string
	}{
		{"standard", "question123", "secret-salt"},
		{"empty question id", "", "salt"},
		{"empty salt", "question456", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := GenerateAdminKey(tt.questionID, tt.salt)

			// Should not be empty
			if key == "" {
				t.Error("GenerateAdminKey() returned empty string")
			}

			// Should be deterministic
			key2 := GenerateAdminKey(tt.questionID, tt.salt)
			if key != key2 {
				t.Error("GenerateAdminKey() is not deterministic")
			}

			// Different inputs should produce different keys
			if tt.questionID != "" && tt.salt != "" {
				differentKey := GenerateAdminKey(tt.questionID+"x", tt.salt)
				if key == differentKey {
					t.Error("GenerateAdminKey() produced same key for different question IDs")
				}
				differentSalt := GenerateAdminKey(tt.questionID, tt.salt+"x")
				if key == differentSalt {
					t.Error("GenerateAdminKey() produced same key for different salts")
				}
			}

			// URL-safe: no padding, no characters needing escaping
			if strings.ContainsAny(key, "=+/") {
				t.Errorf("GenerateAdminKey() key is not URL-safe: %s", key)
			}
		})
	}
}

func TestValidateAdminKey(t *testing.T) {
	salt := "test-salt"
	questionID := "question789"
	validKey := GenerateAdminKey(questionID, salt)

	tests := []struct {
		name       string
		questionID string
		adminKey   string
		salt       string
		wantErr    bool
	}{
		{"valid key", questionID, validKey, salt, false},
		{"wrong key", questionID, "wrong-key", salt, true},
		{"empty key", questionID, "", salt, true},
		{"key for different question", "other-question", validKey, salt, true},
		{"wrong salt", questionID, validKey, "other-salt", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAdminKey(tt.questionID, tt.adminKey, tt.salt)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAdminKey) {
					t.Errorf("ValidateAdminKey() error = %v, want ErrInvalidAdminKey", err)
				}
			} else if err != nil {
				t.Errorf("ValidateAdminKey() unexpected error = %v", err)
			}
		})
	}
}
