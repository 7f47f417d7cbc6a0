package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"session": map[string]any{
			"keyPrefix":     "session/",
			"resumeOnStart": false,
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"firebase": map[string]any{
			"webApiKey": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SESSION_KEYPREFIX", want: "session.keyPrefix"},
		{envKey: "SESSION_RESUMEONSTART", want: "session.resumeOnStart"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "FIREBASE_WEBAPIKEY", want: "firebase.webApiKey"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
