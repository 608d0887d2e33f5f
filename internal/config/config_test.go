package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("NATS_SUBJECT", "")
	t.Setenv("API_RATE_LIMIT_RPS", "")
	t.Setenv("NER_URL", "")

	cfg := Load()
	if cfg.NATSSubject != "documents.analyze" {
		t.Fatalf("expected default subject documents.analyze, got %q", cfg.NATSSubject)
	}
	if cfg.APIRateLimitRPS != 20 {
		t.Fatalf("expected default rate limit 20, got %d", cfg.APIRateLimitRPS)
	}
	if cfg.NERURL != "" {
		t.Fatalf("expected NER disabled by default, got %q", cfg.NERURL)
	}
	if cfg.StoragePath != "./data/documents" {
		t.Fatalf("expected default storage path, got %q", cfg.StoragePath)
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("NATS_SUBJECT", "planning.analyze")
	t.Setenv("ANALYZER_RULES_PATH", "/etc/analyzer/rules.yaml")
	t.Setenv("NER_URL", "http://ner:9000")
	t.Setenv("NER_TIMEOUT_SECONDS", "10")
	t.Setenv("API_MAX_CONCURRENT", "8")

	cfg := Load()
	if cfg.NATSSubject != "planning.analyze" {
		t.Fatalf("expected subject override, got %q", cfg.NATSSubject)
	}
	if cfg.RulesPath != "/etc/analyzer/rules.yaml" {
		t.Fatalf("expected rules path override, got %q", cfg.RulesPath)
	}
	if cfg.NERURL != "http://ner:9000" || cfg.NERTimeoutSeconds != 10 {
		t.Fatalf("expected NER overrides, got %q/%d", cfg.NERURL, cfg.NERTimeoutSeconds)
	}
	if cfg.APIMaxConcurrent != 8 {
		t.Fatalf("expected max concurrent 8, got %d", cfg.APIMaxConcurrent)
	}
}

func TestLoadFallsBackOnMalformedInt(t *testing.T) {
	t.Setenv("API_RATE_LIMIT_BURST", "not-a-number")
	cfg := Load()
	if cfg.APIRateLimitBurst != 40 {
		t.Fatalf("expected fallback 40 for malformed int, got %d", cfg.APIRateLimitBurst)
	}
}
