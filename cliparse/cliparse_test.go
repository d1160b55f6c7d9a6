// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"testing"
)

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("MODEL_URL", "http://model.test/predict")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.ModelURL != "http://model.test/predict" {
		t.Errorf("unexpected model URL: %s", cfg.ModelURL)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-m", "http://model.test/predict"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{"-m", "http://model.test/predict"})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 5000 {
		t.Errorf("expected default port 5000, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "file:diarisk.db" {
		t.Errorf("expected default sqlite URL, got %s", cfg.DatabaseURL)
	}
	if cfg.DatabaseType != "sqlite" {
		t.Errorf("expected default database type sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.Threshold != 0.502 {
		t.Errorf("expected default threshold 0.502, got %f", cfg.Threshold)
	}
	if cfg.DriverName() != "sqlite" {
		t.Errorf("expected sqlite driver, got %s", cfg.DriverName())
	}
}

func TestParseFlags_ModelURLRequired(t *testing.T) {
	os.Clearenv()

	_, err := ParseFlags([]string{})
	if err == nil {
		t.Fatal("expected error for missing model URL")
	}
}

func TestParseFlags_InvalidThreshold(t *testing.T) {
	os.Clearenv()

	_, err := ParseFlags([]string{"-m", "http://model.test/predict", "-threshold", "1.5"})
	if err == nil {
		t.Fatal("expected error for threshold outside (0, 1)")
	}
}

func TestParseFlags_InvalidDatabaseType(t *testing.T) {
	os.Clearenv()

	_, err := ParseFlags([]string{"-m", "http://model.test/predict", "-t", "mysql"})
	if err == nil {
		t.Fatal("expected error for unsupported database type")
	}
}

func TestDriverName_Postgres(t *testing.T) {
	cfg := Config{DatabaseType: "postgres"}
	if cfg.DriverName() != "postgres" {
		t.Errorf("expected postgres driver, got %s", cfg.DriverName())
	}
}
