package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"testing"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		_, redisPort, redisDB, _,
		_, _,
		kafkaAddr, kafkaTopic,
		rateLimitMax, rateLimitWindowSecond,
		logLevel,
		err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if appHost != "localhost" || appPort != "8080" {
		t.Errorf("unexpected app config: %s:%s", appHost, appPort)
	}
	if pgHost != "localhost" || pgPort != 5432 || pgUser != "user" || pgPassword != "password" || pgDB != "database" {
		t.Errorf("unexpected postgres config")
	}
	if pgMaxOpenConns != 16 || pgMaxIdleConns != 8 {
		t.Errorf("unexpected postgres pool config: %d/%d", pgMaxOpenConns, pgMaxIdleConns)
	}
	if redisPort != 6379 || redisDB != 0 {
		t.Errorf("unexpected redis config: %d/%d", redisPort, redisDB)
	}
	if kafkaAddr != "" || kafkaTopic != "task-events" {
		t.Errorf("unexpected kafka config: %q/%q", kafkaAddr, kafkaTopic)
	}
	if rateLimitMax != 100 || rateLimitWindowSecond != 60 {
		t.Errorf("unexpected rate limit config: %d/%d", rateLimitMax, rateLimitWindowSecond)
	}
	if logLevel != "info" {
		t.Errorf("unexpected log level: %s", logLevel)
	}
}

func TestParseConfig_Overrides(t *testing.T) {
	resetEnv()
	os.Setenv("APP_PORT", "9090")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("KAFKA_ADDR", "localhost:9092")
	os.Setenv("RATE_LIMIT_MAX", "5")
	defer resetEnv()

	_, appPort,
		_, pgPort, _, _, _,
		_, _,
		_, _, _, _,
		_, _,
		kafkaAddr, _,
		rateLimitMax, _,
		_,
		err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if appPort != "9090" {
		t.Errorf("expected 9090, got %s", appPort)
	}
	if pgPort != 5433 {
		t.Errorf("expected 5433, got %d", pgPort)
	}
	if kafkaAddr != "localhost:9092" {
		t.Errorf("expected localhost:9092, got %s", kafkaAddr)
	}
	if rateLimitMax != 5 {
		t.Errorf("expected 5, got %d", rateLimitMax)
	}
}

func TestParseConfig_InvalidInt(t *testing.T) {
	resetEnv()
	os.Setenv("POSTGRES_PORT", "not-a-number")
	defer resetEnv()

	_, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, err := parseConfig("nonexistent.env")
	if err == nil {
		t.Error("expected error for invalid POSTGRES_PORT")
	}
}

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	printBuildInfo()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)

	expected := fmt.Sprintf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
	if buf.String() != expected {
		t.Errorf("expected %q, got %q", expected, buf.String())
	}
}
