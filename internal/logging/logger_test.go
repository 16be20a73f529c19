package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// resetState clears the package state so each test starts clean.
func resetState() {
	CloseAll()
	loggers = make(map[Category]*Logger)
	logsDir = ""
	workspace = ""
	config = loggingConfig{}
	logLevel = LevelDebug
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	configDir := filepath.Join(dir, ".bankshell")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.json"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
}

func TestAllCategoriesLog(t *testing.T) {
	tempDir := t.TempDir()
	writeConfig(t, tempDir, `{"logging": {"level": "debug", "debug_mode": true}}`)

	resetState()
	if err := Initialize(tempDir); err != nil {
		t.Fatalf("Failed to initialize logging: %v", err)
	}
	if !IsDebugMode() {
		t.Fatal("Expected debug mode to be enabled")
	}

	categories := []Category{
		CategoryBoot,
		CategorySession,
		CategoryUI,
		CategoryDocs,
		CategoryConfig,
	}

	for _, cat := range categories {
		if !IsCategoryEnabled(cat) {
			t.Errorf("Category %s should be enabled", cat)
		}
		logger := Get(cat)
		logger.Info("Test info message for %s", cat)
		logger.Debug("Test debug message for %s", cat)
		logger.Warn("Test warn message for %s", cat)
		logger.Error("Test error message for %s", cat)
	}

	Boot("Convenience boot log")
	Session("Convenience session log")
	UI("Convenience ui log")
	Docs("Convenience docs log")
	ConfigLog("Convenience config log")

	CloseAll()

	logsPath := filepath.Join(tempDir, ".bankshell", "logs")
	entries, err := os.ReadDir(logsPath)
	if err != nil {
		t.Fatalf("Failed to read logs dir: %v", err)
	}

	for _, cat := range categories {
		found := false
		for _, entry := range entries {
			if strings.Contains(entry.Name(), string(cat)+".log") {
				found = true
				content, err := os.ReadFile(filepath.Join(logsPath, entry.Name()))
				if err != nil {
					t.Errorf("Failed to read log file for %s: %v", cat, err)
					continue
				}
				if len(content) == 0 {
					t.Errorf("Log file for %s is empty", cat)
				}
				break
			}
		}
		if !found {
			t.Errorf("No log file found for category: %s", cat)
		}
	}
}

func TestDebugModeDisabled(t *testing.T) {
	tempDir := t.TempDir()
	writeConfig(t, tempDir, `{"logging": {"level": "debug", "debug_mode": false}}`)

	resetState()
	if err := Initialize(tempDir); err != nil {
		t.Fatalf("Failed to initialize logging: %v", err)
	}
	if IsDebugMode() {
		t.Error("Expected debug mode to be DISABLED (production mode)")
	}

	Boot("This should NOT be logged")
	UI("This should NOT be logged")
	Get(CategoryDocs).Error("This should NOT be logged")

	CloseAll()

	logsPath := filepath.Join(tempDir, ".bankshell", "logs")
	if _, err := os.Stat(logsPath); err == nil {
		entries, _ := os.ReadDir(logsPath)
		if len(entries) > 0 {
			t.Errorf("Expected NO log files in production mode, found %d", len(entries))
		}
	}
}

func TestCategoryToggle(t *testing.T) {
	tempDir := t.TempDir()
	writeConfig(t, tempDir, `{
		"logging": {
			"level": "debug",
			"debug_mode": true,
			"categories": {
				"boot": true,
				"ui": false
			}
		}
	}`)

	resetState()
	if err := Initialize(tempDir); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	if !IsCategoryEnabled(CategoryBoot) {
		t.Error("boot should be enabled")
	}
	if IsCategoryEnabled(CategoryUI) {
		t.Error("ui should be DISABLED")
	}
	// Category not in config defaults to enabled when debug_mode=true
	if !IsCategoryEnabled(CategoryDocs) {
		t.Error("docs (not in config) should default to enabled")
	}

	Boot("This SHOULD be logged")
	UI("This should NOT be logged")

	CloseAll()

	entries, _ := os.ReadDir(filepath.Join(tempDir, ".bankshell", "logs"))
	var hasBoot, hasUI bool
	for _, e := range entries {
		if strings.Contains(e.Name(), "boot") {
			hasBoot = true
		}
		if strings.Contains(e.Name(), "_ui.log") {
			hasUI = true
		}
	}
	if !hasBoot {
		t.Error("Expected boot log file")
	}
	if hasUI {
		t.Error("Should NOT have ui log file (disabled)")
	}
}

func TestJSONFormatEntriesParse(t *testing.T) {
	tempDir := t.TempDir()
	writeConfig(t, tempDir, `{"logging": {"level": "info", "debug_mode": true, "json_format": true}}`)

	resetState()
	if err := Initialize(tempDir); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	UI("structured message %d", 42)
	CloseAll()

	logsPath := filepath.Join(tempDir, ".bankshell", "logs")
	entries, err := os.ReadDir(logsPath)
	if err != nil {
		t.Fatalf("Failed to read logs dir: %v", err)
	}

	var parsed bool
	for _, e := range entries {
		if !strings.Contains(e.Name(), "_ui.log") {
			continue
		}
		content, err := os.ReadFile(filepath.Join(logsPath, e.Name()))
		if err != nil {
			t.Fatalf("Failed to read log: %v", err)
		}
		for _, line := range strings.Split(strings.TrimSpace(string(content)), "\n") {
			// Lines carry the stdlib log timestamp prefix before the JSON.
			idx := strings.Index(line, "{")
			if idx < 0 {
				continue
			}
			var entry StructuredLogEntry
			if err := json.Unmarshal([]byte(line[idx:]), &entry); err != nil {
				t.Errorf("Log line is not valid JSON: %v (%s)", err, line)
				continue
			}
			if entry.Message == "structured message 42" && entry.Category == "ui" {
				parsed = true
			}
		}
	}
	if !parsed {
		t.Error("Expected to find the structured ui log entry")
	}
}

func TestTimerLogging(t *testing.T) {
	tempDir := t.TempDir()
	writeConfig(t, tempDir, `{"logging": {"level": "debug", "debug_mode": true}}`)

	resetState()
	if err := Initialize(tempDir); err != nil {
		t.Fatalf("Failed to initialize: %v", err)
	}

	timer := StartTimer(CategoryDocs, "RenderStackDoc")
	elapsed := timer.Stop()
	if elapsed < 0 {
		t.Error("Timer should record a non-negative duration")
	}

	CloseAll()
}
