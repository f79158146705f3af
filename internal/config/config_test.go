package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Whisper: WhisperConfig{
					ModelPath:  "models/test.bin",
					BinaryPath: "./whisper",
				},
				Paths: PathsConfig{
					Output: "outputs",
				},
			},
			wantErr: false,
		},
		{
			name: "missing model path",
			config: Config{
				Whisper: WhisperConfig{
					BinaryPath: "./whisper",
				},
				Paths: PathsConfig{
					Output: "outputs",
				},
			},
			wantErr: true,
		},
		{
			name: "missing output path",
			config: Config{
				Whisper: WhisperConfig{
					ModelPath:  "models/test.bin",
					BinaryPath: "./whisper",
				},
				Paths: PathsConfig{},
			},
			wantErr: true,
		},
		{
			name: "unknown provider",
			config: Config{
				Whisper: WhisperConfig{
					ModelPath:  "models/test.bin",
					BinaryPath: "./whisper",
				},
				Paths: PathsConfig{
					Output: "outputs",
				},
				Summarizer: SummarizerConfig{
					Provider: "claude",
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Whisper: WhisperConfig{
			ModelPath:  "models/test.bin",
			BinaryPath: "./whisper",
		},
		Paths: PathsConfig{
			Output: "outputs",
		},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Summarizer.Provider != "gemini" {
		t.Errorf("Provider = %v, want gemini", cfg.Summarizer.Provider)
	}
	if cfg.Summarizer.MaxAttempts != 3 {
		t.Errorf("MaxAttempts = %v, want 3", cfg.Summarizer.MaxAttempts)
	}
	if cfg.Chapters.MaxChapters != 8 {
		t.Errorf("MaxChapters = %v, want 8", cfg.Chapters.MaxChapters)
	}
	if cfg.Chapters.TitleWords != 6 {
		t.Errorf("TitleWords = %v, want 6", cfg.Chapters.TitleWords)
	}
	if cfg.Whisper.Language != "en" {
		t.Errorf("Language = %v, want en", cfg.Whisper.Language)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
whisper:
  model_path: "models/test.bin"
  binary_path: "./whisper"
  language: "en"

summarizer:
  provider: "openai"

paths:
  output: "outputs"

logging:
  level: "info"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Whisper.ModelPath != "models/test.bin" {
		t.Errorf("ModelPath = %v, want %v", cfg.Whisper.ModelPath, "models/test.bin")
	}
	if cfg.Summarizer.Provider != "openai" {
		t.Errorf("Provider = %v, want openai", cfg.Summarizer.Provider)
	}
	if cfg.Paths.Output != "outputs" {
		t.Errorf("Output = %v, want outputs", cfg.Paths.Output)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	if _, err := Load("nonexistent.yaml"); err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
