package config

import "fmt"

type Config struct {
	Whisper     WhisperConfig     `yaml:"whisper"`
	Summarizer  SummarizerConfig  `yaml:"summarizer"`
	Chapters    ChaptersConfig    `yaml:"chapters"`
	Paths       PathsConfig       `yaml:"paths"`
	Report      ReportConfig      `yaml:"report"`
	Pipeline    PipelineConfig    `yaml:"pipeline"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type WhisperConfig struct {
	ModelPath      string `yaml:"model_path"`
	BinaryPath     string `yaml:"binary_path"`
	Language       string `yaml:"language"`
	Threads        int    `yaml:"threads"`
	TimeoutMinutes int    `yaml:"timeout_minutes"`
}

type SummarizerConfig struct {
	Provider       string `yaml:"provider"` // gemini | openai
	GeminiModel    string `yaml:"gemini_model"`
	OpenAIModel    string `yaml:"openai_model"`
	MaxAttempts    int    `yaml:"max_attempts"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type ChaptersConfig struct {
	SilenceGapSeconds float64 `yaml:"silence_gap_seconds"`
	MaxChapterMinutes float64 `yaml:"max_chapter_minutes"`
	MaxChapters       int     `yaml:"max_chapters"`
	TitleWords        int     `yaml:"title_words"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type ReportConfig struct {
	Docx bool `yaml:"docx"`
}

type PipelineConfig struct {
	GracefulDegradation bool `yaml:"graceful_degradation"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

func (c *Config) Validate() error {
	if c.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper.model_path is required")
	}
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Whisper.Language == "" {
		c.Whisper.Language = "en"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Summarizer.Provider == "" {
		c.Summarizer.Provider = "gemini"
	}
	if c.Summarizer.Provider != "gemini" && c.Summarizer.Provider != "openai" {
		return fmt.Errorf("summarizer.provider must be gemini or openai, got %q", c.Summarizer.Provider)
	}
	if c.Summarizer.GeminiModel == "" {
		c.Summarizer.GeminiModel = "gemini-2.5-flash"
	}
	if c.Summarizer.OpenAIModel == "" {
		c.Summarizer.OpenAIModel = "gpt-4o-mini"
	}
	if c.Summarizer.MaxAttempts == 0 {
		c.Summarizer.MaxAttempts = 3
	}
	if c.Summarizer.TimeoutSeconds == 0 {
		c.Summarizer.TimeoutSeconds = 120
	}
	if c.Chapters.SilenceGapSeconds == 0 {
		c.Chapters.SilenceGapSeconds = 3
	}
	if c.Chapters.MaxChapterMinutes == 0 {
		c.Chapters.MaxChapterMinutes = 5
	}
	if c.Chapters.MaxChapters == 0 {
		c.Chapters.MaxChapters = 8
	}
	if c.Chapters.TitleWords == 0 {
		c.Chapters.TitleWords = 6
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
