package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	t.Run("valid config", func(t *testing.T) {
		path := filepath.Join(dir, "config.yaml")
		content := `tool:
  ffmpeg_path: /opt/ffmpeg/bin/ffmpeg
audio:
  codec: wav
paths:
  output_directory: /home/user/audio
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Load() unexpected error: %v", err)
		}

		if cfg.Tool.FFmpegPath != "/opt/ffmpeg/bin/ffmpeg" {
			t.Errorf("Tool.FFmpegPath = %q", cfg.Tool.FFmpegPath)
		}
		if cfg.Audio.Codec != "wav" {
			t.Errorf("Audio.Codec = %q, want %q", cfg.Audio.Codec, "wav")
		}
		if cfg.Paths.OutputDirectory != "/home/user/audio" {
			t.Errorf("Paths.OutputDirectory = %q", cfg.Paths.OutputDirectory)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(dir, "absent.yaml")); err == nil {
			t.Error("Load() expected error for missing file")
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte("tool: [unclosed"), 0644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Error("Load() expected error for malformed yaml")
		}
	})
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	want := &Config{
		Tool:  ToolConfig{FFmpegPath: "/usr/local/bin/ffmpeg"},
		Audio: AudioConfig{Codec: "mp3"},
		Paths: PathsConfig{OutputDirectory: "/audio"},
	}

	if err := Save(want, path); err != nil {
		t.Fatalf("Save() unexpected error: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if *got != *want {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
}
