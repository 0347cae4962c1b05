package extract

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestNewRequest(t *testing.T) {
	tests := []struct {
		name        string
		inputPath   string
		outputPath  string
		codec       string
		logPath     string
		wantOutput  string
		wantCodec   string
		wantLog     string
		wantErr     bool
		errContains string
	}{
		{
			name:       "fully specified request",
			inputPath:  "/videos/talk.mp4",
			outputPath: "/audio/talk.mp3",
			codec:      "mp3",
			logPath:    "/logs/talk.log",
			wantOutput: "/audio/talk.mp3",
			wantCodec:  "mp3",
			wantLog:    "/logs/talk.log",
		},
		{
			name:       "default codec",
			inputPath:  "/videos/talk.mp4",
			outputPath: "/audio/talk.mp3",
			wantOutput: "/audio/talk.mp3",
			wantCodec:  DefaultCodec,
			wantLog:    "/audio/talk.log",
		},
		{
			name:       "output derived from input stem",
			inputPath:  filepath.Join("/videos", "talk.mp4"),
			codec:      "wav",
			wantOutput: filepath.Join("/videos", "talk.wav"),
			wantCodec:  "wav",
			wantLog:    filepath.Join("/videos", "talk.log"),
		},
		{
			name:       "log derived from output",
			inputPath:  "/videos/talk.mp4",
			outputPath: filepath.Join("/audio", "talk.flac"),
			codec:      "flac",
			wantOutput: filepath.Join("/audio", "talk.flac"),
			wantCodec:  "flac",
			wantLog:    filepath.Join("/audio", "talk.log"),
		},
		{
			name:        "empty input path",
			inputPath:   "",
			outputPath:  "/audio/talk.mp3",
			wantErr:     true,
			errContains: "input path is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRequest(tt.inputPath, tt.outputPath, tt.codec, tt.logPath)

			if tt.wantErr {
				if err == nil {
					t.Errorf("NewRequest() expected error, got nil")
					return
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("NewRequest() error = %v, want error containing %q", err, tt.errContains)
				}
				return
			}

			if err != nil {
				t.Errorf("NewRequest() unexpected error: %v", err)
				return
			}

			if got.OutputPath != tt.wantOutput {
				t.Errorf("NewRequest() OutputPath = %q, want %q", got.OutputPath, tt.wantOutput)
			}
			if got.Codec != tt.wantCodec {
				t.Errorf("NewRequest() Codec = %q, want %q", got.Codec, tt.wantCodec)
			}
			if got.LogPath != tt.wantLog {
				t.Errorf("NewRequest() LogPath = %q, want %q", got.LogPath, tt.wantLog)
			}
		})
	}
}

func TestDeriveOutputPath(t *testing.T) {
	tests := []struct {
		name      string
		inputPath string
		outputDir string
		codec     string
		want      string
	}{
		{
			name:      "mp3 in explicit directory",
			inputPath: "/videos/2025-06-01 recording.mp4",
			outputDir: "/audio",
			codec:     "mp3",
			want:      filepath.Join("/audio", "2025-06-01 recording.mp3"),
		},
		{
			name:      "wav next to input",
			inputPath: "/videos/clip.mkv",
			outputDir: "/videos",
			codec:     "wav",
			want:      filepath.Join("/videos", "clip.wav"),
		},
		{
			name:      "input without extension",
			inputPath: "/videos/raw",
			outputDir: "/audio",
			codec:     "mp3",
			want:      filepath.Join("/audio", "raw.mp3"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveOutputPath(tt.inputPath, tt.outputDir, tt.codec); got != tt.want {
				t.Errorf("DeriveOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeriveLogPath(t *testing.T) {
	tests := []struct {
		outputPath string
		want       string
	}{
		{"/audio/talk.mp3", "/audio/talk.log"},
		{"/audio/talk.tar.gz", "/audio/talk.tar.log"},
		{"/audio/noext", "/audio/noext.log"},
	}

	for _, tt := range tests {
		t.Run(tt.outputPath, func(t *testing.T) {
			if got := DeriveLogPath(tt.outputPath); got != tt.want {
				t.Errorf("DeriveLogPath(%q) = %q, want %q", tt.outputPath, got, tt.want)
			}
		})
	}
}
