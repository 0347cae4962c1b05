package cmd

import "testing"

func TestValidateExtractArgs(t *testing.T) {
	tests := []struct {
		name      string
		outputArg string
		outputDir string
		wantErr   bool
	}{
		{name: "neither given", wantErr: false},
		{name: "explicit output only", outputArg: "talk.mp3", wantErr: false},
		{name: "output dir only", outputDir: "/music", wantErr: false},
		{name: "both given", outputArg: "talk.mp3", outputDir: "/music", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateExtractArgs(tt.outputArg, tt.outputDir)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateExtractArgs(%q, %q) error = %v, wantErr %v", tt.outputArg, tt.outputDir, err, tt.wantErr)
			}
		})
	}
}
