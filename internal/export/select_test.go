package export

import "testing"

func TestSelectTarget(t *testing.T) {
	tests := []struct {
		name    string
		targets []string
		want    string
		wantOK  bool
	}{
		{
			name:    "image preferred over text",
			targets: []string{"text/plain", "image/png", "UTF8_STRING"},
			want:    "image/png",
			wantOK:  true,
		},
		{
			name:    "image preferred regardless of order",
			targets: []string{"UTF8_STRING", "text/html", "image/jpeg", "text/plain"},
			want:    "image/jpeg",
			wantOK:  true,
		},
		{
			name:    "first image wins in enumeration order",
			targets: []string{"image/bmp", "image/png", "image/jpeg"},
			want:    "image/bmp",
			wantOK:  true,
		},
		{
			name:    "text/plain only",
			targets: []string{"text/html", "text/plain"},
			want:    "text/plain",
			wantOK:  true,
		},
		{
			name:    "UTF8_STRING only",
			targets: []string{"TIMESTAMP", "UTF8_STRING"},
			want:    "UTF8_STRING",
			wantOK:  true,
		},
		{
			name:    "first matching text identifier wins",
			targets: []string{"UTF8_STRING", "text/plain"},
			want:    "UTF8_STRING",
			wantOK:  true,
		},
		{
			name:    "nothing supported",
			targets: []string{"text/html", "application/x-qt-image-hint", "TARGETS"},
			want:    "",
			wantOK:  false,
		},
		{
			name:    "empty enumeration",
			targets: nil,
			want:    "",
			wantOK:  false,
		},
		{
			name:    "prefix must match exactly",
			targets: []string{"x-image/foo", "text/plain"},
			want:    "text/plain",
			wantOK:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectTarget(tt.targets)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("SelectTarget(%v) = (%q, %v), want (%q, %v)",
					tt.targets, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
