package domain

import "testing"

func TestNewPageContext(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		title      string
		wantDomain string
		wantErr    bool
	}{
		{
			name:       "derives hostname",
			url:        "https://example.com/foo?bar=1",
			title:      "Foo",
			wantDomain: "example.com",
		},
		{
			name:       "drops port from domain",
			url:        "http://localhost:8080/",
			wantDomain: "localhost",
		},
		{
			name:       "lowercases hostname",
			url:        "https://Example.COM/Foo",
			wantDomain: "example.com",
		},
		{
			name:    "empty url",
			url:     "   ",
			wantErr: true,
		},
		{
			name:    "url without host",
			url:     "/relative/path",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := NewPageContext(tt.url, tt.title)
			if tt.wantErr {
				if err == nil {
					t.Errorf("NewPageContext(%q) expected error", tt.url)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPageContext(%q) error = %v", tt.url, err)
			}
			if page.Domain != tt.wantDomain {
				t.Errorf("Domain = %v, want %v", page.Domain, tt.wantDomain)
			}
			if page.HasTitle() != (tt.title != "") {
				t.Errorf("HasTitle() = %v for title %q", page.HasTitle(), tt.title)
			}
		})
	}
}

func TestDiscussionResult_Comments(t *testing.T) {
	if got := (DiscussionResult{}).Comments(); got != 0 {
		t.Errorf("Comments() with nil count = %d, want 0", got)
	}
	if got := (DiscussionResult{CommentCount: Int(12)}).Comments(); got != 12 {
		t.Errorf("Comments() = %d, want 12", got)
	}
}
