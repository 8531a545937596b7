package creator

import "testing"

func TestParseDataCenter(t *testing.T) {
	tests := []struct {
		in      string
		want    DataCenter
		wantErr bool
	}{
		{"us", US, false},
		{"EU", EU, false},
		{" in ", IN, false},
		{"au", AU, false},
		{"jp", JP, false},
		{"", US, false},
		{"mars", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDataCenter(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDataCenter(%q) expected error, got %q", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDataCenter(%q) returned error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseDataCenter(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBaseURL(t *testing.T) {
	if got := BaseURL(EU); got != "https://www.zohoapis.eu" {
		t.Errorf("BaseURL(EU) = %q", got)
	}
	if got := BaseURL("unknown"); got != "https://www.zohoapis.com" {
		t.Errorf("BaseURL(unknown) = %q, want US fallback", got)
	}
}

func TestWebBaseURL(t *testing.T) {
	if got := WebBaseURL(AU); got != "https://creator.zoho.com.au" {
		t.Errorf("WebBaseURL(AU) = %q", got)
	}
	if got := WebBaseURL(""); got != "https://creator.zoho.com" {
		t.Errorf("WebBaseURL(empty) = %q, want US fallback", got)
	}
}
