package fields

import "testing"

func TestMerge(t *testing.T) {
	values := map[string]string{
		"Name":         "Avery",
		"Company.Name": "Pinnacle Growth",
		"_internal":    "hidden",
		"Phone":        "(555) 123-4567",
	}

	tests := []struct {
		name     string
		template string
		want     string
	}{
		{
			name:     "single token",
			template: "Hello ${Name}!",
			want:     "Hello Avery!",
		},
		{
			name:     "multiple tokens",
			template: "${Name} <${Phone}>",
			want:     "Avery <(555) 123-4567>",
		},
		{
			name:     "dotted name",
			template: "Works at ${Company.Name}",
			want:     "Works at Pinnacle Growth",
		},
		{
			name:     "underscore name",
			template: "${_internal}",
			want:     "hidden",
		},
		{
			name:     "unknown token renders blank",
			template: "Dear ${Missing},",
			want:     "Dear ,",
		},
		{
			name:     "adjacent tokens",
			template: "${Name}${Name}",
			want:     "AveryAvery",
		},
		{
			name:     "bare dollar passes through",
			template: "Costs $5",
			want:     "Costs $5",
		},
		{
			name:     "unclosed brace passes through",
			template: "broken ${Name",
			want:     "broken ${Name",
		},
		{
			name:     "digit-led name is not a token",
			template: "${1Name}",
			want:     "${1Name}",
		},
		{
			name:     "empty template",
			template: "",
			want:     "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Merge(tt.template, values); got != tt.want {
				t.Errorf("Merge(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}

func TestMerge_NilValues(t *testing.T) {
	if got := Merge("Hi ${Name}", nil); got != "Hi " {
		t.Errorf("Merge with nil values = %q, want %q", got, "Hi ")
	}
}
