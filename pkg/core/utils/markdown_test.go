package utils

import "testing"

func TestCleanMarkdownStripsFence(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"tagged fence", "```markdown\n# Title\nbody\n```", "# Title\nbody"},
		{"bare fence", "```\n# Title\n```", "# Title"},
		{"no fence", "# Title\nbody", "# Title\nbody"},
		{"surrounding whitespace", "  \n# Title\n  ", "# Title"},
	}
	for _, tc := range cases {
		if got := CleanMarkdown(tc.input); got != tc.want {
			t.Errorf("%s: CleanMarkdown = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestValidateMarkdown(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"normal reply", "**Total Estimated Cost:** $45,000\n\n### Itemized Breakdown", true},
		{"plain prose", "just a sentence", true},
		{"empty", "", false},
		{"whitespace only", "   \n\t\n", false},
	}
	for _, tc := range cases {
		if got := ValidateMarkdown(tc.input); got != tc.want {
			t.Errorf("%s: ValidateMarkdown = %v, want %v", tc.name, got, tc.want)
		}
	}
}
