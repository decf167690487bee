package extract

import "testing"

func TestTitleLabelPattern(t *testing.T) {
	text := "Title: Annual Report\nSome body text follows here."
	if got := New().Title(text); got != "Annual Report" {
		t.Errorf("expected Annual Report, got %q", got)
	}
}

func TestTitleLabelCaseInsensitive(t *testing.T) {
	text := "TITLE: Incident Response Playbook\nmore content on the next line"
	if got := New().Title(text); got != "Incident Response Playbook" {
		t.Errorf("expected Incident Response Playbook, got %q", got)
	}
}

func TestTitleHyphenPattern(t *testing.T) {
	text := "Quarterly Review - Finance Division\nthe rest of the document"
	if got := New().Title(text); got != "Quarterly Review" {
		t.Errorf("expected first part before hyphen, got %q", got)
	}
}

func TestTitleSentenceCaseLine(t *testing.T) {
	text := "The State of Renewable Energy\nlowercase follow-up line of text"
	if got := New().Title(text); got != "The State of Renewable Energy" {
		t.Errorf("expected whole line, got %q", got)
	}
}

func TestTitleNoMeaningfulLines(t *testing.T) {
	tests := []string{
		"",
		"short\nhi\nok",
		"\n\n\n",
	}
	for _, text := range tests {
		if got := New().Title(text); got != UntitledDocument {
			t.Errorf("Title(%q) = %q, want sentinel", text, got)
		}
	}
}

func TestTitleFirstLineFallbackStripsArtifacts(t *testing.T) {
	// Lowercase start defeats every pattern; the fallback strips the
	// leading page token from the first meaningful line.
	text := "page 12 annual financial overview"
	if got := New().Title(text); got != "annual financial overview" {
		t.Errorf("expected stripped first line, got %q", got)
	}
}

func TestTitleChapterArtifact(t *testing.T) {
	text := "chapter 3 the journey begins anew"
	if got := New().Title(text); got != "the journey begins anew" {
		t.Errorf("expected stripped first line, got %q", got)
	}
}

func TestTitleTooLongLineIgnored(t *testing.T) {
	long := make([]byte, 0, 240)
	for i := 0; i < 40; i++ {
		long = append(long, "abcdef"...)
	}
	if got := New().Title(string(long)); got != UntitledDocument {
		t.Errorf("expected sentinel for 240-char line, got %q", got)
	}
}
