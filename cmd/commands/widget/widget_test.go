package widget

import (
	"bytes"
	"strings"
	"testing"
)

// execWidget creates the widget command, wires up output buffers, runs with
// the given args, and returns what was written to stdout and stderr.
func execWidget(t *testing.T, args ...string) (stdout, stderr string) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer
	cmd := NewCommand()
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)
	cmd.Execute()
	return outBuf.String(), errBuf.String()
}

func TestParams_Text(t *testing.T) {
	stdout, stderr := execWidget(t, "params", "recordId=3100000000123456789&viewLinkName=All_Leads")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	for _, want := range []string{
		"recordId: 3100000000123456789",
		"viewLinkName: All_Leads",
		"appLinkName: (not set)",
		"formLinkName: (not set)",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output, got: %s", want, stdout)
		}
	}
}

func TestParams_LeadingQuestionMark(t *testing.T) {
	stdout, stderr := execWidget(t, "params", "?appLinkName=crm")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	if !strings.Contains(stdout, "appLinkName: crm") {
		t.Errorf("expected appLinkName in output, got: %s", stdout)
	}
}

func TestParams_ExtraKeys(t *testing.T) {
	stdout, _ := execWidget(t, "params", "utm_source=newsletter&appLinkName=crm")

	if !strings.Contains(stdout, "utm_source: newsletter") {
		t.Errorf("expected extra key in output, got: %s", stdout)
	}
}

func TestParams_JSON(t *testing.T) {
	stdout, stderr := execWidget(t, "params", "recordId=123&appLinkName=crm", "-o", "json")

	if stderr != "" {
		t.Errorf("unexpected stderr: %s", stderr)
	}
	for _, want := range []string{`"recordId": "123"`, `"appLinkName": "crm"`} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected %q in output, got: %s", want, stdout)
		}
	}
}

func TestParams_Malformed(t *testing.T) {
	_, stderr := execWidget(t, "params", "recordId=%zz")

	if !strings.Contains(stderr, "parsing query") {
		t.Errorf("expected parse error, got: %s", stderr)
	}
}

func TestParams_UnknownOutputFormat(t *testing.T) {
	_, stderr := execWidget(t, "params", "appLinkName=crm", "-o", "yaml")

	if !strings.Contains(stderr, "unknown output format") {
		t.Errorf("expected format error, got: %s", stderr)
	}
}
