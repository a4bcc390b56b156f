package microsyntax

import "testing"

func TestParseLineBasic(t *testing.T) {
	line, err := ParseLine("IDENT::[a-z]+")
	if err != nil {
		t.Fatalf("ParseLine returned error: %v", err)
	}
	if line.Category != "IDENT" || line.Pattern != "[a-z]+" {
		t.Fatalf("got %+v, want {IDENT [a-z]+}", line)
	}
}

func TestParseLineEscapedColonsInCategory(t *testing.T) {
	line, err := ParseLine(`NS\:\:IDENT::[a-z]+`)
	if err != nil {
		t.Fatalf("ParseLine returned error: %v", err)
	}
	if line.Category != "NS::IDENT" {
		t.Fatalf("Category = %q, want %q", line.Category, "NS::IDENT")
	}
	if line.Pattern != "[a-z]+" {
		t.Fatalf("Pattern = %q, want %q", line.Pattern, "[a-z]+")
	}
}

func TestParseLineMissingSeparator(t *testing.T) {
	_, err := ParseLine("IDENT[a-z]+")
	if _, ok := err.(*MalformedMicrosyntaxError); !ok {
		t.Fatalf("got %v (%T), want *MalformedMicrosyntaxError", err, err)
	}
}

func TestParseLineTooManySeparators(t *testing.T) {
	_, err := ParseLine("IDENT::a::b")
	if _, ok := err.(*MalformedMicrosyntaxError); !ok {
		t.Fatalf("got %v (%T), want *MalformedMicrosyntaxError", err, err)
	}
}

func TestParseLinesStopsAtFirstError(t *testing.T) {
	lines := []string{"IDENT::[a-z]+", "bad line", "NUMBER::[0-9]+"}
	_, err := ParseLines(lines)
	if _, ok := err.(*MalformedMicrosyntaxError); !ok {
		t.Fatalf("got %v (%T), want *MalformedMicrosyntaxError", err, err)
	}
}

func TestParseLinesPreservesOrder(t *testing.T) {
	lines := []string{"IDENT::[a-z]+", "NUMBER::[0-9]+"}
	got, err := ParseLines(lines)
	if err != nil {
		t.Fatalf("ParseLines returned error: %v", err)
	}
	if len(got) != 2 || got[0].Category != "IDENT" || got[1].Category != "NUMBER" {
		t.Fatalf("got %+v, want [IDENT NUMBER] in order", got)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile("/nonexistent/path/to/microsyntax.txt")
	if _, ok := err.(*FileOpenError); !ok {
		t.Fatalf("got %v (%T), want *FileOpenError", err, err)
	}
}
