package lsp

import (
	"strings"
	"unicode/utf16"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/leonardinius/tinylox/internal/loxerrors"
	"github.com/leonardinius/tinylox/internal/parser"
	"github.com/leonardinius/tinylox/internal/scanner"
)

const diagnosticSource = "tinylox"

// Diagnose scans and parses text and returns every lex and parse error.
// Nothing is executed.
func Diagnose(text string) []protocol.Diagnostic {
	collector := loxerrors.NewCollector()

	tokens, _ := scanner.NewScanner(text, collector).Scan()
	_, _ = parser.NewParser(tokens, collector).Parse()

	return ToLspDiagnostics(text, collector.Diagnostics)
}

// ToLspDiagnostics converts line-tagged reports. LSP lines are 0-based and
// each report spans its whole source line.
func ToLspDiagnostics(text string, ds []loxerrors.Diagnostic) []protocol.Diagnostic {
	lines := strings.Split(text, "\n")

	out := make([]protocol.Diagnostic, 0, len(ds))
	for _, d := range ds {
		line := uint32(0)
		if d.Line > 0 {
			line = uint32(d.Line - 1)
		}
		end := uint32(0)
		if int(line) < len(lines) {
			end = utf16Len(strings.TrimSuffix(lines[line], "\r"))
		}

		severity := protocol.DiagnosticSeverityError
		out = append(out, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: line, Character: 0},
				End:   protocol.Position{Line: line, Character: end},
			},
			Severity: &severity,
			Source:   ptrString(diagnosticSource),
			Message:  message(d),
		})
	}
	return out
}

func message(d loxerrors.Diagnostic) string {
	if d.Where == "" {
		return d.Message
	}
	return strings.TrimSpace(d.Where) + ": " + d.Message
}

// LSP character offsets count UTF-16 code units.
func utf16Len(s string) uint32 {
	return uint32(len(utf16.Encode([]rune(s))))
}

func ptrString(s string) *string { return &s }
