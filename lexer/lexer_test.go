package lexer

import (
	"testing"

	"ledctrl/token"
)

func types(tokens []token.Token) []token.Type {
	out := make([]token.Type, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Type
	}
	return out
}

func assertTypes(t *testing.T, got []token.Type, want ...token.Type) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %v tokens, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestScanCommandCall(t *testing.T) {
	tokens, err := New(`set_color(255, 0, 0, 50)`).Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	assertTypes(t, types(tokens),
		token.IDENTIFIER, token.LPAREN,
		token.INT, token.COMMA, token.INT, token.COMMA, token.INT, token.COMMA, token.INT,
		token.RPAREN, token.NEWLINE, token.EOF)
}

func TestScanComment(t *testing.T) {
	tokens, err := New("# hello world").Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	if tokens[0].Type != token.COMMENT || tokens[0].Lexeme != "hello world" {
		t.Errorf("comment token = %+v", tokens[0])
	}
}

func TestScanLoopBlockIndentation(t *testing.T) {
	src := "with loop(iterations=3):\n    sleep(10)\nend()"
	tokens, err := New(src).Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	got := types(tokens)
	assertTypes(t, got,
		token.WITH, token.LOOP, token.LPAREN, token.ITERATIONS, token.EQUALS, token.INT, token.RPAREN, token.COLON, token.NEWLINE,
		token.INDENT,
		token.IDENTIFIER, token.LPAREN, token.INT, token.RPAREN, token.NEWLINE,
		token.DEDENT,
		token.IDENTIFIER, token.LPAREN, token.RPAREN, token.NEWLINE,
		token.EOF)
}

func TestScanHexByte(t *testing.T) {
	tokens, err := New("set_pyro(0x0f)").Scan()
	if err != nil {
		t.Fatalf("Scan() error = %v", err)
	}
	var hex token.Token
	for _, tok := range tokens {
		if tok.Type == token.HEX {
			hex = tok
		}
	}
	if hex.Lexeme != "0x0f" {
		t.Errorf("hex literal = %q, want %q", hex.Lexeme, "0x0f")
	}
}

func TestScanInconsistentIndentationErrors(t *testing.T) {
	src := "with loop(iterations=1):\n    sleep(1)\n  end()"
	if _, err := New(src).Scan(); err == nil {
		t.Error("expected an error for inconsistent dedent, got nil")
	}
}

func TestScanUnterminatedStringErrors(t *testing.T) {
	if _, err := New(`label("oops)`).Scan(); err == nil {
		t.Error("expected an error for unterminated string literal, got nil")
	}
}

func TestScanUnexpectedCharacterErrors(t *testing.T) {
	if _, err := New("set_color(255, 0, 0, 50) @").Scan(); err == nil {
		t.Error("expected an error for an unexpected character, got nil")
	}
}
