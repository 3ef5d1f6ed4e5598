// Package source implements the textual source form: a
// recursive-descent parser from token.Token to ir.Node, an encoder (the
// inverse direction, delegated to each ir.Node's own EncodeSource), and a
// JSON debug dump of the parsed tree. Adapted from a recursive-descent
// parser/parser.go.
package source

import (
	"fmt"
	"strconv"
	"strings"

	"ledctrl/cerrors"
	"ledctrl/ir"
	"ledctrl/lexer"
	"ledctrl/token"
)

// Parser consumes a token stream produced by lexer.New(...).Scan() and
// builds the ir.StatementSequence it denotes.
type Parser struct {
	tokens   []token.Token
	position int
}

// Parse scans and parses a complete program from its textual source form.
func Parse(text string) (*ir.StatementSequence, error) {
	tokens, err := lexer.New(text).Scan()
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).ParseProgram()
}

func NewParser(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) peek() token.Token { return p.tokens[p.position] }

func (p *Parser) previous() token.Token { return p.tokens[p.position-1] }

func (p *Parser) isFinished() bool { return p.peek().Type == token.EOF }

func (p *Parser) checkType(t token.Type) bool {
	if p.isFinished() {
		return t == token.EOF
	}
	return p.peek().Type == t
}

func (p *Parser) advance() token.Token {
	if !p.isFinished() {
		p.position++
	}
	return p.previous()
}

func (p *Parser) consume(t token.Type, message string) (token.Token, error) {
	if p.checkType(t) {
		return p.advance(), nil
	}
	return token.Token{}, fmt.Errorf("💥 %s at line %d (got %s %q)", message, p.peek().Line, p.peek().Type, p.peek().Lexeme)
}

// ParseProgram parses a top-level sequence of statements up to EOF.
func (p *Parser) ParseProgram() (*ir.StatementSequence, error) {
	seq, err := p.parseStatements()
	if err != nil {
		return nil, err
	}
	if !p.isFinished() {
		return nil, fmt.Errorf("💥 unexpected token %s %q at line %d", p.peek().Type, p.peek().Lexeme, p.peek().Line)
	}
	return seq, nil
}

// parseStatements parses statements until EOF or a DEDENT closing the
// current block.
func (p *Parser) parseStatements() (*ir.StatementSequence, error) {
	var statements []ir.Statement
	for !p.isFinished() && !p.checkType(token.DEDENT) {
		if p.checkType(token.NEWLINE) {
			p.advance()
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
		if p.checkType(token.NEWLINE) {
			p.advance()
		}
	}
	return ir.NewStatementSequence(statements...), nil
}

func (p *Parser) parseStatement() (ir.Statement, error) {
	switch {
	case p.checkType(token.COMMENT):
		return p.parseComment()
	case p.checkType(token.WITH):
		return p.parseLoopBlock()
	case p.checkType(token.IDENTIFIER):
		return p.parseCommand()
	default:
		return nil, fmt.Errorf("💥 unexpected token %s %q at line %d", p.peek().Type, p.peek().Lexeme, p.peek().Line)
	}
}

// parseComment recognizes the three-line dash-bordered banner that
// EncodeSource produces for a Comment node, falling back to a single
// comment line for hand-authored source.
func (p *Parser) parseComment() (ir.Statement, error) {
	first := p.advance().Lexeme
	if !isDashBanner(first) {
		return ir.Comment{Text: first}, nil
	}
	if p.checkType(token.NEWLINE) && p.tokens[p.position+1].Type == token.COMMENT {
		p.advance() // NEWLINE
		text := p.advance().Lexeme
		if p.checkType(token.NEWLINE) && p.tokens[p.position+1].Type == token.COMMENT && isDashBanner(p.tokens[p.position+1].Lexeme) {
			p.advance() // NEWLINE
			p.advance() // closing dash banner
			return ir.Comment{Text: text}, nil
		}
	}
	return ir.Comment{Text: first}, nil
}

func isDashBanner(text string) bool {
	return len(text) > 0 && strings.Trim(text, "-") == ""
}

func (p *Parser) parseLoopBlock() (ir.Statement, error) {
	p.advance() // WITH
	if _, err := p.consume(token.LOOP, "expected 'loop' after 'with'"); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.LPAREN, "expected '(' after 'loop'"); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.ITERATIONS, "expected 'iterations'"); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.EQUALS, "expected '=' after 'iterations'"); err != nil {
		return nil, err
	}
	countTok, err := p.consume(token.INT, "expected integer iteration count")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.RPAREN, "expected ')'"); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.COLON, "expected ':' after loop header"); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.NEWLINE, "expected newline after loop header"); err != nil {
		return nil, err
	}
	if _, err := p.consume(token.INDENT, "expected indented loop body"); err != nil {
		return nil, err
	}
	body, err := p.parseStatements()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(token.DEDENT, "expected dedent closing loop body"); err != nil {
		return nil, err
	}
	iterations, err := parseIntLiteral(countTok)
	if err != nil {
		return nil, err
	}
	count, err := ir.NewUnsignedByte(iterations)
	if err != nil {
		return nil, err
	}
	return ir.LoopBlock{Iterations: count, Body: body}, nil
}

func (p *Parser) parseCommand() (ir.Statement, error) {
	name := p.advance()
	if _, err := p.consume(token.LPAREN, "expected '(' after command name"); err != nil {
		return nil, err
	}
	args, err := p.parseArgs()
	if err != nil {
		return nil, err
	}
	build, ok := commandBuilders[name.Lexeme]
	if !ok {
		return nil, cerrors.BytecodeParserError{NodeClass: name.Lexeme, Reason: "unknown command"}
	}
	return build(args)
}

func (p *Parser) parseArgs() ([]token.Token, error) {
	var args []token.Token
	if p.checkType(token.RPAREN) {
		p.advance()
		return args, nil
	}
	for {
		if p.isFinished() {
			return nil, fmt.Errorf("💥 unterminated argument list at line %d", p.peek().Line)
		}
		args = append(args, p.advance())
		if p.checkType(token.COMMA) {
			p.advance()
			continue
		}
		if _, err := p.consume(token.RPAREN, "expected ',' or ')' in argument list"); err != nil {
			return nil, err
		}
		return args, nil
	}
}

func parseIntLiteral(tok token.Token) (int, error) {
	v, err := strconv.ParseInt(tok.Lexeme, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("💥 invalid integer literal %q at line %d", tok.Lexeme, tok.Line)
	}
	return int(v), nil
}

func parseHexByte(tok token.Token) (byte, error) {
	v, err := strconv.ParseUint(tok.Lexeme, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("💥 invalid hex byte literal %q at line %d", tok.Lexeme, tok.Line)
	}
	return byte(v), nil
}

func toUnsignedByte(tok token.Token) (ir.UnsignedByte, error) {
	v, err := parseIntLiteral(tok)
	if err != nil {
		return 0, err
	}
	return ir.NewUnsignedByte(v)
}

func toVaruint(tok token.Token) (ir.Varuint, error) {
	v, err := parseIntLiteral(tok)
	if err != nil {
		return 0, err
	}
	return ir.NewVaruint(int64(v))
}

func toDuration(tok token.Token) (ir.Duration, error) {
	v, err := parseIntLiteral(tok)
	if err != nil {
		return 0, err
	}
	return ir.NewDurationFromFrames(int64(v))
}
