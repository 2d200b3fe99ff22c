package transformlang

import "strconv"

type parser struct {
	lex *lexer
	tok token
	err error
}

func (p *parser) advance() bool {
	if p.err != nil {
		return false
	}
	t, err := p.lex.next()
	if err != nil {
		p.err = err
		return false
	}
	p.tok = t
	return true
}

func (p *parser) number() (float64, bool) {
	if p.tok.kind != tokNumber {
		p.err = &ParseError{Pos: p.tok.pos, Msg: "expected a number"}
		return 0, false
	}
	v, err := strconv.ParseFloat(p.tok.text, 64)
	if err != nil {
		p.err = &ParseError{Pos: p.tok.pos, Msg: "invalid number " + p.tok.text}
		return 0, false
	}
	if !p.advance() {
		return 0, false
	}
	return v, true
}

func (p *parser) expect(kind tokenKind, what string) bool {
	if p.tok.kind != kind {
		p.err = &ParseError{Pos: p.tok.pos, Msg: "expected " + what}
		return false
	}
	return p.advance()
}

func (p *parser) parseProgram() ([]Op, error) {
	if !p.advance() {
		return nil, p.err
	}
	var ops []Op
	for {
		if p.tok.kind == tokEOF {
			break
		}
		op, ok := p.parseStmt()
		if !ok {
			return nil, p.err
		}
		ops = append(ops, op)
		if p.tok.kind == tokSemicolon {
			if !p.advance() {
				return nil, p.err
			}
			continue
		}
		break
	}
	if p.tok.kind != tokEOF {
		return nil, &ParseError{Pos: p.tok.pos, Msg: "unexpected trailing input"}
	}
	return ops, nil
}

func (p *parser) parseStmt() (Op, bool) {
	if p.tok.kind != tokIdent {
		p.err = &ParseError{Pos: p.tok.pos, Msg: "expected a transform name"}
		return nil, false
	}
	switch {
	case p.tok.isIdent("center"):
		if !p.advance() {
			return nil, false
		}
		return Center{}, true
	case p.tok.isIdent("rotate"):
		return p.parseRotate()
	case p.tok.isIdent("move"):
		return p.parseTriple(func(x, y, z float64) Op { return Move{DX: x, DY: y, DZ: z} })
	case p.tok.isIdent("scale"):
		return p.parseTriple(func(x, y, z float64) Op { return Scale{SX: x, SY: y, SZ: z} })
	case p.tok.isIdent("homothety"):
		return p.parseSingle(func(s float64) Op { return Homothety{S: s} })
	default:
		p.err = &ParseError{Pos: p.tok.pos, Msg: "unknown transform " + strconv.Quote(p.tok.text)}
		return nil, false
	}
}

func (p *parser) parseRotate() (Op, bool) {
	if !p.advance() || !p.expect(tokLParen, "'('") {
		return nil, false
	}
	if p.tok.kind != tokIdent {
		p.err = &ParseError{Pos: p.tok.pos, Msg: "expected an axis (X, Y or Z)"}
		return nil, false
	}
	var axis Axis
	switch {
	case p.tok.isIdent("x"):
		axis = X
	case p.tok.isIdent("y"):
		axis = Y
	case p.tok.isIdent("z"):
		axis = Z
	default:
		p.err = &ParseError{Pos: p.tok.pos, Msg: "unknown axis " + strconv.Quote(p.tok.text)}
		return nil, false
	}
	if !p.advance() || !p.expect(tokComma, "','") {
		return nil, false
	}
	theta, ok := p.number()
	if !ok {
		return nil, false
	}
	if !p.expect(tokRParen, "')'") {
		return nil, false
	}
	return Rotate{Axis: axis, Theta: theta}, true
}

func (p *parser) parseTriple(build func(x, y, z float64) Op) (Op, bool) {
	if !p.advance() || !p.expect(tokLParen, "'('") {
		return nil, false
	}
	x, ok := p.number()
	if !ok || !p.expect(tokComma, "','") {
		return nil, false
	}
	y, ok := p.number()
	if !ok || !p.expect(tokComma, "','") {
		return nil, false
	}
	z, ok := p.number()
	if !ok {
		return nil, false
	}
	if !p.expect(tokRParen, "')'") {
		return nil, false
	}
	return build(x, y, z), true
}

func (p *parser) parseSingle(build func(v float64) Op) (Op, bool) {
	if !p.advance() || !p.expect(tokLParen, "'('") {
		return nil, false
	}
	v, ok := p.number()
	if !ok {
		return nil, false
	}
	if !p.expect(tokRParen, "')'") {
		return nil, false
	}
	return build(v), true
}
