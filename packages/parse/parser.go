// Package parse turns formula text into an *exprtree.Node via a
// shunting-yard tokenizer/tree-builder: two explicit stacks, no recursive
// descent.
package parse

import "github.com/gradecheck/exprjudge/packages/exprtree"

// Parse converts formula text into an expression tree. It returns a
// *ParseError for any ill-formed input: mismatched or cross-family
// brackets, an unrecognized token, an operator with a missing operand, or
// leftover/insufficient operands at end of input.
func Parse(formula string) (*exprtree.Node, error) {
	p := &parser{lex: newLexer(formula), formula: formula}
	return p.run()
}

type parser struct {
	lex     *lexer
	formula string

	result  []*exprtree.Node
	opstack []opEntry
}

// opEntry is either an operator character or an open-bracket character
// sitting on opstack; isBracket distinguishes the two since brackets never
// combine via priority and only leave the stack through their matching
// close.
type opEntry struct {
	ch        byte
	isBracket bool
}

func (p *parser) run() (*exprtree.Node, error) {
	for {
		tok, err := p.lex.next()
		if err != nil {
			return nil, err
		}
		if tok.kind == tokEOF {
			break
		}
		if err := p.feed(tok); err != nil {
			return nil, err
		}
	}
	if err := p.drain(len(p.formula)); err != nil {
		return nil, err
	}
	if len(p.result) != 1 {
		eof := Span{Start: len(p.formula), End: len(p.formula)}
		return nil, &ParseError{Message: "formula does not reduce to a single tree", Formula: p.formula, Span: eof}
	}
	return p.result[0], nil
}

func (p *parser) feed(tok token) error {
	switch tok.kind {
	case tokImmediate:
		p.result = append(p.result, exprtree.Leaf(tok.text))
		return nil
	case tokOpenBracket:
		p.opstack = append(p.opstack, opEntry{ch: tok.text[0], isBracket: true})
		return nil
	case tokCloseBracket:
		return p.closeBracket(tok)
	default: // tokOperator
		return p.pushOperator(tok)
	}
}

// closeBracket pops and combines operators until the matching open
// bracket is found and discarded.
func (p *parser) closeBracket(tok token) error {
	closeCh := tok.text[0]
	span := Span{Start: tok.pos, End: tok.pos + 1}
	for {
		if len(p.opstack) == 0 {
			return &ParseError{Message: "unmatched closing bracket", Formula: p.formula, Span: span}
		}
		top := p.opstack[len(p.opstack)-1]
		if top.isBracket {
			if !matchesFamily(top.ch, closeCh) {
				return &ParseError{Message: "mismatched bracket family", Formula: p.formula, Span: span}
			}
			p.opstack = p.opstack[:len(p.opstack)-1]
			return nil
		}
		p.opstack = p.opstack[:len(p.opstack)-1]
		if err := p.combine(string(top.ch), span); err != nil {
			return err
		}
	}
}

// pushOperator pops and combines any operator of equal or higher priority
// before pushing o, so the stack is always sorted by descending priority
// from bottom to top between bracket boundaries.
func (p *parser) pushOperator(tok token) error {
	span := Span{Start: tok.pos, End: tok.pos + 1}
	for len(p.opstack) > 0 {
		top := p.opstack[len(p.opstack)-1]
		if top.isBracket || exprtree.Priority(string(top.ch)) < exprtree.Priority(tok.text) {
			break
		}
		p.opstack = p.opstack[:len(p.opstack)-1]
		if err := p.combine(string(top.ch), span); err != nil {
			return err
		}
	}
	p.opstack = append(p.opstack, opEntry{ch: tok.text[0]})
	return nil
}

// drain combines every remaining operator at end of input; a leftover
// open bracket is a formula error.
func (p *parser) drain(eofPos int) error {
	eof := Span{Start: eofPos, End: eofPos}
	for len(p.opstack) > 0 {
		top := p.opstack[len(p.opstack)-1]
		p.opstack = p.opstack[:len(p.opstack)-1]
		if top.isBracket {
			return &ParseError{Message: "unclosed bracket", Formula: p.formula, Span: eof}
		}
		if err := p.combine(string(top.ch), eof); err != nil {
			return err
		}
	}
	return nil
}

// combine pops the top two operands off result, combines them under op,
// and pushes the result back.
func (p *parser) combine(op string, span Span) error {
	if len(p.result) < 2 {
		return &ParseError{Message: "operator missing an operand", Formula: p.formula, Span: span}
	}
	right := p.result[len(p.result)-1]
	left := p.result[len(p.result)-2]
	p.result = p.result[:len(p.result)-2]
	p.result = append(p.result, exprtree.Op(op, left, right))
	return nil
}
