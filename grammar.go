package exprast

// Grammar accepted by the parser, in the EBNF notation of golang.org/x/exp/ebnf.
//
// Whitespace between tokens is not shown, except where a "-" must be followed by a space to be
// read as an operator rather than as the sign of a literal.
const Grammar = `
Expression = Sum | "(" Sum ")" .
Sum        = Operand { AddOp Operand } .
Operand    = Number | Negation .
Negation   = "- " ( Number | "(" Expression ")" ) .
AddOp      = "+" | "- " .
Number     = [ "-" ] digit { digit } .
digit      = "0" … "9" .
`
