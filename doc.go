// Package shunt converts infix arithmetic to reverse Polish notation with the
// shunting-yard algorithm and evaluates the result.
//
// Expressions are written without whitespace, e.g. "3*(4+6)^3-(2+1)*4". They
// may use the binary operators + - * / ^, where ^ is right-associative and
// binds tightest, parentheses, and the functions listed by Funcs, which must
// always be called with parentheses: "sqrt(9)", never "sqrt 9". Variables are
// runs of lowercase letters whose values are substituted as text while
// parsing, so "3+a" with a = 5 parses to "3 5 +".
//
// A minus sign at the start of an expression or just after an open bracket
// is part of the number it precedes, so "-2^2" is 4. Before a bracket, a
// variable, or a function, it negates the term by subtraction from zero:
// "-(2+1)" parses to "0 2 1 + -".
//
// Parse produces an Expr, and Expr.String is its postfix form. ParseRPN reads
// that form back, so the two halves can be used separately. Both Parse and Eval
// allocate fresh state for each call; an Expr may be evaluated concurrently.
package shunt
