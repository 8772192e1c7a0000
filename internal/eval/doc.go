// Package eval parses and evaluates single bigcalc expressions.
//
// An expression is either prefix form, "op a [b]", or infix form, "a OP b"
// with OP one of ^ | & + - * % << >>. Value operands are hexadecimal by
// default and accept an explicit 0x or 0b prefix. Shift counts and moduli are
// decimal unless prefixed.
package eval
