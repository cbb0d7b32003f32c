package formula

// toRPN reorders infix tokens into Reverse Polish order with a minimal
// shunting-yard pass. An unmatched ")" pops until a "(" is found or the
// operator stack is exhausted; an unmatched "(" is drained into the output
// at the end and surfaces later as a malformed expression during reduction.
func toRPN(tokens []Token) []Token {
	var output []Token
	var ops []Token

	for _, tok := range tokens {
		switch tok.Kind {
		case TokenNumber, TokenCellRef:
			output = append(output, tok)

		case TokenOperator:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.Kind != TokenOperator || precedence[top.Text] < precedence[tok.Text] {
					break
				}
				output = append(output, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)

		case TokenLParen:
			ops = append(ops, tok)

		case TokenRParen:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.Kind == TokenLParen {
					break
				}
				output = append(output, top)
			}
		}
	}

	for len(ops) > 0 {
		output = append(output, ops[len(ops)-1])
		ops = ops[:len(ops)-1]
	}
	return output
}

// evalRPN reduces an RPN program with a numeric stack. Cell references are
// resolved through the supplied resolver, which recursively evaluates the
// referenced cell's raw content.
func evalRPN(program []Token, resolve func(label string) (float64, error)) (float64, error) {
	var stack []float64

	for _, tok := range program {
		switch tok.Kind {
		case TokenNumber:
			stack = append(stack, tok.Num)

		case TokenCellRef:
			v, err := resolve(tok.Text)
			if err != nil {
				return 0, err
			}
			stack = append(stack, v)

		case TokenOperator:
			if len(stack) < 2 {
				return 0, evalErr(ErrMalformedExpression, tok.Text)
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			var v float64
			switch tok.Text {
			case "+":
				v = a + b
			case "-":
				v = a - b
			case "*":
				v = a * b
			case "/":
				v = a / b
			}
			stack = append(stack, v)

		default:
			// a parenthesis left over from an unbalanced expression
			return 0, evalErr(ErrMalformedExpression, tok.Text)
		}
	}

	if len(stack) != 1 {
		return 0, evalErr(ErrMalformedExpression, "")
	}
	return stack[0], nil
}
