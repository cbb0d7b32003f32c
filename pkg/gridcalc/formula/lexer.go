package formula

import "strconv"

func isDigit(c byte) bool  { return c >= '0' && c <= '9' }
func isLetter(c byte) bool { return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') }

// tokenize scans a formula body (the text after the leading "=") left to
// right. Whitespace is skipped and never emitted. Any character sequence
// outside the grammar aborts the scan with ErrBadToken.
func tokenize(src string) ([]Token, error) {
	var tokens []Token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t':
			i++

		case isDigit(c) || c == '.':
			start := i
			for i < len(src) && (isDigit(src[i]) || src[i] == '.') {
				i++
			}
			text := src[start:i]
			num, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, evalErr(ErrBadToken, text)
			}
			tokens = append(tokens, Token{Kind: TokenNumber, Num: num})

		case isLetter(c):
			start := i
			for i < len(src) && isLetter(src[i]) {
				i++
			}
			digitStart := i
			for i < len(src) && isDigit(src[i]) {
				i++
			}
			if digitStart == i {
				// letters with no trailing digits are not a reference
				return nil, evalErr(ErrBadToken, src[start:i])
			}
			tokens = append(tokens, Token{Kind: TokenCellRef, Text: src[start:i]})

		case c == '+' || c == '-' || c == '*' || c == '/':
			tokens = append(tokens, Token{Kind: TokenOperator, Text: string(c)})
			i++

		case c == '(':
			tokens = append(tokens, Token{Kind: TokenLParen, Text: "("})
			i++

		case c == ')':
			tokens = append(tokens, Token{Kind: TokenRParen, Text: ")"})
			i++

		default:
			return nil, evalErr(ErrBadToken, string(c))
		}
	}
	return tokens, nil
}
