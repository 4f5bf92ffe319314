package csm

import (
	"fmt"

	"github.com/ftomassetti/javaparser/pkg/jast"
)

// Lexeme is one token of rendered output before it reaches a sink.
type Lexeme struct {
	Kind jast.TokenKind
	Text string
}

// AttributeLexemes renders the value of attribute p on a node of the given kind.
// The value is passed in so callers can render a value the node does not hold yet.
func AttributeLexemes(kind jast.NodeKind, p jast.Property, value any) ([]Lexeme, error) {
	switch v := value.(type) {
	case jast.Modifiers:
		keywords := v.Keywords()
		out := make([]Lexeme, 0, 2*len(keywords))
		for _, keyword := range keywords {
			out = append(out, Lexeme{jast.TokKeyword, keyword}, Lexeme{jast.TokWhitespace, " "})
		}
		return out, nil
	case jast.BinaryOperator:
		return []Lexeme{{jast.TokOperator, v.Symbol()}}, nil
	case jast.UnaryOperator:
		return []Lexeme{{jast.TokOperator, v.Symbol()}}, nil
	case jast.AssignOperator:
		return []Lexeme{{jast.TokOperator, v.Symbol()}}, nil
	case jast.Primitive:
		return []Lexeme{{jast.TokKeyword, v.Keyword()}}, nil
	case bool:
		if p != jast.PropValue {
			return nil, &ConfigError{Kind: kind, Reason: fmt.Sprintf("flag %s cannot be rendered directly", p)}
		}
		if v {
			return []Lexeme{{jast.TokKeyword, "true"}}, nil
		}
		return []Lexeme{{jast.TokKeyword, "false"}}, nil
	case string:
		return stringLexemes(kind, p, v)
	default:
		return nil, &ConfigError{Kind: kind, Reason: fmt.Sprintf("cannot render %s value %T", p, value)}
	}
}

func stringLexemes(kind jast.NodeKind, p jast.Property, value string) ([]Lexeme, error) {
	if p == jast.PropIdentifier {
		return []Lexeme{{jast.TokIdentifier, value}}, nil
	}
	if p != jast.PropValue {
		return nil, &ConfigError{Kind: kind, Reason: fmt.Sprintf("cannot render string property %s", p)}
	}

	switch kind {
	case jast.NodeIntegerLiteralExpr:
		return []Lexeme{{jast.TokIntegerLiteral, value}}, nil
	case jast.NodeDoubleLiteralExpr:
		return []Lexeme{{jast.TokFloatingLiteral, value}}, nil
	case jast.NodeStringLiteralExpr:
		return []Lexeme{{jast.TokStringLiteral, `"` + value + `"`}}, nil
	case jast.NodeCharLiteralExpr:
		return []Lexeme{{jast.TokCharLiteral, "'" + value + "'"}}, nil
	default:
		return nil, &ConfigError{Kind: kind, Reason: "literal value on a non-literal kind"}
	}
}
