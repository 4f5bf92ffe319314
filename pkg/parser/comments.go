package parser

import (
	"strings"

	"github.com/ftomassetti/javaparser/pkg/jast"
)

// attachComments turns every comment token into a comment node. A comment
// followed only by whitespace and then by a commentable child becomes that
// child's leading comment; any other comment is an orphan of the innermost
// node whose range contains it.
func attachComments(root *jast.Node, tokens []jast.Token) error {
	for idx, tok := range tokens {
		if !tok.Kind.IsComment() {
			continue
		}

		comment := jast.NewNode(commentKind(tok.Kind),
			jast.WithAttr(jast.PropContent, CommentContent(tok.Kind, tok.Text)),
			jast.WithRange(tok.Range),
		)

		container := innermost(root, tok.Range)

		if target := leadingTarget(container, tokens, idx); target != nil {
			if err := target.SetComment(comment); err != nil {
				return err
			}
			continue
		}

		if err := container.AddOrphanComment(comment); err != nil {
			return err
		}
	}

	return nil
}

// innermost returns the deepest node whose range contains r.
func innermost(root *jast.Node, r jast.Range) *jast.Node {
	node := root

descend:
	for {
		for _, child := range node.Children() {
			if child.Range.Contains(r) {
				node = child
				continue descend
			}
		}
		return node
	}
}

// leadingTarget returns the child of container that the comment at tokens[idx] documents.
func leadingTarget(container *jast.Node, tokens []jast.Token, idx int) *jast.Node {
	next := idx + 1
	for next < len(tokens) && tokens[next].Kind.IsWhitespace() {
		next++
	}
	if next >= len(tokens) || tokens[next].Kind.IsComment() {
		return nil
	}

	start := tokens[next].Range.Start
	for _, child := range container.Children() {
		if child.Range.Start != start {
			continue
		}
		if child.Kind.IsCommentable() && child.Comment() == nil {
			return child
		}
		return nil
	}

	return nil
}

func commentKind(kind jast.TokenKind) jast.NodeKind {
	switch kind {
	case jast.TokLineComment:
		return jast.NodeLineComment
	case jast.TokJavadocComment:
		return jast.NodeJavadocComment
	default:
		return jast.NodeBlockComment
	}
}

// CommentContent strips the comment delimiters from the token text.
func CommentContent(kind jast.TokenKind, text string) string {
	switch kind {
	case jast.TokLineComment:
		return strings.TrimPrefix(text, "//")
	case jast.TokJavadocComment:
		return strings.TrimSuffix(strings.TrimPrefix(text, "/**"), "*/")
	default:
		return strings.TrimSuffix(strings.TrimPrefix(text, "/*"), "*/")
	}
}
