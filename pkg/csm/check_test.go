package csm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ftomassetti/javaparser/pkg/csm"
	"github.com/ftomassetti/javaparser/pkg/parser"
)

func TestCheckIdempotent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "empty class", src: "class   A{}", want: "class A {\n}\n"},
		{
			name: "members",
			src:  "class A{int a;void f(){return;}}",
			want: "class A {\n    int a;\n\n    void f() {\n        return;\n    }\n}\n",
		},
		{
			name: "imports",
			src:  "import java.util.*;import static java.lang.Math.max;class A{}",
			want: "import java.util.*;\nimport static java.lang.Math.max;\n\nclass A {\n}\n",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := csm.CheckIdempotent(context.Background(), "", []byte(testCase.src), csm.Options{})
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestCheckIdempotent_SyntaxError(t *testing.T) {
	t.Parallel()

	_, err := csm.CheckIdempotent(context.Background(), "A.java", []byte("class {"), csm.Options{})

	var syntaxErr *parser.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Equal(t, "A.java", syntaxErr.Path)
}
