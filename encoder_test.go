package hufftree

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncoder(t *testing.T) {
	e, err := NewEncoder(makeTestTree(t))
	if err != nil {
		t.Fatalf("NewEncoder failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tCode(0) = \"1100\"\n",
		"\tCode(1) = \"1101\"\n",
		"\tCode(2) = \"100\"\n",
		"\tCode(3) = \"101\"\n",
		"\tCode(4) = \"111\"\n",
		"\tCode(5) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	actualSizes := e.SizeBySymbol()
	expectSizes := make([]byte, NumSymbols)
	copy(expectSizes, []byte{4, 4, 3, 3, 3, 1})
	if !bytes.Equal(expectSizes, actualSizes) {
		t.Errorf("wrong sizes:\n\texpect: %#v\n\tactual: %#v", expectSizes, actualSizes)
	}
}

func TestEncoder_Degenerate(t *testing.T) {
	tree, err := NewTree(NewLeaf('A', 1))
	require.NoError(t, err)
	e, err := NewEncoder(tree)
	require.NoError(t, err)
	require.Equal(t, `"0"`, e.Code('A').String())
	require.Equal(t, byte(1), e.MinSize())
	require.Equal(t, byte(1), e.MaxSize())
}

func TestNewEncoder_RejectsChildlessRoot(t *testing.T) {
	_, err := NewEncoder(&Tree{})
	require.ErrorIs(t, err, ErrDegenerateTree)
	_, err = NewEncoder(nil)
	require.ErrorIs(t, err, ErrDegenerateTree)
}

func TestEncode_Streams(t *testing.T) {
	type testRow struct {
		name   string
		input  []byte
		expect []byte
	}

	testData := [...]testRow{
		{name: "empty", input: nil, expect: []byte{0, 0, 0, 0}},
		{name: "single-symbol", input: []byte("AAA"), expect: []byte{0, 0, 0, 3, 0x20, 0x80}},
		{name: "two-symbols", input: []byte("aab"), expect: []byte{0, 0, 0, 3, 0x98, 0x8c, 0x38}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual, err := Encode(row.input)
			require.NoError(t, err)
			require.Equal(t, row.expect, actual)
		})
	}
}

func TestEncode_SingleSymbolUsesOneBitPerByte(t *testing.T) {
	stream, err := Encode(bytes.Repeat([]byte{0x41}, 1000))
	require.NoError(t, err)
	// 32 header bits + 9 tree bits + 1000 payload bits, rounded up.
	require.Len(t, stream, (32+9+1000+7)/8)
}

func TestEncoder_UnknownSymbol(t *testing.T) {
	tree, err := BuildTree(CountFrequencies([]byte("ab")))
	require.NoError(t, err)
	e, err := NewEncoder(tree)
	require.NoError(t, err)

	var buf bytes.Buffer
	err = e.EncodeTo(&buf, []byte("abc"))
	require.ErrorIs(t, err, ErrUnknownSymbol)
	require.Zero(t, buf.Len())
}

func TestEncoder_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, input := range [][]byte{allBytes(), randomBytes(rng, 10000, 200), []byte("mississippi")} {
		tree, err := BuildTree(CountFrequencies(input))
		require.NoError(t, err)
		e, err := NewEncoder(tree)
		require.NoError(t, err)

		var codes []Code
		for symbol := 0; symbol < NumSymbols; symbol++ {
			if hc := e.Code(byte(symbol)); hc.Size != 0 {
				codes = append(codes, hc)
			}
		}
		require.Len(t, codes, tree.NumLeaves())
		for i := range codes {
			for j := range codes {
				if i != j {
					require.False(t, codes[i].HasPrefix(codes[j]), "%s has prefix %s", codes[i], codes[j])
				}
			}
		}
	}
}
