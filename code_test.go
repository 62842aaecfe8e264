package hufftree

import (
	"testing"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		input  string
		expect string
	}

	testData := [...]testRow{
		{input: "", expect: `""`},
		{input: "0", expect: `"0"`},
		{input: "1", expect: `"1"`},
		{input: "0110", expect: `"0110"`},
		{input: "1000000000000000000000000000000000000000000000000000000000000000001", expect: `"1000000000000000000000000000000000000000000000000000000000000000001"`},
	}
	for _, row := range testData {
		t.Run(row.expect, func(t *testing.T) {
			hc, err := ParseCode(row.input)
			if err != nil {
				t.Fatalf("ParseCode failed: %v", err)
			}
			if actual := hc.String(); actual != row.expect {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
			if int(hc.Size) != len(row.input) {
				t.Errorf("expected size %d, got %d", len(row.input), hc.Size)
			}
		})
	}
}

func TestCode_Reversed(t *testing.T) {
	type testRow struct {
		input  string
		expect string
	}

	long := make([]byte, MaxCodeSize)
	longRev := make([]byte, MaxCodeSize)
	for i := range long {
		long[i] = '0'
		longRev[i] = '0'
	}
	long[0], long[70], long[200] = '1', '1', '1'
	longRev[MaxCodeSize-1], longRev[MaxCodeSize-71], longRev[MaxCodeSize-201] = '1', '1', '1'

	testData := [...]testRow{
		{input: "", expect: ""},
		{input: "1", expect: "1"},
		{input: "10", expect: "01"},
		{input: "1101", expect: "1011"},
		{input: string(long), expect: string(longRev)},
	}
	for _, row := range testData {
		t.Run(row.input, func(t *testing.T) {
			hc, err := ParseCode(row.input)
			if err != nil {
				t.Fatalf("ParseCode failed: %v", err)
			}
			expect, err := ParseCode(row.expect)
			if err != nil {
				t.Fatalf("ParseCode failed: %v", err)
			}
			actual := hc.Reversed()
			if actual != expect {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expect, actual)
			}
			if twice := actual.Reversed(); twice != hc {
				t.Errorf("reversing twice gave %s, expected %s", twice, hc)
			}
		})
	}
}

func TestCode_HasPrefix(t *testing.T) {
	type testRow struct {
		code   string
		prefix string
		expect bool
	}

	testData := [...]testRow{
		{code: "0110", prefix: "", expect: true},
		{code: "0110", prefix: "0", expect: true},
		{code: "0110", prefix: "011", expect: true},
		{code: "0110", prefix: "0110", expect: true},
		{code: "0110", prefix: "01101", expect: false},
		{code: "0110", prefix: "1", expect: false},
		{code: "0110", prefix: "010", expect: false},
	}
	for _, row := range testData {
		t.Run(row.code+"/"+row.prefix, func(t *testing.T) {
			hc, _ := ParseCode(row.code)
			prefix, _ := ParseCode(row.prefix)
			if actual := hc.HasPrefix(prefix); actual != row.expect {
				t.Errorf("expected %v, got %v", row.expect, actual)
			}
		})
	}
}

func TestParseCode_Invalid(t *testing.T) {
	if _, err := ParseCode("012"); err == nil {
		t.Error("expected error for invalid character")
	}
	long := make([]byte, MaxCodeSize+1)
	for i := range long {
		long[i] = '1'
	}
	if _, err := ParseCode(string(long)); err == nil {
		t.Error("expected error for over-long code")
	}
}
