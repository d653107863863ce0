package script

import "testing"

func run(t *testing.T, src, fn string, args ...Value) Value {
	t.Helper()
	in := NewInterp(nil)
	if err := in.Load(src); err != nil {
		t.Fatalf("Load: %v", err)
	}
	v, err := in.Call(fn, args...)
	if err != nil {
		t.Fatalf("Call(%s): %v", fn, err)
	}
	return v
}

func TestArithmeticPrecedence(t *testing.T) {
	v := run(t, `function F() return 2 + 3 * 4 end`, "F")
	if v.(float64) != 14 {
		t.Fatalf("F() = %v, want 14", v)
	}
}

func TestIfElseif(t *testing.T) {
	src := `
function classify(n)
	if n < 0 then
		return "neg"
	elseif n == 0 then
		return "zero"
	else
		return "pos"
	end
end
`
	if v := run(t, src, "classify", -5.0); v != "neg" {
		t.Fatalf("classify(-5) = %v, want neg", v)
	}
	if v := run(t, src, "classify", 0.0); v != "zero" {
		t.Fatalf("classify(0) = %v, want zero", v)
	}
	if v := run(t, src, "classify", 5.0); v != "pos" {
		t.Fatalf("classify(5) = %v, want pos", v)
	}
}

func TestWhileLoopAccumulates(t *testing.T) {
	src := `
function sumTo(n)
	local total = 0
	local i = 1
	while i <= n do
		total = total + i
		i = i + 1
	end
	return total
end
`
	v := run(t, src, "sumTo", 10.0)
	if v.(float64) != 55 {
		t.Fatalf("sumTo(10) = %v, want 55", v)
	}
}

func TestForLoopDefaultStep(t *testing.T) {
	src := `
function count(n)
	local total = 0
	for i = 1, n do
		total = total + 1
	end
	return total
end
`
	v := run(t, src, "count", 5.0)
	if v.(float64) != 5 {
		t.Fatalf("count(5) = %v, want 5", v)
	}
}

func TestForLoopNegativeStep(t *testing.T) {
	src := `
function countdown(n)
	local total = 0
	for i = n, 1, -1 do
		total = total + 1
	end
	return total
end
`
	v := run(t, src, "countdown", 3.0)
	if v.(float64) != 3 {
		t.Fatalf("countdown(3) = %v, want 3", v)
	}
}

func TestStringConcatViaPlus(t *testing.T) {
	v := run(t, `function greet(name) return "hi " + name end`, "greet", "there")
	if v != "hi there" {
		t.Fatalf("greet = %v, want %q", v, "hi there")
	}
}

func TestFunctionCallsFunction(t *testing.T) {
	src := `
function double(n) return n * 2 end
function quad(n) return double(double(n)) end
`
	v := run(t, src, "quad", 3.0)
	if v.(float64) != 12 {
		t.Fatalf("quad(3) = %v, want 12", v)
	}
}

func TestAndOrShortCircuit(t *testing.T) {
	src := `
function pick(a, b)
	return a and b or "fallback"
end
`
	if v := run(t, src, "pick", true, "yes"); v != "yes" {
		t.Fatalf("pick(true,yes) = %v, want yes", v)
	}
	if v := run(t, src, "pick", false, "yes"); v != "fallback" {
		t.Fatalf("pick(false,yes) = %v, want fallback", v)
	}
}

func TestUndefinedFunctionIsError(t *testing.T) {
	in := NewInterp(nil)
	if err := in.Load(`function F() return 1 end`); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := in.Call("Missing"); err == nil {
		t.Fatal("Call(Missing) should have errored")
	}
}

func TestParseErrorReportsPosition(t *testing.T) {
	_, err := NewParser("function F(\n").ParseProgram()
	if err == nil {
		t.Fatal("expected a parse error for unterminated parameter list")
	}
}
