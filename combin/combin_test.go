package combin

import (
	"errors"
	"testing"

	gcombin "gonum.org/v1/gonum/stat/combin"

	"github.com/sartorproj/goprob/exact"
)

func TestFactorial(t *testing.T) {
	tests := []struct {
		n    int64
		want int64
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{5, 120},
		{10, 3628800},
		{20, 2432902008176640000},
	}
	for _, tt := range tests {
		got, err := Factorial(tt.n)
		if err != nil {
			t.Fatalf("Factorial(%d) returned error: %v", tt.n, err)
		}
		if !got.Equal(exact.FromInt(tt.want)) {
			t.Errorf("Factorial(%d) = %s, want %d", tt.n, got, tt.want)
		}
	}
}

func TestFactorialRecurrence(t *testing.T) {
	// n! == n * (n-1)! including well past the float64 overflow point.
	prev, err := Factorial(0)
	if err != nil {
		t.Fatal(err)
	}
	for n := int64(1); n <= 200; n++ {
		cur, err := Factorial(n)
		if err != nil {
			t.Fatalf("Factorial(%d) returned error: %v", n, err)
		}
		if !cur.Equal(prev.Mul(exact.FromInt(n))) {
			t.Fatalf("Factorial(%d) != %d * Factorial(%d)", n, n, n-1)
		}
		prev = cur
	}
}

func TestFactorialNegative(t *testing.T) {
	_, err := Factorial(-1)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Factorial(-1) error = %v, want ErrInvalidArgument", err)
	}
}

func TestBinomialCoefficient(t *testing.T) {
	tests := []struct {
		n, k int64
		want int64
	}{
		{5, 2, 10},
		{0, 0, 1},
		{7, 0, 1},
		{7, 7, 1},
		{10, 1, 10},
		{52, 5, 2598960},
	}
	for _, tt := range tests {
		got, err := BinomialCoefficient(tt.n, tt.k)
		if err != nil {
			t.Fatalf("C(%d, %d) returned error: %v", tt.n, tt.k, err)
		}
		if !got.Equal(exact.FromInt(tt.want)) {
			t.Errorf("C(%d, %d) = %s, want %d", tt.n, tt.k, got, tt.want)
		}
	}
}

func TestBinomialCoefficientSymmetry(t *testing.T) {
	for n := int64(0); n <= 20; n++ {
		for k := int64(0); k <= n; k++ {
			a, err := BinomialCoefficient(n, k)
			if err != nil {
				t.Fatal(err)
			}
			b, err := BinomialCoefficient(n, n-k)
			if err != nil {
				t.Fatal(err)
			}
			if !a.Equal(b) {
				t.Errorf("C(%d, %d) = %s but C(%d, %d) = %s", n, k, a, n, n-k, b)
			}
		}
	}
}

func TestBinomialCoefficientAgainstGonum(t *testing.T) {
	for n := 0; n <= 25; n++ {
		for k := 0; k <= n; k++ {
			got, err := BinomialCoefficient(int64(n), int64(k))
			if err != nil {
				t.Fatal(err)
			}
			want := exact.FromInt(int64(gcombin.Binomial(n, k)))
			if !got.Equal(want) {
				t.Errorf("C(%d, %d) = %s, gonum says %s", n, k, got, want)
			}
		}
	}
}

func TestBinomialCoefficientInvalid(t *testing.T) {
	tests := []struct {
		name string
		n, k int64
	}{
		{"k greater than n", 3, 4},
		{"negative k", 3, -1},
		{"negative n", -3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := BinomialCoefficient(tt.n, tt.k); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("C(%d, %d) error = %v, want ErrInvalidArgument", tt.n, tt.k, err)
			}
		})
	}
}

func TestMultisetCoefficient(t *testing.T) {
	tests := []struct {
		n, k int64
		want int64
	}{
		{3, 2, 6},  // C(4, 2)
		{4, 3, 20}, // C(6, 3)
		{1, 5, 1},
		{5, 0, 1},
		{0, 0, 1},
		{0, 3, 0},
	}
	for _, tt := range tests {
		got, err := MultisetCoefficient(tt.n, tt.k)
		if err != nil {
			t.Fatalf("multichoose(%d, %d) returned error: %v", tt.n, tt.k, err)
		}
		if !got.Equal(exact.FromInt(tt.want)) {
			t.Errorf("multichoose(%d, %d) = %s, want %d", tt.n, tt.k, got, tt.want)
		}
	}
}

func TestMultisetCoefficientInvalid(t *testing.T) {
	if _, err := MultisetCoefficient(-1, 2); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("multichoose(-1, 2) error = %v, want ErrInvalidArgument", err)
	}
	if _, err := MultisetCoefficient(2, -1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("multichoose(2, -1) error = %v, want ErrInvalidArgument", err)
	}
}
