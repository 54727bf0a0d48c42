package dist

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/goprob/exact"
)

func TestBinomialPMF(t *testing.T) {
	// C(10, 3) / 2^10 = 120/1024 for a fair coin.
	got, err := BinomialPMF(10, 3, 0.5)
	if err != nil {
		t.Fatalf("BinomialPMF returned error: %v", err)
	}
	want, err := exact.FromInt(120).Div(exact.FromInt(1024))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Errorf("BinomialPMF(10, 3, 0.5) = %s, want %s", got, want)
	}
}

func TestBinomialPMFDegenerate(t *testing.T) {
	certain, err := BinomialPMF(5, 5, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !certain.Equal(exact.One()) {
		t.Errorf("BinomialPMF(5, 5, 1) = %s, want 1", certain)
	}
	impossible, err := BinomialPMF(5, 3, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !impossible.IsZero() {
		t.Errorf("BinomialPMF(5, 3, 0) = %s, want 0", impossible)
	}
}

func TestBinomialPMFAgainstGonum(t *testing.T) {
	for _, p := range []float64{0.1, 0.25, 0.5, 0.9} {
		oracle := distuv.Binomial{N: 12, P: p}
		for k := int64(0); k <= 12; k++ {
			got, err := BinomialPMF(12, k, p)
			if err != nil {
				t.Fatalf("BinomialPMF(12, %d, %v) returned error: %v", k, p, err)
			}
			want := oracle.Prob(float64(k))
			if math.Abs(got.Float64()-want) > 1e-12 {
				t.Errorf("BinomialPMF(12, %d, %v) = %v, gonum says %v", k, p, got.Float64(), want)
			}
		}
	}
}

func TestBinomialPMFInvalid(t *testing.T) {
	if _, err := BinomialPMF(5, 6, 0.5); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("k > n error = %v, want ErrInvalidArgument", err)
	}
	if _, err := BinomialPMF(5, -1, 0.5); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative k error = %v, want ErrInvalidArgument", err)
	}
	if _, err := BinomialPMF(5, 2, 1.5); !errors.Is(err, ErrInvalidProbability) {
		t.Errorf("p > 1 error = %v, want ErrInvalidProbability", err)
	}
	if _, err := BinomialPMF(5, 2, -0.1); !errors.Is(err, ErrInvalidProbability) {
		t.Errorf("p < 0 error = %v, want ErrInvalidProbability", err)
	}
}

func TestBinomialCDFCompletes(t *testing.T) {
	one := exact.One()
	for _, p := range []float64{0, 0.3, 0.5, 1} {
		full, err := BinomialCDF(15, 15, p)
		if err != nil {
			t.Fatalf("BinomialCDF(15, 15, %v) returned error: %v", p, err)
		}
		if full.Sub(one).Abs().Cmp(exact.New(1e-9)) > 0 {
			t.Errorf("BinomialCDF(15, 15, %v) = %s, want 1", p, full)
		}
	}
}

func TestBinomialCDFMonotone(t *testing.T) {
	prev := exact.Zero()
	for k := int64(0); k <= 10; k++ {
		cur, err := BinomialCDF(10, k, 0.3)
		if err != nil {
			t.Fatalf("BinomialCDF(10, %d, 0.3) returned error: %v", k, err)
		}
		if cur.Cmp(prev) < 0 {
			t.Errorf("CDF decreased at k = %d: %s < %s", k, cur, prev)
		}
		prev = cur
	}
}

func TestBinomialCDFAgainstGonum(t *testing.T) {
	oracle := distuv.Binomial{N: 10, P: 0.3}
	for k := int64(0); k <= 10; k++ {
		got, err := BinomialCDF(10, k, 0.3)
		if err != nil {
			t.Fatal(err)
		}
		want := oracle.CDF(float64(k))
		if math.Abs(got.Float64()-want) > 1e-9 {
			t.Errorf("BinomialCDF(10, %d, 0.3) = %v, gonum says %v", k, got.Float64(), want)
		}
	}
}
