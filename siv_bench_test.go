package aessiv

import "testing"

func benchmarkSeal(b *testing.B, size int) {
	ctx, err := New(AESFactory{})
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	macKey := make([]byte, 32)
	ctrKey := make([]byte, 32)
	pt := make([]byte, size)
	ad := []byte("associated-data")

	b.SetBytes(int64(size))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ctx.Seal(ctrKey, macKey, pt, ad); err != nil {
			b.Fatalf("Seal: %v", err)
		}
	}
}

func BenchmarkSeal64(b *testing.B)   { benchmarkSeal(b, 64) }
func BenchmarkSeal1024(b *testing.B) { benchmarkSeal(b, 1024) }
func BenchmarkSeal16384(b *testing.B) { benchmarkSeal(b, 16384) }
