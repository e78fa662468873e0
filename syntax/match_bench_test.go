package syntax

import "testing"

// BenchmarkMatch measures matcher throughput across pattern shapes; the
// heavy cases force repeated split-offset searches.
func BenchmarkMatch(b *testing.B) {
	benches := []struct {
		name    string
		pattern string
		input   string
	}{
		{"literal", "abcdefgh", "abcdefgh"},
		{"single_star", "a*z", "abcdefghijklmnopqrstuvwxyz"},
		{"many_stars", "a*b*c*d*e*/f", "axxbxxcxxdxxexx/f"},
		{"class_heavy", "[a-m][n-z][a-m][n-z]*", "anbo-tail-of-the-name"},
		{"miss_late", "a*b*c*d*e*/f", "axxbxxcxxdxxexx/g"},
	}
	for _, bb := range benches {
		tokens, err := Scan(bb.pattern)
		if err != nil {
			b.Fatalf("Scan(%q) failed: %v", bb.pattern, err)
		}
		b.Run(bb.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Match(tokens, bb.input)
			}
		})
	}
}

// BenchmarkScan measures compiler throughput.
func BenchmarkScan(b *testing.B) {
	patterns := []string{"abcdefgh", "a*b?c[d-f]*", `*[^a-z0-9\-]*`}
	for _, pattern := range patterns {
		b.Run(pattern, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := Scan(pattern); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
